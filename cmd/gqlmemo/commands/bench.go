package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/gqlmemo/internal/app"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [files...]",
		Short: "Measure cached against uncached parsing",
		Long: "Run every query through the document cache and through the parser directly,\n" +
			"printing one Go benchmark record per run.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.BenchOptions{Output: cmd.OutOrStdout()}

			if cmd.Flags().Changed("iterations") {
				opts.Iterations, _ = cmd.Flags().GetInt("iterations")
				if opts.Iterations <= 0 {
					return zerr.With(domain.ErrInvalidIterations, "iterations", opts.Iterations)
				}
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers, _ = cmd.Flags().GetInt("workers")
				if opts.Workers <= 0 {
					return zerr.With(domain.ErrInvalidWorkers, "workers", opts.Workers)
				}
			}
			opts.Profile, _ = cmd.Flags().GetString("profile")
			opts.ProfilePath, _ = cmd.Flags().GetString("profile-path")
			opts.Dir, _ = cmd.Flags().GetString("dir")

			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Bench(cmd.Context(), inputs, opts)
		},
	}
	cmd.Flags().IntP("iterations", "n", 0, "Calls per run (default from config)")
	cmd.Flags().IntP("workers", "w", 0, "Goroutines sharing each run (default from config)")
	cmd.Flags().String("profile", "", "Write a runtime profile: "+strings.Join(app.ProfileModes(), ", "))
	cmd.Flags().String("profile-path", ".", "Directory for the profile file")
	cmd.Flags().StringP("dir", "C", ".", "Directory to load gqlmemo.yaml from")
	return cmd
}
