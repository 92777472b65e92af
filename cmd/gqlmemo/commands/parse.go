package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gqlmemo/internal/app"
)

func (c *CLI) newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse queries and print the documents",
		Long: "Parse each query file through one document cache and print the canonical document.\n" +
			"Reads standard input when no files are given or a file is \"-\".",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			summary, _ := cmd.Flags().GetBool("summary")
			dir, _ := cmd.Flags().GetString("dir")

			return c.app.Parse(cmd.Context(), inputs, app.ParseOptions{
				Dir:     dir,
				Output:  cmd.OutOrStdout(),
				Summary: summary,
			})
		},
	}
	cmd.Flags().BoolP("summary", "s", false, "Print the selection tree instead of the document")
	cmd.Flags().StringP("dir", "C", ".", "Directory to load gqlmemo.yaml from")
	return cmd
}
