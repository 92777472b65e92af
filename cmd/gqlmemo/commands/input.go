package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/gqlmemo/internal/app"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/zerr"
)

// stdinName is the argument and input name that stands for standard input.
const stdinName = "-"

// readInputs reads each named file, or standard input when paths is empty or
// an entry is "-". File contents are used byte for byte.
func readInputs(cmd *cobra.Command, paths []string) ([]app.Input, error) {
	if len(paths) == 0 {
		paths = []string{stdinName}
	}

	inputs := make([]app.Input, 0, len(paths))
	for _, path := range paths {
		var (
			data []byte
			err  error
		)
		if path == stdinName {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(path) //nolint:gosec // path is provided by user
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "input", path)
		}
		inputs = append(inputs, app.Input{Name: path, Query: domain.QueryText(data)})
	}
	return inputs, nil
}
