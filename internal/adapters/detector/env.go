// Package detector inspects the process environment to pick an output format.
package detector

import (
	"os"

	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// LogFormat is the rendering used for log records.
type LogFormat int

const (
	// FormatPretty renders colored, human-readable lines.
	FormatPretty LogFormat = iota
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// String returns the configuration name of the format.
func (f LogFormat) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "pretty"
}

// DetectFormat returns the format suited to the environment: pretty when
// stderr is a terminal and no CI variable is set, JSON otherwise.
func DetectFormat() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), isCI())
}

func detect(isTTY, ci bool) LogFormat {
	if !isTTY || ci {
		return FormatJSON
	}
	return FormatPretty
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveFormat applies the configured format name to the detected one.
// "auto" and the empty string keep the detected format.
func ResolveFormat(detected LogFormat, configured string) (LogFormat, error) {
	switch configured {
	case "auto", "":
		return detected, nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return detected, zerr.With(domain.ErrInvalidLogFormat, "format", configured)
	}
}
