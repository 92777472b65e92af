package domain

import (
	"errors"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidQuery is matched by every ParseError via errors.Is.
	ErrInvalidQuery = zerr.New("invalid query")

	// ErrUnknownHasher is returned when a key hasher name is not registered.
	ErrUnknownHasher = zerr.New("unknown key hasher")

	// ErrInvalidCapacity is returned when a cache capacity is negative.
	ErrInvalidCapacity = zerr.New("cache capacity must not be negative")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrInvalidLogFormat is returned when the configured log format is unknown.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrInvalidIterations is returned when a benchmark iteration count is not positive.
	ErrInvalidIterations = zerr.New("benchmark iterations must be positive")

	// ErrInvalidWorkers is returned when a benchmark worker count is not positive.
	ErrInvalidWorkers = zerr.New("benchmark workers must be positive")

	// ErrNoInputs is returned when a command is given no queries to work on.
	ErrNoInputs = zerr.New("no queries given")

	// ErrInputReadFailed is returned when a query file or stdin cannot be read.
	ErrInputReadFailed = zerr.New("failed to read query input")
)

// ParseError describes the first syntax violation found in a query.
type ParseError struct {
	// Message is the parser's description of the problem.
	Message string
	// Line and Column locate the problem, 1-based. Both are zero when the
	// parser reported no location.
	Line   int
	Column int
	// Err is the error returned by the parser library.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("parse error")
	if e.Line > 0 {
		sb.WriteString(" at line ")
		sb.WriteString(strconv.Itoa(e.Line))
		sb.WriteString(", column ")
		sb.WriteString(strconv.Itoa(e.Column))
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	return sb.String()
}

// Unwrap returns the parser library's error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrInvalidQuery.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// AsParseError returns the ParseError in err's chain, if any.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
