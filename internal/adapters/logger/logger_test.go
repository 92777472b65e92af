package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqlmemo/internal/adapters/logger"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escapes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Pretty(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "info with args",
			log:        func(lg *logger.Logger) { lg.Info("parsed queries", "count", 3, "hits", 2) },
			goldenName: "info_args",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("some warning") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug filtered by default",
			log:        func(lg *logger.Logger) { lg.Debug("hidden") },
			goldenName: "debug_filtered",
		},
		{
			name: "debug enabled",
			log: func(lg *logger.Logger) {
				lg.SetLevel(slog.LevelDebug)
				lg.Debug("cache lookup", "hit", true)
			},
			goldenName: "debug_enabled",
		},
		{
			name:       "standard error",
			log:        func(lg *logger.Logger) { lg.Error(errors.New("boom")) },
			goldenName: "error_standard",
		},
		{
			name: "zerr chain",
			log: func(lg *logger.Logger) {
				err := zerr.Wrap(errors.New("unexpected EOF"), domain.ErrInputReadFailed.Error())
				lg.Error(zerr.With(err, "input", "trip.graphql"))
			},
			goldenName: "error_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("parsed", "entries", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "parsed", record["msg"])
	assert.InDelta(t, 2, record["entries"], 0)
}

func TestLogger_JSONError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.Wrap(errors.New("root"), "outer"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Contains(t, record["error"], "outer")
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, first := newTestLogger(t)
	lg.SetJSON(true)

	second := &bytes.Buffer{}
	lg.SetOutput(second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.True(t, json.Valid(second.Bytes()))
}

func TestLogger_Configure(t *testing.T) {
	lg, buf := newTestLogger(t)

	require.NoError(t, lg.Configure(domain.LogConfig{Level: "warn", Format: "json"}))

	lg.Info("dropped")
	assert.Empty(t, buf.String())

	lg.Warn("kept")
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestLogger_ConfigureInvalid(t *testing.T) {
	lg, _ := newTestLogger(t)

	err := lg.Configure(domain.LogConfig{Level: "loud"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidLogLevel.Error())

	err = lg.Configure(domain.LogConfig{Level: "info", Format: "xml"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidLogFormat.Error())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := logger.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
