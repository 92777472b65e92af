package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gqlmemo/internal/adapters/gql"
	"go.trai.ch/gqlmemo/internal/adapters/hasher"
	"go.trai.ch/gqlmemo/internal/adapters/telemetry"
	"go.trai.ch/gqlmemo/internal/app"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports/mocks"
	"go.trai.ch/gqlmemo/internal/engine/memo"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	parser := gql.NewParser()
	application := app.New(loader, parser, memo.NewFactory(parser), hasher.NewRegistry(), log, telemetry.NewNoOpTracer())

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}, loader, log
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _, _ := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, strings.NewReader(""), stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "gqlmemo version")
}

// TestRun_Parse verifies a query read from stdin reaches stdout.
func TestRun_Parse(t *testing.T) {
	provider, loader, log := newProvider(t)
	loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	log.EXPECT().Info("parsed queries", gomock.Any())

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"parse"},
		strings.NewReader("{ trip { tripPatterns { duration } } }"), stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "# -\n")
	assert.Contains(t, stdout.String(), "duration")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, strings.NewReader(""), new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, loader, log := newProvider(t)
	loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "failed to parse query")
	})

	exitCode := run(context.Background(), []string{"parse"},
		strings.NewReader("{ trip "), new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}
