package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqlmemo/internal/adapters/config"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte(content), 0o600))
	return dir
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_FullFile(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `
cache:
  capacity: 128
  hasher: fnv1a
  coalesce: true
log:
  level: debug
  format: json
bench:
  iterations: 50
  workers: 4
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.CacheConfig{Capacity: 128, Hasher: "fnv1a", Coalesce: true}, cfg.Cache)
	assert.Equal(t, domain.LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, domain.BenchConfig{Iterations: 50, Workers: 4}, cfg.Bench)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "cache:\n  capacity: 10\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.Cache.Capacity = 10
	assert.Equal(t, want, cfg)
}

func TestLoader_ExplicitZeroCapacity(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "cache:\n  capacity: 0\n  hasher: maphash\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Cache.Capacity)
	assert.Equal(t, "maphash", cfg.Cache.Hasher)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid yaml", content: "cache: [", wantErr: domain.ErrConfigParseFailed},
		{name: "wrong type", content: "cache:\n  capacity: lots\n", wantErr: domain.ErrConfigParseFailed},
		{name: "negative capacity", content: "cache:\n  capacity: -1\n", wantErr: domain.ErrInvalidCapacity},
		{name: "zero iterations", content: "bench:\n  iterations: 0\n", wantErr: domain.ErrInvalidIterations},
		{name: "zero workers", content: "bench:\n  workers: 0\n", wantErr: domain.ErrInvalidWorkers},
		{name: "unknown level", content: "log:\n  level: loud\n", wantErr: domain.ErrInvalidLogLevel},
		{name: "unknown format", content: "log:\n  format: xml\n", wantErr: domain.ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newLoader(t).Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_UnreadableFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A directory where the file should be cannot be read as a file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, config.Filename), 0o750))

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	assert.NoError(t, config.Validate(domain.DefaultConfig()))
}
