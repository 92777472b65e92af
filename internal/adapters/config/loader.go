// Package config provides the configuration loader for gqlmemo.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger   ports.Logger
	Filename string
}

// NewLoader creates a Loader reading gqlmemo.yaml.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Filename: Filename}
}

// Load returns the configuration in dir. A missing file yields the defaults.
func (l *Loader) Load(dir string) (*domain.Config, error) {
	path := filepath.Join(dir, l.Filename)

	cfg := domain.DefaultConfig()

	var file File
	found, err := readAndUnmarshalYAML(path, &file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if !found {
		l.Logger.Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}

	apply(cfg, &file)
	if err := Validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded config", "path", path,
		"capacity", cfg.Cache.Capacity,
		"hasher", cfg.Cache.Hasher,
		"coalesce", cfg.Cache.Coalesce,
	)
	return cfg, nil
}

// Validate checks the values that cannot be checked by type alone. Hasher
// names are resolved later against the registry.
func Validate(cfg *domain.Config) error {
	if cfg.Cache.Capacity < 0 {
		return zerr.With(domain.ErrInvalidCapacity, "capacity", cfg.Cache.Capacity)
	}
	if cfg.Bench.Iterations <= 0 {
		return zerr.With(domain.ErrInvalidIterations, "iterations", cfg.Bench.Iterations)
	}
	if cfg.Bench.Workers <= 0 {
		return zerr.With(domain.ErrInvalidWorkers, "workers", cfg.Bench.Workers)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return zerr.With(domain.ErrInvalidLogLevel, "level", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "auto", "pretty", "json":
	default:
		return zerr.With(domain.ErrInvalidLogFormat, "format", cfg.Log.Format)
	}
	return nil
}

func apply(cfg *domain.Config, file *File) {
	if c := file.Cache; c != nil {
		setIf(&cfg.Cache.Capacity, c.Capacity)
		setIf(&cfg.Cache.Hasher, c.Hasher)
		setIf(&cfg.Cache.Coalesce, c.Coalesce)
	}
	if lg := file.Log; lg != nil {
		setIf(&cfg.Log.Level, lg.Level)
		setIf(&cfg.Log.Format, lg.Format)
	}
	if b := file.Bench; b != nil {
		setIf(&cfg.Bench.Iterations, b.Iterations)
		setIf(&cfg.Bench.Workers, b.Workers)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// readAndUnmarshalYAML reads a YAML file into target. It reports false
// without error when the file does not exist.
func readAndUnmarshalYAML[T any](path string, target *T) (bool, error) {
	// #nosec G304 -- path is the config file in the user's working directory
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return true, nil
}
