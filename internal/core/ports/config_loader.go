package ports

import "go.trai.ch/gqlmemo/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given directory. A missing config
	// file yields the defaults.
	Load(dir string) (*domain.Config, error)
}
