package ports

import "go.trai.ch/sheet/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration for the given path and resolves it.
	// The path is either a config file or a directory to start the upward search from.
	Load(path string) (*domain.Config, error)
}
