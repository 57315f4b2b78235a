package ports

import "go.trai.ch/assetpack/internal/core/domain"

// ConfigLoader defines the interface for loading the pipeline configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path discovers the config file in the
	// working directory; when none exists the defaults are returned.
	Load(path string) (*domain.Config, error)
}
