package ports

import "go.trai.ch/assetpack/internal/core/domain"

// AssetCatalog defines the interface for discovering the assets of a build.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type AssetCatalog interface {
	// Load reads every asset the configuration names, in artifact order.
	// A missing source root is fatal; missing optional assets are skipped with a warning.
	Load(cfg *domain.Config) (*domain.Catalog, error)
}
