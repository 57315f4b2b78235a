package ports

import "go.trai.ch/assetpack/internal/core/domain"

// CacheStore defines the interface for persisting the build cache record.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Get retrieves the record stored at path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.CacheRecord, error)

	// Put atomically replaces the record stored at path.
	Put(path string, record domain.CacheRecord) error

	// Delete removes the record at path. A missing record is not an error.
	Delete(path string) error
}
