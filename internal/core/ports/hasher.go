package ports

import "go.trai.ch/assetpack/internal/core/domain"

// Hasher defines the interface for computing build fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint digests the settings salt and the assets in the order given.
	Fingerprint(salt string, assets []domain.SourceAsset) domain.Fingerprint
}
