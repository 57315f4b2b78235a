package ports

import "go.trai.ch/assetpack/internal/core/domain"

// Minifier defines a behavior-preserving minification strategy.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Name identifies the strategy in logs and in the build fingerprint.
	Name() string
	// Supports reports whether the strategy can minify the given kind.
	Supports(kind domain.Kind) bool
	// Minify returns the minified content. It must not rename identifiers,
	// reorder statements, or drop side effects.
	Minify(kind domain.Kind, content []byte) ([]byte, error)
}

// MinifierResolver turns an ordered list of strategy names into a single Minifier.
type MinifierResolver interface {
	// Resolve evaluates the preference list once. Unknown names are skipped.
	Resolve(names []string) Minifier
}
