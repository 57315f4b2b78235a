package minify

import (
	"strings"

	"go.trai.ch/assetpack/internal/core/ports"
)

var _ ports.MinifierResolver = (*Registry)(nil)

// Registry maps configuration names to minifier strategies.
type Registry struct {
	logger    ports.Logger
	factories map[string]func() ports.Minifier
}

// NewRegistry creates a Registry holding the compiled-in strategies.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{
		logger: logger,
		factories: map[string]func() ports.Minifier{
			EsbuildName:  func() ports.Minifier { return NewEsbuild() },
			TdewolffName: func() ports.Minifier { return NewTdewolff() },
		},
	}
}

// Resolve builds a Chain from names. Unknown and repeated names are skipped with a warning.
// The name "none" disables minification without a warning.
func (r *Registry) Resolve(names []string) ports.Minifier {
	seen := make(map[string]bool, len(names))
	strategies := make([]ports.Minifier, 0, len(names))
	disabled := false
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		factory, ok := r.factories[name]
		switch {
		case name == NoneName:
			disabled = true
			continue
		case !ok:
			r.logger.Warn("unknown minifier " + raw + ", skipping")
			continue
		case seen[name]:
			r.logger.Warn("minifier " + raw + " listed twice, skipping")
			continue
		}
		seen[name] = true
		strategies = append(strategies, factory())
	}

	if len(strategies) == 0 && !disabled {
		r.logger.Warn("no minifier available, stylesheets and scripts are embedded unminified")
	}
	return NewChain(strategies...)
}
