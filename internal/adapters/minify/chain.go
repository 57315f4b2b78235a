package minify

import (
	"strings"

	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// NoneName is the chain name reported when no strategy is available.
const NoneName = "none"

var _ ports.Minifier = (*Chain)(nil)

// Chain delegates each kind to the first strategy that supports it.
type Chain struct {
	strategies []ports.Minifier
}

// NewChain creates a Chain over strategies in preference order.
func NewChain(strategies ...ports.Minifier) *Chain {
	return &Chain{strategies: strategies}
}

// Name joins the strategy names with "+".
func (c *Chain) Name() string {
	if len(c.strategies) == 0 {
		return NoneName
	}
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

// Supports reports whether any strategy supports kind.
func (c *Chain) Supports(kind domain.Kind) bool {
	return c.pick(kind) != nil
}

// Minify runs the first strategy supporting kind.
func (c *Chain) Minify(kind domain.Kind, content []byte) ([]byte, error) {
	s := c.pick(kind)
	if s == nil {
		return nil, zerr.With(zerr.New("no minifier supports asset kind"), "kind", kind.String())
	}
	out, err := s.Minify(kind, content)
	if err != nil {
		return nil, zerr.With(err, "minifier", s.Name())
	}
	return out, nil
}

func (c *Chain) pick(kind domain.Kind) ports.Minifier {
	for _, s := range c.strategies {
		if s.Supports(kind) {
			return s
		}
	}
	return nil
}
