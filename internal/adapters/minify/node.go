package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetpack/internal/adapters/logger"
	"go.trai.ch/assetpack/internal/core/ports"
)

// NodeID is the unique identifier for the minifier registry Graft node.
const NodeID graft.ID = "adapter.minify"

func init() {
	graft.Register(graft.Node[ports.MinifierResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.MinifierResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(log), nil
		},
	})
}
