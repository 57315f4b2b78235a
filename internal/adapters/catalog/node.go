package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetpack/internal/adapters/logger"
	"go.trai.ch/assetpack/internal/core/ports"
)

// NodeID is the unique identifier for the asset catalog Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.AssetCatalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.AssetCatalog, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
