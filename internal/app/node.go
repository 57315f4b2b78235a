package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetpack/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/assetpack/internal/adapters/catalog" //nolint:depguard // Wired in app layer
	"go.trai.ch/assetpack/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/assetpack/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/assetpack/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/assetpack/internal/adapters/minify"  //nolint:depguard // Wired in app layer
	"go.trai.ch/assetpack/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/assetpack/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			minify.NodeID,
			catalog.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			fs.WriterNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	minifiers, err := graft.Dep[ports.MinifierResolver](ctx)
	if err != nil {
		return nil, err
	}
	cat, err := graft.Dep[ports.AssetCatalog](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.ArtifactWriter](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, minifiers, cat, hasher, store, writer, w, log), nil
}
