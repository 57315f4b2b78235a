// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/assetpack/internal/adapters/cas"
	_ "go.trai.ch/assetpack/internal/adapters/catalog"
	_ "go.trai.ch/assetpack/internal/adapters/config"
	_ "go.trai.ch/assetpack/internal/adapters/fs"
	_ "go.trai.ch/assetpack/internal/adapters/logger"
	_ "go.trai.ch/assetpack/internal/adapters/minify"
	_ "go.trai.ch/assetpack/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/assetpack/internal/app"
)
