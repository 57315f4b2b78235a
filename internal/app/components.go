package app

import "go.trai.ch/assetpack/internal/core/ports"

// Components holds the resolved application graph handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
