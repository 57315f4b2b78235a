// Package main is the entry point for assetpack.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetpack/cmd/assetpack/commands"
	"go.trai.ch/assetpack/internal/app"
	"go.trai.ch/assetpack/internal/core/domain"
	_ "go.trai.ch/assetpack/internal/wiring"
)

// Exit codes.
const (
	exitOK            = 0
	exitFailure       = 1
	exitSourceMissing = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// The logger is part of the graph that failed to build.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}

	logs, _ := components.Logger.(commands.LogFormatter)
	cli := commands.New(components.App, logs)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		if errors.Is(err, domain.ErrSourceRootNotFound) {
			return exitSourceMissing
		}
		return exitFailure
	}
	return exitOK
}
