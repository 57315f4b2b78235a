// Package app implements the application layer for assetpack.
package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/assetpack/internal/adapters/watcher"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
	"go.trai.ch/assetpack/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	minifiers    ports.MinifierResolver
	writer       ports.ArtifactWriter
	watcher      ports.Watcher
	logger       ports.Logger
	driver       *pipeline.Driver
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	minifiers ports.MinifierResolver,
	catalog ports.AssetCatalog,
	hasher ports.Hasher,
	store ports.CacheStore,
	writer ports.ArtifactWriter,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		minifiers:    minifiers,
		writer:       writer,
		watcher:      w,
		logger:       log,
		driver:       pipeline.NewDriver(catalog, hasher, store, writer, log),
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounce sets the window used to coalesce source events in watch mode.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// WithClock replaces the time source used for cache records.
func (a *App) WithClock(now func() time.Time) *App {
	a.driver.WithClock(now)
	return a
}

// GenerateOptions configuration for the Generate and Watch methods.
type GenerateOptions struct {
	// ConfigPath is an explicit config file. Empty means discovery in the working directory.
	ConfigPath string
	// NoCache forces regeneration.
	NoCache bool
}

// Generate runs the pipeline once.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (*domain.BuildReport, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return a.driver.Run(ctx, cfg, a.minifiers.Resolve(cfg.Minifiers), opts.NoCache)
}

// Watch generates once, then regenerates whenever the source directory changes, until ctx
// is cancelled. Build failures are logged and watching continues; a vanished source
// directory ends the loop with an error.
func (a *App) Watch(ctx context.Context, opts GenerateOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	minifier := a.minifiers.Resolve(cfg.Minifiers)

	if _, err := a.driver.Run(ctx, cfg, minifier, opts.NoCache); err != nil {
		if errors.Is(err, domain.ErrSourceRootNotFound) {
			return err
		}
		a.logger.Error(err)
	}

	g, gctx := errgroup.WithContext(ctx)
	if err := a.watcher.Start(gctx, cfg.Source); err != nil {
		return errors.Join(domain.ErrWatcherStartFailed, err)
	}
	defer func() { _ = a.watcher.Stop() }()
	a.logger.Info("watching " + filepath.ToSlash(cfg.Source) + " for changes")

	batches := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case batches <- paths:
		default:
			// A rebuild is already queued and fingerprints every source.
		}
	})
	generated := generatedPaths(cfg.Output)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if generated[filepath.Clean(event.Path)] {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-batches:
				a.logger.Info("change detected: " + strings.Join(relativeTo(cfg.Source, paths), ", "))
				if _, err := a.driver.Run(gctx, cfg, minifier, false); err != nil {
					if errors.Is(err, domain.ErrSourceRootNotFound) {
						return err
					}
					if gctx.Err() != nil {
						return nil
					}
					a.logger.Error(err)
				}
			}
		}
	})

	return g.Wait()
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes the generated artifact and its cache record.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error
	if err := a.writer.Remove(cfg.Output); err != nil {
		errs = errors.Join(errs, err)
	} else {
		a.logger.Info("removed " + filepath.ToSlash(cfg.Output))
	}
	if err := a.driver.Cache().Invalidate(cfg.Output); err != nil {
		errs = errors.Join(errs, err)
	} else {
		a.logger.Info("removed " + filepath.ToSlash(domain.CacheRecordPath(cfg.Output)))
	}
	return errs
}

// generatedPaths lists the files the pipeline itself writes, which watch mode ignores.
func generatedPaths(output string) map[string]bool {
	paths := map[string]bool{
		filepath.Clean(output):                         true,
		filepath.Clean(domain.CacheRecordPath(output)): true,
	}
	if abs, err := filepath.Abs(output); err == nil {
		paths[abs] = true
		paths[domain.CacheRecordPath(abs)] = true
	}
	return paths
}

func relativeTo(root string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			rel = p
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}
