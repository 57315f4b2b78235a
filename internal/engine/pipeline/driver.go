package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
	"go.trai.ch/assetpack/internal/engine/cachebust"
	"go.trai.ch/assetpack/internal/engine/compress"
	"go.trai.ch/assetpack/internal/engine/literal"
	"go.trai.ch/assetpack/internal/engine/transform"
	"go.trai.ch/zerr"
)

// Driver runs the asset pipeline for one configuration.
type Driver struct {
	catalog ports.AssetCatalog
	hasher  ports.Hasher
	writer  ports.ArtifactWriter
	cache   *BuildCache
	logger  ports.Logger
	now     func() time.Time
}

// NewDriver creates a new Driver.
func NewDriver(
	catalog ports.AssetCatalog,
	hasher ports.Hasher,
	store ports.CacheStore,
	writer ports.ArtifactWriter,
	logger ports.Logger,
) *Driver {
	return &Driver{
		catalog: catalog,
		hasher:  hasher,
		writer:  writer,
		cache:   NewBuildCache(store, writer),
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for cache records.
func (d *Driver) WithClock(now func() time.Time) *Driver {
	d.now = now
	return d
}

// Cache returns the build cache the driver consults.
func (d *Driver) Cache() *BuildCache {
	return d.cache
}

// Run builds cfg.Output from cfg.Source unless the build cache reports it FRESH.
// force bypasses the cache.
func (d *Driver) Run(ctx context.Context, cfg *domain.Config, minifier ports.Minifier, force bool) (*domain.BuildReport, error) {
	cat, err := d.catalog.Load(cfg)
	if err != nil {
		if errors.Is(err, domain.ErrSourceRootNotFound) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrBuildFailed, err)
	}

	assets := cat.Assets()
	if err := CheckNames(assets); err != nil {
		return nil, errors.Join(domain.ErrBuildFailed, err)
	}

	fp := d.hasher.Fingerprint(cfg.Salt(minifier.Name()), assets)
	report := &domain.BuildReport{Fingerprint: fp.Digest, Output: cfg.Output}

	decision := d.cache.Check(cfg.Output, fp, force)
	report.State = decision.State
	if decision.State == domain.CacheFresh {
		d.logger.Info(fmt.Sprintf("%s is up to date (%d assets)", cfg.Output, len(assets)))
		return report, nil
	}
	d.logger.Info("cache miss: " + decision.Reason + ", regenerating")
	d.logChanges(fp, decision)

	if cfg.CacheBust {
		report.Version = cachebust.Version(assets)
	}

	transformer := transform.New(minifier, d.logger, cfg.MinifyMarkup)
	header := literal.NewHeader(cat.Root, cfg.Output, cfg.Includes, cfg.Attribute)
	refs := cat.ReferencePaths()

	for _, asset := range assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content := transformer.Transform(asset)
		if asset.Kind == domain.KindMarkup && cfg.CacheBust {
			content = cachebust.Inject(content, report.Version, refs)
		}

		payload, err := compress.Gzip(content)
		if err != nil {
			return nil, errors.Join(domain.ErrBuildFailed, zerr.With(err, "asset", asset.Path))
		}

		sizes := domain.StageSizes{
			Original:    len(asset.Content),
			Transformed: len(content),
			Compressed:  len(payload),
		}
		constant := domain.EmbeddedConstant{Name: asset.ConstantName(), Payload: payload}
		header.Add(asset.Path, sizes, constant)
		report.Assets = append(report.Assets, domain.AssetReport{Path: asset.Path, Constant: constant.Name, Sizes: sizes})

		d.logger.Info(fmt.Sprintf("%s: %d -> %d -> %d bytes (%s)",
			asset.Path, sizes.Original, sizes.Transformed, sizes.Compressed, describeReduction(sizes.Reduction())))
	}

	out := header.Bytes()
	if err := d.writer.Write(cfg.Output, out); err != nil {
		return nil, errors.Join(domain.ErrBuildFailed, err)
	}
	if err := d.cache.Commit(cfg.Output, fp, d.now()); err != nil {
		return nil, errors.Join(domain.ErrBuildFailed, err)
	}

	report.Regenerated = true
	d.logger.Info(fmt.Sprintf("wrote %s (%d assets, %d bytes)", cfg.Output, header.Len(), len(out)))
	return report, nil
}

// describeReduction renders a size change; tiny assets grow by the gzip framing.
func describeReduction(pct float64) string {
	if pct < 0 {
		return fmt.Sprintf("%.1f%% larger", -pct)
	}
	return fmt.Sprintf("%.1f%% smaller", pct)
}

func (d *Driver) logChanges(fp domain.Fingerprint, decision Decision) {
	if decision.Previous == nil {
		return
	}
	changes := fp.Diff(decision.Previous)
	if changes.Empty() {
		// Same files with the same bytes: the settings changed.
		d.logger.Info("settings changed")
		return
	}
	for _, group := range []struct {
		label string
		files []string
	}{
		{"added", changes.Added},
		{"removed", changes.Removed},
		{"changed", changes.Changed},
	} {
		if len(group.files) > 0 {
			d.logger.Info(group.label + ": " + strings.Join(group.files, ", "))
		}
	}
}
