// Package catalog discovers and reads the web sources of a build.
package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetCatalog = (*Catalog)(nil)

// Catalog implements ports.AssetCatalog on the local file system.
type Catalog struct {
	logger ports.Logger
}

// New creates a new Catalog.
func New(logger ports.Logger) *Catalog {
	return &Catalog{logger: logger}
}

// Load reads the markup, stylesheet and scripts named by cfg from cfg.Source.
func (c *Catalog) Load(cfg *domain.Config) (*domain.Catalog, error) {
	root := cfg.Source
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	markup, err := c.loadMarkup(root, cfg.MarkupExt)
	if err != nil {
		return nil, err
	}

	cat := &domain.Catalog{Root: root, Markup: markup}

	if logical, ok := logicalPath(cfg.Stylesheet); ok {
		stylesheet, err := c.loadOptional(root, logical, domain.KindStylesheet)
		if err != nil {
			return nil, err
		}
		cat.Stylesheet = stylesheet
	} else {
		c.logger.Warn("stylesheet " + cfg.Stylesheet + " is outside the source directory, skipping")
	}

	for _, script := range cfg.Scripts {
		logical, ok := logicalPath(script)
		if !ok {
			c.logger.Warn("script " + script + " is outside the source directory, skipping")
			continue
		}
		asset, err := c.loadOptional(root, logical, domain.KindScript)
		if err != nil {
			return nil, err
		}
		if asset != nil {
			cat.Scripts = append(cat.Scripts, *asset)
		}
	}

	return cat, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err == nil && !info.IsDir() {
		err = zerr.New("not a directory")
	}
	if err != nil {
		return errors.Join(domain.ErrSourceRootNotFound, zerr.With(zerr.Wrap(err, domain.ErrSourceRootNotFound.Error()), "path", root))
	}
	return nil
}

// loadMarkup reads every regular file in root carrying ext. os.ReadDir sorts by filename.
func (c *Catalog) loadMarkup(root, ext string) ([]domain.SourceAsset, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", root)
	}

	var assets []domain.SourceAsset
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		content, err := readFile(root, entry.Name())
		if err != nil {
			return nil, err
		}
		assets = append(assets, domain.SourceAsset{
			Path:    entry.Name(),
			Kind:    domain.KindMarkup,
			Content: content,
		})
	}
	return assets, nil
}

// loadOptional reads one asset, returning nil with a warning when it does not exist.
func (c *Catalog) loadOptional(root, logical string, kind domain.Kind) (*domain.SourceAsset, error) {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(logical)))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c.logger.Warn(kind.String() + " " + logical + " not found, skipping")
		return nil, nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", logical)
	case info.IsDir():
		c.logger.Warn(kind.String() + " " + logical + " is a directory, skipping")
		return nil, nil
	}

	content, err := readFile(root, logical)
	if err != nil {
		return nil, err
	}
	return &domain.SourceAsset{Path: logical, Kind: kind, Content: content}, nil
}

func readFile(root, logical string) ([]byte, error) {
	//nolint:gosec // logical is confined to root by logicalPath
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(logical)))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", logical)
	}
	return content, nil
}

// logicalPath normalizes a configured stylesheet or script path to a slash-separated path inside the root.
func logicalPath(p string) (string, bool) {
	slashed := filepath.ToSlash(p)
	if filepath.IsAbs(p) || strings.HasPrefix(slashed, "/") {
		return "", false
	}
	clean := path.Clean(slashed)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	return clean, true
}
