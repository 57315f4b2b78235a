// Package transform applies the per-kind content transformations of the pipeline.
package transform

import (
	"bytes"
	"fmt"
	"regexp"

	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
)

var commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// Transformer strips markup comments and minifies stylesheets and scripts.
type Transformer struct {
	minifier     ports.Minifier
	logger       ports.Logger
	minifyMarkup bool
}

// New creates a Transformer. minifier is the resolved strategy chain.
func New(minifier ports.Minifier, logger ports.Logger, minifyMarkup bool) *Transformer {
	return &Transformer{
		minifier:     minifier,
		logger:       logger,
		minifyMarkup: minifyMarkup,
	}
}

// Transform returns the transformed content of asset. A failing or missing minifier
// leaves the content as it was and logs a warning.
func (t *Transformer) Transform(asset domain.SourceAsset) []byte {
	switch asset.Kind {
	case domain.KindMarkup:
		out := StripComments(asset.Content)
		if t.minifyMarkup {
			out = t.minify(asset, out)
		}
		return out
	case domain.KindStylesheet, domain.KindScript:
		return t.minify(asset, asset.Content)
	default:
		return asset.Content
	}
}

func (t *Transformer) minify(asset domain.SourceAsset, content []byte) []byte {
	if !t.minifier.Supports(asset.Kind) {
		t.logger.Warn("no minifier for " + asset.Kind.String() + " " + asset.Path + ", embedding as-is")
		return content
	}
	out, err := t.minifier.Minify(asset.Kind, content)
	if err != nil {
		t.logger.Warn(fmt.Sprintf("minifying %s failed, embedding as-is: %v", asset.Path, err))
		return content
	}
	return out
}

// StripComments removes <!-- ... --> regions from markup. Conditional comments
// (<!--[if ...]> and <!--<![endif]-->) are kept.
func StripComments(markup []byte) []byte {
	return commentPattern.ReplaceAllFunc(markup, func(comment []byte) []byte {
		if bytes.HasPrefix(comment, []byte("<!--[if")) || bytes.HasPrefix(comment, []byte("<!--<![endif]")) {
			return comment
		}
		return nil
	})
}
