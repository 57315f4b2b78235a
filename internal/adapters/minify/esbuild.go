// Package minify provides the minifier strategies for stylesheets, scripts and markup.
package minify

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// EsbuildName is the configuration name of the esbuild strategy.
const EsbuildName = "esbuild"

var _ ports.Minifier = (*Esbuild)(nil)

// Esbuild minifies stylesheets and scripts with the esbuild transform API.
// Only whitespace is removed: identifiers and syntax are printed as written.
type Esbuild struct{}

// NewEsbuild creates a new Esbuild strategy.
func NewEsbuild() *Esbuild {
	return &Esbuild{}
}

// Name implements ports.Minifier.
func (e *Esbuild) Name() string {
	return EsbuildName
}

// Supports implements ports.Minifier.
func (e *Esbuild) Supports(kind domain.Kind) bool {
	return kind == domain.KindStylesheet || kind == domain.KindScript
}

// Minify implements ports.Minifier.
func (e *Esbuild) Minify(kind domain.Kind, content []byte) ([]byte, error) {
	loader := api.LoaderJS
	if kind == domain.KindStylesheet {
		loader = api.LoaderCSS
	}

	result := api.Transform(string(content), api.TransformOptions{
		Loader:            loader,
		MinifyWhitespace:  true,
		MinifyIdentifiers: false,
		MinifySyntax:      false,
		Charset:           api.CharsetUTF8,
		LegalComments:     api.LegalCommentsNone,
		LogLevel:          api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, msg := range result.Errors {
			if msg.Location != nil {
				msgs = append(msgs, zerr.With(zerr.New(msg.Text), "line", msg.Location.Line).Error())
				continue
			}
			msgs = append(msgs, msg.Text)
		}
		return nil, zerr.With(zerr.New("esbuild transform failed"), "errors", strings.Join(msgs, "; "))
	}

	return result.Code, nil
}
