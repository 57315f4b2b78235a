package minify

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// TdewolffName is the configuration name of the tdewolff strategy.
const TdewolffName = "tdewolff"

const (
	mediaCSS  = "text/css"
	mediaJS   = "application/javascript"
	mediaHTML = "text/html"
)

var _ ports.Minifier = (*Tdewolff)(nil)

// Tdewolff minifies all three kinds with github.com/tdewolff/minify.
type Tdewolff struct {
	m *minify.M
}

// NewTdewolff creates a new Tdewolff strategy.
func NewTdewolff() *Tdewolff {
	m := minify.New()
	m.Add(mediaCSS, &css.Minifier{})
	m.Add(mediaJS, &js.Minifier{KeepVarNames: true})
	m.Add(mediaHTML, &html.Minifier{
		KeepComments:        true,
		KeepDefaultAttrVals: true,
		KeepDocumentTags:    true,
		KeepEndTags:         true,
		KeepQuotes:          true,
	})
	return &Tdewolff{m: m}
}

// Name implements ports.Minifier.
func (t *Tdewolff) Name() string {
	return TdewolffName
}

// Supports implements ports.Minifier.
func (t *Tdewolff) Supports(kind domain.Kind) bool {
	return mediaType(kind) != ""
}

// Minify implements ports.Minifier.
func (t *Tdewolff) Minify(kind domain.Kind, content []byte) ([]byte, error) {
	media := mediaType(kind)
	if media == "" {
		return nil, zerr.With(zerr.New("unsupported asset kind"), "kind", kind.String())
	}
	out, err := t.m.Bytes(media, content)
	if err != nil {
		return nil, zerr.Wrap(err, "tdewolff minify failed")
	}
	return out, nil
}

func mediaType(kind domain.Kind) string {
	switch kind {
	case domain.KindStylesheet:
		return mediaCSS
	case domain.KindScript:
		return mediaJS
	case domain.KindMarkup:
		return mediaHTML
	default:
		return ""
	}
}
