package domain

import (
	"path"
	"strings"
)

// Kind identifies the content type of an asset.
type Kind uint8

const (
	// KindMarkup is an HTML document.
	KindMarkup Kind = iota + 1
	// KindStylesheet is a CSS stylesheet.
	KindStylesheet
	// KindScript is a JavaScript module.
	KindScript
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindStylesheet:
		return "stylesheet"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// Prefix returns the constant name prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindMarkup:
		return "HTML_"
	case KindStylesheet:
		return "CSS_"
	case KindScript:
		return "JS_"
	default:
		return "ASSET_"
	}
}

// SourceAsset is a file read from the source root.
type SourceAsset struct {
	// Path is the slash-separated path relative to the source root.
	Path    string
	Kind    Kind
	Content []byte
}

// ConstantName returns the generated constant name for the asset.
func (a SourceAsset) ConstantName() string {
	return ConstantName(a.Kind, a.Path)
}

// ConstantName derives the constant name for a logical path: the final extension is
// dropped, the rest is sanitized and wrapped in the kind prefix and the compressed suffix.
// lib/crash-log.js becomes JS_LIB_CRASH_LOG_GZ.
func ConstantName(kind Kind, logicalPath string) string {
	p := strings.TrimSuffix(logicalPath, path.Ext(logicalPath))
	return kind.Prefix() + Sanitize(p) + CompressedSuffix
}

// StageSizes records the byte size of an asset after each pipeline stage.
type StageSizes struct {
	Original    int
	Transformed int
	Compressed  int
}

// Reduction returns the percentage saved between the original and compressed sizes.
func (s StageSizes) Reduction() float64 {
	if s.Original == 0 {
		return 0
	}
	return 100 * (1 - float64(s.Compressed)/float64(s.Original))
}

// TransformedAsset is a source asset after transformation and compression.
type TransformedAsset struct {
	Source  SourceAsset
	Content []byte
	Sizes   StageSizes
}

// EmbeddedConstant is a named byte payload destined for the generated artifact.
type EmbeddedConstant struct {
	Name    string
	Payload []byte
}

// Len returns the payload length in bytes.
func (c EmbeddedConstant) Len() int {
	return len(c.Payload)
}

// LenName returns the name of the paired length constant.
func (c EmbeddedConstant) LenName() string {
	return c.Name + LenSuffix
}
