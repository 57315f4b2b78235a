package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpack/internal/core/domain"
)

func TestConstantName(t *testing.T) {
	tests := []struct {
		name string
		kind domain.Kind
		path string
		want string
	}{
		{name: "markup", kind: domain.KindMarkup, path: "index.html", want: "HTML_INDEX_GZ"},
		{name: "stylesheet", kind: domain.KindStylesheet, path: "style.css", want: "CSS_STYLE_GZ"},
		{name: "hyphenated script", kind: domain.KindScript, path: "crash-log.js", want: "JS_CRASH_LOG_GZ"},
		{name: "nested script", kind: domain.KindScript, path: "lib/alpine.min.js", want: "JS_LIB_ALPINE_MIN_GZ"},
		{name: "mixed case", kind: domain.KindScript, path: "Form-Utils.js", want: "JS_FORM_UTILS_GZ"},
		{name: "no extension", kind: domain.KindScript, path: "vendor/loader", want: "JS_VENDOR_LOADER_GZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ConstantName(tt.kind, tt.path))
		})
	}
}

func TestConstantName_KindsDoNotCollide(t *testing.T) {
	assert.NotEqual(t,
		domain.ConstantName(domain.KindMarkup, "style.html"),
		domain.ConstantName(domain.KindStylesheet, "style.css"),
	)
}

func TestEmbeddedConstant(t *testing.T) {
	c := domain.EmbeddedConstant{Name: "JS_MAIN_GZ", Payload: []byte{1, 2, 3}}
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "JS_MAIN_GZ_LEN", c.LenName())
}

func TestCacheRecordPath(t *testing.T) {
	assert.Equal(t, "src/webui_gen/.web_content.h.cache.json", domain.CacheRecordPath("src/webui_gen/web_content.h"))
	assert.Equal(t, ".out.h.cache.json", domain.CacheRecordPath("out.h"))
}

func TestGuardName(t *testing.T) {
	assert.Equal(t, "WEB_CONTENT_H", domain.GuardName("src/webui_gen/web_content.h"))
	assert.Equal(t, "ASSETS_GEN_HPP", domain.GuardName("assets-gen.hpp"))
}

func TestCatalog_Assets(t *testing.T) {
	c := &domain.Catalog{
		Markup: []domain.SourceAsset{
			{Path: "help.html", Kind: domain.KindMarkup},
			{Path: "index.html", Kind: domain.KindMarkup},
		},
		Stylesheet: &domain.SourceAsset{Path: "style.css", Kind: domain.KindStylesheet},
		Scripts: []domain.SourceAsset{
			{Path: "lib/a.js", Kind: domain.KindScript},
			{Path: "app.js", Kind: domain.KindScript},
		},
	}

	assert.Equal(t, []string{"help.html", "index.html", "style.css", "lib/a.js", "app.js"}, c.Paths())
	assert.Equal(t, []string{"style.css", "lib/a.js", "app.js"}, c.ReferencePaths())

	c.Stylesheet = nil
	assert.Equal(t, []string{"help.html", "index.html", "lib/a.js", "app.js"}, c.Paths())
	assert.Equal(t, []string{"lib/a.js", "app.js"}, c.ReferencePaths())
}

func TestStageSizes_Reduction(t *testing.T) {
	assert.InDelta(t, 75.0, domain.StageSizes{Original: 400, Transformed: 300, Compressed: 100}.Reduction(), 0.001)
	assert.Zero(t, domain.StageSizes{}.Reduction())
}

func TestFingerprint_Diff(t *testing.T) {
	current := domain.Fingerprint{
		Digest:  "new",
		Files:   []string{"index.html", "style.css", "main.js"},
		Digests: map[string]string{"index.html": "1", "style.css": "2", "main.js": "3"},
	}

	t.Run("no previous record", func(t *testing.T) {
		changes := current.Diff(nil)
		assert.Equal(t, []string{"index.html", "main.js", "style.css"}, changes.Added)
		assert.Empty(t, changes.Removed)
		assert.Empty(t, changes.Changed)
	})

	t.Run("added removed changed", func(t *testing.T) {
		prev := &domain.CacheRecord{
			Fingerprint: "old",
			Files:       []string{"index.html", "style.css", "utils.js"},
			Digests:     map[string]string{"index.html": "1", "style.css": "9", "utils.js": "4"},
		}
		changes := current.Diff(prev)
		assert.Equal(t, []string{"main.js"}, changes.Added)
		assert.Equal(t, []string{"utils.js"}, changes.Removed)
		assert.Equal(t, []string{"style.css"}, changes.Changed)
		assert.False(t, changes.Empty())
	})

	t.Run("identical", func(t *testing.T) {
		prev := &domain.CacheRecord{Files: current.Files, Digests: current.Digests}
		assert.True(t, current.Diff(prev).Empty())
	})
}

func TestFingerprint_Record(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	fp := domain.Fingerprint{Digest: "abc", Files: []string{"a.html"}, Digests: map[string]string{"a.html": "1"}}

	rec := fp.Record(now)
	require.Equal(t, "abc", rec.Fingerprint)
	assert.Equal(t, now, rec.GeneratedAt)
	assert.Equal(t, []string{"a.html"}, rec.Files)
}

func TestConfig_Salt(t *testing.T) {
	a := domain.DefaultConfig()
	b := domain.DefaultConfig()
	assert.Equal(t, a.Salt("esbuild"), b.Salt("esbuild"))
	assert.NotEqual(t, a.Salt("esbuild"), a.Salt("tdewolff"))

	b.Scripts = []string{"crash-log.js", "main.js"}
	assert.NotEqual(t, a.Salt("esbuild"), b.Salt("esbuild"), "script order is part of the salt")

	b = domain.DefaultConfig()
	b.MinifyMarkup = true
	assert.NotEqual(t, a.Salt("esbuild"), b.Salt("esbuild"))

	b = domain.DefaultConfig()
	b.Source = "web"
	assert.NotEqual(t, a.Salt("esbuild"), b.Salt("esbuild"), "the source directory appears in the artifact")
}
