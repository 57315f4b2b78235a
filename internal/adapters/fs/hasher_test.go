package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/assetpack/internal/adapters/fs"
	"go.trai.ch/assetpack/internal/core/domain"
)

func assets() []domain.SourceAsset {
	return []domain.SourceAsset{
		{Path: "index.html", Kind: domain.KindMarkup, Content: []byte("<p>hi</p>")},
		{Path: "style.css", Kind: domain.KindStylesheet, Content: []byte("body{}")},
		{Path: "main.js", Kind: domain.KindScript, Content: []byte("main()")},
	}
}

func TestHasher_Fingerprint(t *testing.T) {
	t.Parallel()
	h := fs.NewHasher()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		a := h.Fingerprint("salt", assets())
		b := h.Fingerprint("salt", assets())
		assert.Equal(t, a, b)
		assert.Len(t, a.Digest, 64)
		assert.Equal(t, []string{"index.html", "style.css", "main.js"}, a.Files)
		assert.Len(t, a.Digests, 3)
	})

	t.Run("content change", func(t *testing.T) {
		t.Parallel()
		changed := assets()
		changed[2].Content = []byte("main();")

		a := h.Fingerprint("salt", assets())
		b := h.Fingerprint("salt", changed)
		assert.NotEqual(t, a.Digest, b.Digest)
		assert.Equal(t, a.Digests["index.html"], b.Digests["index.html"])
		assert.NotEqual(t, a.Digests["main.js"], b.Digests["main.js"])
	})

	t.Run("salt change", func(t *testing.T) {
		t.Parallel()
		a := h.Fingerprint("ext=.html", assets())
		b := h.Fingerprint("ext=.htm", assets())
		assert.NotEqual(t, a.Digest, b.Digest)
	})

	t.Run("order matters", func(t *testing.T) {
		t.Parallel()
		reordered := assets()
		reordered[1], reordered[2] = reordered[2], reordered[1]

		a := h.Fingerprint("salt", assets())
		b := h.Fingerprint("salt", reordered)
		assert.NotEqual(t, a.Digest, b.Digest, "script load order is part of the artifact")
	})

	t.Run("field boundaries", func(t *testing.T) {
		t.Parallel()
		a := h.Fingerprint("", []domain.SourceAsset{{Path: "ab", Content: []byte("c")}})
		b := h.Fingerprint("", []domain.SourceAsset{{Path: "a", Content: []byte("bc")}})
		assert.NotEqual(t, a.Digest, b.Digest)
	})
}

func TestContentDigest(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ef46db3751d8e999", fs.ContentDigest(nil))
	assert.Len(t, fs.ContentDigest([]byte("body{}")), 16)
}
