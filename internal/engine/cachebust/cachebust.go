// Package cachebust appends a content version to the asset references in markup.
package cachebust

import (
	"encoding/binary"
	"encoding/hex"
	"regexp"

	"github.com/zeebo/blake3"
	"go.trai.ch/assetpack/internal/core/domain"
)

// VersionLength is the number of hex characters in a version.
const VersionLength = 8

// attrPattern matches a quoted href or src attribute. The leading whitespace keeps
// data-src and similar attributes out.
var attrPattern = regexp.MustCompile(`(?i)(\s)(href|src)(\s*=\s*)("[^"]*"|'[^']*')`)

// Version returns a short digest over the raw content of assets, in the given order.
func Version(assets []domain.SourceAsset) string {
	h := blake3.New()
	var size [8]byte
	for _, asset := range assets {
		binary.LittleEndian.PutUint64(size[:], uint64(len(asset.Content)))
		_, _ = h.Write(size[:])
		_, _ = h.Write(asset.Content)
	}
	return hex.EncodeToString(h.Sum(nil))[:VersionLength]
}

// Inject rewrites href and src values that name one of paths, optionally with a leading
// slash, to carry ?v=version. Everything else is returned unchanged.
func Inject(markup []byte, version string, paths []string) []byte {
	if version == "" || len(paths) == 0 {
		return markup
	}
	known := make(map[string]bool, len(paths)*2)
	for _, p := range paths {
		known[p] = true
		known["/"+p] = true
	}

	return attrPattern.ReplaceAllFunc(markup, func(attr []byte) []byte {
		m := attrPattern.FindSubmatch(attr)
		quoted := m[4]
		value := string(quoted[1 : len(quoted)-1])
		if !known[value] {
			return attr
		}
		quote := quoted[0]

		out := make([]byte, 0, len(attr)+len(version)+3)
		out = append(out, m[1]...)
		out = append(out, m[2]...)
		out = append(out, m[3]...)
		out = append(out, quote)
		out = append(out, value...)
		out = append(out, "?v="...)
		out = append(out, version...)
		return append(out, quote)
	})
}
