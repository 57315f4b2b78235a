// Package fs provides file system adapters for fingerprinting sources and writing artifacts.
package fs

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes build fingerprints over in-memory assets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint digests the salt, then each asset's path and content, with every field
// length-prefixed so no concatenation of inputs can alias another.
func (h *Hasher) Fingerprint(salt string, assets []domain.SourceAsset) domain.Fingerprint {
	hasher := blake3.New()
	writeField(hasher, []byte(salt))

	files := make([]string, 0, len(assets))
	digests := make(map[string]string, len(assets))
	for _, asset := range assets {
		writeField(hasher, []byte(asset.Path))
		writeField(hasher, asset.Content)

		files = append(files, asset.Path)
		digests[asset.Path] = ContentDigest(asset.Content)
	}

	return domain.Fingerprint{
		Digest:  hex.EncodeToString(hasher.Sum(nil)),
		Files:   files,
		Digests: digests,
	}
}

// ContentDigest returns the xxhash64 of content as 16 hex characters.
func ContentDigest(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

func writeField(w hash.Hash, data []byte) {
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(len(data)))
	_, _ = w.Write(size[:])
	_, _ = w.Write(data)
}
