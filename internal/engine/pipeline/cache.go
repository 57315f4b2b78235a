// Package pipeline drives one build from source catalog to generated header.
package pipeline

import (
	"time"

	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports"
)

// Reasons a build is STALE.
const (
	ReasonForced          = "--no-cache requested"
	ReasonArtifactMissing = "artifact missing"
	ReasonNoRecord        = "no cache record"
	ReasonRecordCorrupt   = "cache record unreadable"
	ReasonInputsChanged   = "inputs changed"
)

// Decision is the outcome of BuildCache.Check.
type Decision struct {
	State domain.CacheState
	// Reason explains a STALE state.
	Reason string
	// Previous is the record read from disk, if any.
	Previous *domain.CacheRecord
}

// BuildCache decides whether the artifact is FRESH for a fingerprint.
type BuildCache struct {
	store  ports.CacheStore
	writer ports.ArtifactWriter
}

// NewBuildCache creates a BuildCache over the record store and the artifact writer.
func NewBuildCache(store ports.CacheStore, writer ports.ArtifactWriter) *BuildCache {
	return &BuildCache{store: store, writer: writer}
}

// Check compares fp with the record stored beside artifact. A missing, unreadable or
// corrupt record is a STALE result, never an error.
func (c *BuildCache) Check(artifact string, fp domain.Fingerprint, force bool) Decision {
	if force {
		return Decision{State: domain.CacheStale, Reason: ReasonForced}
	}
	if !c.writer.Exists(artifact) {
		return Decision{State: domain.CacheStale, Reason: ReasonArtifactMissing}
	}

	prev, err := c.store.Get(domain.CacheRecordPath(artifact))
	switch {
	case err != nil:
		return Decision{State: domain.CacheStale, Reason: ReasonRecordCorrupt}
	case prev == nil:
		return Decision{State: domain.CacheStale, Reason: ReasonNoRecord}
	case prev.Fingerprint != fp.Digest:
		return Decision{State: domain.CacheStale, Reason: ReasonInputsChanged, Previous: prev}
	}
	return Decision{State: domain.CacheFresh, Previous: prev}
}

// Commit persists the record for fp. Call it only after the artifact is written.
func (c *BuildCache) Commit(artifact string, fp domain.Fingerprint, now time.Time) error {
	return c.store.Put(domain.CacheRecordPath(artifact), fp.Record(now))
}

// Invalidate removes the record stored beside artifact.
func (c *BuildCache) Invalidate(artifact string) error {
	return c.store.Delete(domain.CacheRecordPath(artifact))
}
