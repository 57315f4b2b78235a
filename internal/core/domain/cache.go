package domain

import (
	"slices"
	"time"
)

// CacheState is the outcome of the build cache check.
type CacheState uint8

const (
	// CacheStale means the pipeline must run.
	CacheStale CacheState = iota
	// CacheFresh means the artifact matches the inputs and the pipeline is skipped.
	CacheFresh
)

// String returns the human-readable name of the state.
func (s CacheState) String() string {
	if s == CacheFresh {
		return "fresh"
	}
	return "stale"
}

// CacheRecord is persisted beside the artifact after each successful regeneration.
type CacheRecord struct {
	Fingerprint string            `json:"fingerprint"`
	GeneratedAt time.Time         `json:"generated_at,omitzero"`
	Files       []string          `json:"files"`
	Digests     map[string]string `json:"digests,omitempty"`
}

// Fingerprint is the combined digest of all contributing inputs.
type Fingerprint struct {
	// Digest is the hex BLAKE3 digest over the settings salt and every asset.
	Digest string
	// Files lists the contributing logical paths in catalog order.
	Files []string
	// Digests maps each logical path to its xxhash64 content digest.
	Digests map[string]string
}

// FileChanges lists how the inputs differ from a previous record.
type FileChanges struct {
	Added   []string
	Removed []string
	Changed []string
}

// Empty reports whether no per-file difference was found.
func (c FileChanges) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// Diff compares the current fingerprint against a previous record.
// Results are sorted for stable log output.
func (f Fingerprint) Diff(prev *CacheRecord) FileChanges {
	var changes FileChanges
	if prev == nil {
		changes.Added = slices.Clone(f.Files)
		slices.Sort(changes.Added)
		return changes
	}
	for _, file := range f.Files {
		old, ok := prev.Digests[file]
		switch {
		case !ok && !slices.Contains(prev.Files, file):
			changes.Added = append(changes.Added, file)
		case old != f.Digests[file]:
			changes.Changed = append(changes.Changed, file)
		}
	}
	for _, file := range prev.Files {
		if !slices.Contains(f.Files, file) {
			changes.Removed = append(changes.Removed, file)
		}
	}
	slices.Sort(changes.Added)
	slices.Sort(changes.Removed)
	slices.Sort(changes.Changed)
	return changes
}

// Record builds the cache record persisted after a regeneration.
func (f Fingerprint) Record(now time.Time) CacheRecord {
	return CacheRecord{
		Fingerprint: f.Digest,
		GeneratedAt: now,
		Files:       slices.Clone(f.Files),
		Digests:     f.Digests,
	}
}

// AssetReport describes one embedded asset for diagnostics.
type AssetReport struct {
	Path     string
	Constant string
	Sizes    StageSizes
}

// BuildReport summarizes a pipeline invocation.
type BuildReport struct {
	State       CacheState
	Regenerated bool
	Fingerprint string
	Version     string
	Output      string
	Assets      []AssetReport
}
