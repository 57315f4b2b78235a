package pipeline_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports/mocks"
	"go.trai.ch/assetpack/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

const artifact = "gen/web_content.h"

func TestBuildCache_Check(t *testing.T) {
	t.Parallel()

	fp := domain.Fingerprint{Digest: "abc", Files: []string{"index.html"}}
	recordPath := domain.CacheRecordPath(artifact)

	tests := []struct {
		name   string
		force  bool
		setup  func(store *mocks.MockCacheStore, writer *mocks.MockArtifactWriter)
		state  domain.CacheState
		reason string
	}{
		{
			name:   "forced",
			force:  true,
			setup:  func(*mocks.MockCacheStore, *mocks.MockArtifactWriter) {},
			state:  domain.CacheStale,
			reason: pipeline.ReasonForced,
		},
		{
			name: "artifact missing",
			setup: func(_ *mocks.MockCacheStore, w *mocks.MockArtifactWriter) {
				w.EXPECT().Exists(artifact).Return(false)
			},
			state:  domain.CacheStale,
			reason: pipeline.ReasonArtifactMissing,
		},
		{
			name: "no record",
			setup: func(s *mocks.MockCacheStore, w *mocks.MockArtifactWriter) {
				w.EXPECT().Exists(artifact).Return(true)
				s.EXPECT().Get(recordPath).Return(nil, nil)
			},
			state:  domain.CacheStale,
			reason: pipeline.ReasonNoRecord,
		},
		{
			name: "corrupt record",
			setup: func(s *mocks.MockCacheStore, w *mocks.MockArtifactWriter) {
				w.EXPECT().Exists(artifact).Return(true)
				s.EXPECT().Get(recordPath).Return(nil, errors.New("unexpected end of JSON input"))
			},
			state:  domain.CacheStale,
			reason: pipeline.ReasonRecordCorrupt,
		},
		{
			name: "fingerprint differs",
			setup: func(s *mocks.MockCacheStore, w *mocks.MockArtifactWriter) {
				w.EXPECT().Exists(artifact).Return(true)
				s.EXPECT().Get(recordPath).Return(&domain.CacheRecord{Fingerprint: "old"}, nil)
			},
			state:  domain.CacheStale,
			reason: pipeline.ReasonInputsChanged,
		},
		{
			name: "fresh",
			setup: func(s *mocks.MockCacheStore, w *mocks.MockArtifactWriter) {
				w.EXPECT().Exists(artifact).Return(true)
				s.EXPECT().Get(recordPath).Return(&domain.CacheRecord{Fingerprint: "abc"}, nil)
			},
			state: domain.CacheFresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			store := mocks.NewMockCacheStore(ctrl)
			writer := mocks.NewMockArtifactWriter(ctrl)
			tt.setup(store, writer)

			d := pipeline.NewBuildCache(store, writer).Check(artifact, fp, tt.force)
			assert.Equal(t, tt.state, d.State)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestBuildCache_Commit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCacheStore(ctrl)
	writer := mocks.NewMockArtifactWriter(ctrl)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	fp := domain.Fingerprint{Digest: "abc", Files: []string{"a.js"}, Digests: map[string]string{"a.js": "01"}}
	store.EXPECT().Put(domain.CacheRecordPath(artifact), fp.Record(now)).Return(nil)
	store.EXPECT().Delete(domain.CacheRecordPath(artifact)).Return(nil)

	c := pipeline.NewBuildCache(store, writer)
	require.NoError(t, c.Commit(artifact, fp, now))
	require.NoError(t, c.Invalidate(artifact))
}

func TestCheckNames(t *testing.T) {
	t.Parallel()

	ok := []domain.SourceAsset{
		{Path: "index.html", Kind: domain.KindMarkup},
		{Path: "index.js", Kind: domain.KindScript},
		{Path: "lib/a.js", Kind: domain.KindScript},
	}
	require.NoError(t, pipeline.CheckNames(ok))

	clash := []domain.SourceAsset{
		{Path: "a-b.js", Kind: domain.KindScript},
		{Path: "a_b.js", Kind: domain.KindScript},
	}
	err := pipeline.CheckNames(clash)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstantNameCollision)
	assert.ErrorContains(t, err, "a-b.js and a_b.js both map to JS_A_B_GZ")
}
