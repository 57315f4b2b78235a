package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpack/internal/adapters/cas"
	"go.trai.ch/assetpack/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	path := domain.CacheRecordPath(filepath.Join(t.TempDir(), "webui_gen", "web_content.h"))

	record := domain.CacheRecord{
		Fingerprint: "abc123",
		// Truncate because JSON drops the monotonic clock reading.
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Files:       []string{"index.html", "main.js"},
		Digests:     map[string]string{"index.html": "01", "main.js": "02"},
	}

	t.Run("get missing", func(t *testing.T) {
		got, err := store.Get(path)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("put and get", func(t *testing.T) {
		require.NoError(t, store.Put(path, record))

		got, err := store.Get(path)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record, *got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(path))
		require.NoError(t, store.Delete(path), "missing record is not an error")

		got, err := store.Get(path)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".web_content.h.cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{ invalid json"), 0o600))

	_, err := cas.NewStore().Get(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_PutCreateFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := cas.NewStore().Put(filepath.Join(blocker, ".x.cache.json"), domain.CacheRecord{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}
