package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpack/internal/adapters/catalog"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func mustWrite(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
	require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
}

func configFor(root string, scripts ...string) *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Source = root
	cfg.Scripts = scripts
	return cfg
}

func TestCatalog_Load(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mustWrite(t, root, "settings.html", "<p>settings</p>")
	mustWrite(t, root, "index.html", "<p>index</p>")
	mustWrite(t, root, "notes.txt", "ignored")
	mustWrite(t, root, "style.css", "body{}")
	mustWrite(t, root, "main.js", "main()")
	mustWrite(t, root, "lib/alpine.js", "alpine()")
	require.NoError(t, os.Mkdir(filepath.Join(root, "nested.html"), domain.DirPerm))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	cat, err := catalog.New(log).Load(configFor(root, "lib/alpine.js", "main.js"))
	require.NoError(t, err)

	assert.Equal(t, root, cat.Root)
	assert.Equal(t, []string{"index.html", "settings.html", "style.css", "lib/alpine.js", "main.js"}, cat.Paths())
	require.NotNil(t, cat.Stylesheet)
	assert.Equal(t, domain.KindStylesheet, cat.Stylesheet.Kind)
	assert.Equal(t, []byte("alpine()"), cat.Scripts[0].Content)
	assert.Equal(t, domain.KindScript, cat.Scripts[1].Kind)
	assert.Equal(t, domain.KindMarkup, cat.Markup[0].Kind)
}

func TestCatalog_Load_MissingOptionalAssets(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mustWrite(t, root, "index.html", "<p></p>")
	mustWrite(t, root, "main.js", "main()")
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir.js"), domain.DirPerm))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Warn("stylesheet style.css not found, skipping"),
		log.EXPECT().Warn("script utils.js not found, skipping"),
		log.EXPECT().Warn("script dir.js is a directory, skipping"),
	)

	cat, err := catalog.New(log).Load(configFor(root, "main.js", "utils.js", "dir.js"))
	require.NoError(t, err)

	assert.Nil(t, cat.Stylesheet)
	assert.Equal(t, []string{"index.html", "main.js"}, cat.Paths())
}

func TestCatalog_Load_RejectsEscapingScripts(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	root := filepath.Join(parent, "web")
	mustWrite(t, root, "style.css", "")
	mustWrite(t, parent, "secret.js", "leak()")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("script ../secret.js is outside the source directory, skipping")
	log.EXPECT().Warn("script lib/../../secret.js is outside the source directory, skipping")
	log.EXPECT().Warn(gomock.Any()) // absolute path

	abs := filepath.Join(parent, "secret.js")
	cat, err := catalog.New(log).Load(configFor(root, "../secret.js", "lib/../../secret.js", abs))
	require.NoError(t, err)
	assert.Empty(t, cat.Scripts)
}

func TestCatalog_Load_RejectsEscapingStylesheet(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	root := filepath.Join(parent, "web")
	mustWrite(t, root, "index.html", "<p>")
	mustWrite(t, parent, "x.css", "body{}")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("stylesheet ../x.css is outside the source directory, skipping")

	cfg := configFor(root)
	cfg.Stylesheet = "../x.css"
	cat, err := catalog.New(log).Load(cfg)
	require.NoError(t, err)
	assert.Nil(t, cat.Stylesheet)
	assert.Equal(t, []string{"index.html"}, cat.Paths())
}

func TestCatalog_Load_SourceRootNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "nope")

		_, err := catalog.New(log).Load(configFor(missing))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSourceRootNotFound))
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		mustWrite(t, root, "file", "x")

		_, err := catalog.New(log).Load(configFor(filepath.Join(root, "file")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSourceRootNotFound))
	})
}

func TestCatalog_Load_ReadFailureIsFatal(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("file permissions are not enforced")
	}
	t.Parallel()

	root := t.TempDir()
	mustWrite(t, root, "index.html", "<p></p>")
	require.NoError(t, os.Chmod(filepath.Join(root, "index.html"), 0o000))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	_, err := catalog.New(log).Load(configFor(root))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSourceReadFailed.Error())
}
