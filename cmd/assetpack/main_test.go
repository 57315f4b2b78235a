package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/assetpack/internal/adapters/cas"
	"go.trai.ch/assetpack/internal/adapters/catalog"
	"go.trai.ch/assetpack/internal/adapters/fs"
	"go.trai.ch/assetpack/internal/adapters/minify"
	"go.trai.ch/assetpack/internal/app"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, cfg *domain.Config) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(loader, minify.NewRegistry(log), catalog.New(log), fs.NewHasher(), cas.NewStore(), fs.NewWriter(),
		mocks.NewMockWatcher(ctrl), log)
	return func(context.Context) (*app.Components, error) {
		return &app.Components{App: a, Logger: log}, nil
	}, log
}

func TestRun_Version(t *testing.T) {
	provider, _ := newProvider(t, domain.DefaultConfig())
	stdout := new(bytes.Buffer)

	code := run(t.Context(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "assetpack version")
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "web")
	assert.NoError(t, os.MkdirAll(src, domain.DirPerm))
	assert.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("<p>hi</p>"), domain.FilePerm))

	cfg := domain.DefaultConfig()
	cfg.Source = src
	cfg.Output = filepath.Join(dir, "gen", "web_content.h")
	provider, _ := newProvider(t, cfg)

	assert.Equal(t, exitOK, run(t.Context(), []string{}, new(bytes.Buffer), new(bytes.Buffer), provider))
	assert.FileExists(t, cfg.Output)
}

func TestRun_SourceRootMissing(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Source = filepath.Join(t.TempDir(), "missing")
	provider, log := newProvider(t, cfg)
	log.EXPECT().Error(gomock.Any())

	code := run(t.Context(), []string{"generate"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, exitSourceMissing, code)
}

func TestRun_BuildFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "web")
	assert.NoError(t, os.MkdirAll(src, domain.DirPerm))
	for _, name := range []string{"a-b.js", "a_b.js"} {
		assert.NoError(t, os.WriteFile(filepath.Join(src, name), []byte("x"), domain.FilePerm))
	}
	cfg := domain.DefaultConfig()
	cfg.Source = src
	cfg.Output = filepath.Join(dir, "web_content.h")
	cfg.Scripts = []string{"a-b.js", "a_b.js"}
	provider, log := newProvider(t, cfg)
	log.EXPECT().Error(gomock.Any())

	code := run(t.Context(), []string{"--no-cache"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, exitFailure, code)
}

func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("graph failed")
	}

	code := run(t.Context(), []string{"generate"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "Error: graph failed\n", stderr.String())
}
