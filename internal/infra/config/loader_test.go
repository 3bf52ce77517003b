package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/duke/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_NoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(localDir), `
[storage]
backend = "sqlite"
path = "tasks.db"
autosave = true

[parser]
legacy_index = true

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "tasks.db", cfg.Storage.Path)
	assert.Equal(t, domain.DefaultNamespace, cfg.Storage.Namespace)
	assert.True(t, cfg.Storage.Autosave)
	assert.True(t, cfg.Parser.LegacyIndex)
	assert.False(t, cfg.Parser.Lenient)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	localDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[storage]
backend = "git"
namespace = "mine"
autosave = true

[ui]
plain = true
`)
	writeFile(t, domain.LocalConfigPath(localDir), `
[storage]
backend = "file"
autosave = false
`)

	cfg, err := NewLoaderWithGlobalDir(localDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "mine", cfg.Storage.Namespace, "unset local key keeps the global value")
	assert.False(t, cfg.Storage.Autosave, "explicit false overrides global true")
	assert.True(t, cfg.UI.Plain)
}

func TestLoader_Load_Warnings(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(localDir), `
colour = "red"

[storage]
backend = "file"
encrypt = true

[parser]
lenient = "yes"

[agents]
name = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(localDir, "").Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid value for [parser].lenient: expected boolean",
		"unknown key in [storage]: encrypt",
		"unknown section: agents",
		"unknown section: colour",
	}, cfg.Warnings)
	assert.False(t, cfg.Parser.Lenient)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(localDir), "[storage\nbackend = ")

	_, err := NewLoaderWithGlobalDir(localDir, "").Load()

	assert.Error(t, err)
}

func TestLoader_LoadGlobalAndLocal(t *testing.T) {
	localDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[log]\nlevel = \"warn\"\n")
	loader := NewLoaderWithGlobalDir(localDir, globalDir)

	global, err := loader.LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "warn", global.Log.Level)

	_, err = loader.LoadLocal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_RenderedTemplateRoundTrips(t *testing.T) {
	localDir := t.TempDir()
	want := domain.NewDefaultConfig()
	want.Storage.Backend = domain.BackendGit
	want.Storage.Autosave = true
	want.Parser.Lenient = true
	want.Log.Dir = "/tmp/duke-logs"
	writeFile(t, domain.LocalConfigPath(localDir), domain.RenderConfigTemplate(want))

	got, err := NewLoaderWithGlobalDir(localDir, "").Load()
	require.NoError(t, err)

	assert.Empty(t, got.Warnings)
	assert.Equal(t, want, got)
}
