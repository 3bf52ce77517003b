package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/duke/internal/domain"
)

func TestManager_GetLocalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		localDir := t.TempDir()
		content := "[log]\nlevel = \"debug\""
		writeFile(t, domain.LocalConfigPath(localDir), content)

		info := NewManagerWithGlobalDir(localDir, "").GetLocalConfigInfo()

		assert.Equal(t, domain.LocalConfigPath(localDir), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		localDir := t.TempDir()

		info := NewManagerWithGlobalDir(localDir, "").GetLocalConfigInfo()

		assert.Equal(t, domain.LocalConfigPath(localDir), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		content := "[ui]\nplain = true"
		writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), content)

		info := NewManagerWithGlobalDir("", globalDir).GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info when global dir is empty", func(t *testing.T) {
		info := NewManagerWithGlobalDir("", "").GetGlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitLocalConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		localDir := t.TempDir()
		manager := NewManagerWithGlobalDir(localDir, "")

		require.NoError(t, manager.InitLocalConfig(domain.NewDefaultConfig()))

		content, err := os.ReadFile(domain.LocalConfigPath(localDir))
		require.NoError(t, err)
		assert.Contains(t, string(content), "[storage]")
		assert.Contains(t, string(content), `backend = "file"`)
	})

	t.Run("returns error when file exists", func(t *testing.T) {
		localDir := t.TempDir()
		writeFile(t, domain.LocalConfigPath(localDir), "existing")

		err := NewManagerWithGlobalDir(localDir, "").InitLocalConfig(domain.NewDefaultConfig())

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates directory and file", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "nested", "duke")
		manager := NewManagerWithGlobalDir("", globalDir)

		require.NoError(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))

		info := manager.GetGlobalConfigInfo()
		assert.True(t, info.Exists)
		assert.Contains(t, info.Content, "[parser]")
	})

	t.Run("returns error without global dir", func(t *testing.T) {
		err := NewManagerWithGlobalDir("", "").InitGlobalConfig(domain.NewDefaultConfig())
		assert.Error(t, err)
	})
}
