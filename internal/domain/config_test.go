package domain

import (
	"errors"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, DefaultStoragePath, cfg.Storage.Path)
	assert.Equal(t, DefaultNamespace, cfg.Storage.Namespace)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Storage.Autosave)
	assert.False(t, cfg.UI.Plain)
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Storage.Autosave = true
	cfg.Log.Dir = "/tmp/duke-logs"

	content := RenderConfigTemplate(cfg)

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, cfg.Storage, parsed.Storage)
	assert.Equal(t, cfg.Log, parsed.Log)
	assert.Equal(t, cfg.Parser, parsed.Parser)
	assert.Equal(t, cfg.UI, parsed.UI)
}

func TestUserError_UnwrapsToKind(t *testing.T) {
	err := NewUserError(ErrEmptyList, "nothing here")

	assert.EqualError(t, err, "nothing here")
	assert.True(t, errors.Is(err, ErrEmptyList))
	assert.False(t, errors.Is(err, ErrEmptyArgument))
}

func TestUsage_ListsEveryCommand(t *testing.T) {
	usage := Usage()
	for _, word := range []string{"todo", "deadline", "event", "list", "done", "delete", "find", "help", "bye"} {
		assert.Contains(t, usage, word)
	}
}
