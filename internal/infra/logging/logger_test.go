package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/duke/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("storage", "loaded 3 tasks")

	content, err := os.ReadFile(domain.GlobalLogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[storage]")
	assert.Contains(t, string(content), "loaded 3 tasks")
}

func TestLogger_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state", "logs")
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Error("session", "boom")

	_, err := os.Stat(domain.GlobalLogPath(dir))
	assert.NoError(t, err)
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("session", "debug message")
	logger.Info("session", "info message")
	logger.Warn("session", "warn message")
	logger.Error("session", "error message")

	content, err := os.ReadFile(domain.GlobalLogPath(dir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic
	logger.Info("session", "test message")
	logger.Error("session", "error message")
}

func TestLogger_Close_Reopens(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)

	logger.Info("session", "first")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	logger.Info("session", "second")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(domain.GlobalLogPath(dir))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "\n"))
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("session", "message")
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(domain.GlobalLogPath(dir))
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(content), "message"))
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC)
	got := formatLog(ts, slog.LevelWarn, "storage", "save failed")
	assert.Equal(t, "[2025-12-30 09:32:51] [WARN] [storage] save failed\n", got)
}
