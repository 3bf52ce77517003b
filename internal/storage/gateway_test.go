package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/duke/internal/codec"
	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/infra/filestore"
	"github.com/runoshun/duke/internal/testutil"
)

func TestGateway_Open_Empty(t *testing.T) {
	display := &testutil.MockDisplay{}
	gw := NewGateway(testutil.NewMockTaskStore(), display, nil)

	list := gw.Open()

	assert.True(t, list.IsEmpty())
	assert.Equal(t, []string{NoTasksMessage}, display.Messages)
	assert.Empty(t, display.Errors)
}

func TestGateway_Open_ExistingTasks(t *testing.T) {
	display := &testutil.MockDisplay{}
	logger := &testutil.MockLogger{}
	gw := NewGateway(testutil.NewMockTaskStore(domain.NewTodo("a"), domain.NewTodo("b")), display, logger)

	list := gw.Open()

	assert.Equal(t, 2, list.Len())
	require.Len(t, display.Messages, 1)
	assert.Equal(t, ExistingTasksMessage+"\n1. [T][ ] a\n2. [T][ ] b", display.Messages[0])
	require.NotEmpty(t, logger.Entries)
	assert.Equal(t, "loaded 2 tasks", logger.Entries[0].Msg)
}

func TestGateway_Open_CorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duke.txt")
	require.NoError(t, os.WriteFile(path, []byte("X | 0 | bad\n"), 0o600))

	display := &testutil.MockDisplay{}
	logger := &testutil.MockLogger{}
	store := filestore.New(path, codec.New(domain.DefaultDateFormats()))
	gw := NewGateway(store, display, logger)

	list := gw.Open()

	assert.True(t, list.IsEmpty())
	require.Len(t, display.Errors, 1)
	assert.Contains(t, display.Errors[0], "Erroneous task type in file")
	assert.Empty(t, display.Messages)
	assert.Equal(t, "ERROR", logger.Entries[0].Level)
}

func TestGateway_Open_ReadError(t *testing.T) {
	display := &testutil.MockDisplay{}
	store := testutil.NewMockTaskStore()
	store.LoadErr = assert.AnError

	list := NewGateway(store, display, nil).Open()

	assert.True(t, list.IsEmpty())
	require.Len(t, display.Errors, 1)
	assert.Contains(t, display.Errors[0], "Cannot access file")
}

func TestGateway_LoadAndSave(t *testing.T) {
	store := testutil.NewMockTaskStore()
	gw := NewGateway(store, &testutil.MockDisplay{}, nil)

	require.NoError(t, gw.Save([]domain.Task{domain.NewTodo("a")}))
	tasks, err := gw.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{domain.NewTodo("a")}, tasks)

	store.LoadErr = assert.AnError
	tasks, err = gw.Load()
	assert.Error(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}
