package sqlitestore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/duke/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "duke.db"), domain.DefaultDateFormats())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Load_Empty(t *testing.T) {
	tasks, err := newTestStore(t).Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_SaveAndLoad_PreservesOrder(t *testing.T) {
	store := newTestStore(t)
	at := time.Date(2019, time.December, 2, 18, 0, 0, 0, time.Local)

	event := domain.NewEvent("project meeting", at)
	event.MarkDone()
	tasks := []domain.Task{
		domain.NewTodo("zeta"),
		domain.NewDeadline("alpha", at),
		event,
	}
	require.NoError(t, store.Save(tasks))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "zeta", got[0].Description)
	assert.Equal(t, "alpha", got[1].Description)
	assert.True(t, at.Equal(got[1].At))
	assert.True(t, got[2].Done)
	assert.Equal(t, domain.KindEvent, got[2].Kind)
}

func TestStore_Save_ReplacesRows(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save([]domain.Task{domain.NewTodo("a"), domain.NewTodo("b")}))
	require.NoError(t, store.Save([]domain.Task{domain.NewTodo("c")}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Description)
}

func TestStore_Load_InvalidKind(t *testing.T) {
	store := newTestStore(t)
	_, err := store.db.Exec(`INSERT INTO tasks (position, kind, done, description) VALUES (0, 'X', 0, 'bad')`)
	require.NoError(t, err)

	_, err = store.Load()
	assert.True(t, errors.Is(err, domain.ErrInvalidTaskType))
}
