// Package sqlitestore provides a SQLite-backed implementation of domain.TaskStore.
package sqlitestore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go SQLite driver, no CGO required

	"github.com/runoshun/duke/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	position    INTEGER PRIMARY KEY,
	kind        TEXT    NOT NULL,
	done        INTEGER NOT NULL DEFAULT 0,
	description TEXT    NOT NULL,
	at          TEXT    NOT NULL DEFAULT ''
);`

// Store implements domain.TaskStore using one row per task.
// The position column preserves list order.
type Store struct {
	db      *sql.DB
	formats domain.DateFormats
}

// New opens (or creates) a SQLite database at the given path.
func New(path string, formats domain.DateFormats) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, formats: formats}, nil
}

// Load returns all tasks ordered by position.
func (s *Store) Load() ([]domain.Task, error) {
	rows, err := s.db.Query(`SELECT kind, done, description, at FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []domain.Task{}
	for rows.Next() {
		var tag, description, at string
		var done int
		if err := rows.Scan(&tag, &done, &description, &at); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		task, err := s.toTask(tag, description, at)
		if err != nil {
			return nil, err
		}
		if done != 0 {
			task.MarkDone()
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// Save replaces every row in one transaction.
func (s *Store) Save(tasks []domain.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	for i, t := range tasks {
		at := ""
		if t.Kind.IsTimed() {
			at = s.formats.Store(t.At)
		}
		if _, err := tx.Exec(
			`INSERT INTO tasks (position, kind, done, description, at) VALUES (?, ?, ?, ?, ?)`,
			i, string(t.Kind), boolToInt(t.Done), t.Description, at,
		); err != nil {
			return fmt.Errorf("insert task %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) toTask(tag, description, at string) (domain.Task, error) {
	kind, ok := domain.ParseKind(tag)
	if !ok {
		return domain.Task{}, domain.NewUserError(domain.ErrInvalidTaskType,
			fmt.Sprintf("Erroneous task type %q in database. Please check your file again!", tag))
	}
	switch kind {
	case domain.KindDeadline, domain.KindEvent:
		parsed, err := s.formats.Parse(at)
		if err != nil {
			return domain.Task{}, err
		}
		if kind == domain.KindDeadline {
			return domain.NewDeadline(description, parsed), nil
		}
		return domain.NewEvent(description, parsed), nil
	case domain.KindTodo:
	}
	return domain.NewTodo(description), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
