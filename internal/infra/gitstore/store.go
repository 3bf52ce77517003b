// Package gitstore provides a Git plumbing-based implementation of domain.TaskStore.
package gitstore

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/duke/internal/codec"
	"github.com/runoshun/duke/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// Store keeps the task document as a blob referenced outside the branch namespace,
// so it never shows up in the working tree or the commit history.
//
// Data structure:
//
//	refs/<namespace>/
//	  tasks → blob (codec text, one task per line)
type Store struct {
	repo      *git.Repository
	codec     *codec.Codec
	namespace string // e.g., "duke"
}

// New opens the repository containing path.
func New(path, namespace string, c *codec.Codec) (*Store, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace, c), nil
}

// NewWithRepo creates a Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string, c *codec.Codec) *Store {
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	return &Store{repo: repo, namespace: namespace, codec: c}
}

// tasksRef returns the ref name holding the task document.
func (s *Store) tasksRef() plumbing.ReferenceName {
	return plumbing.ReferenceName("refs/" + s.namespace + "/tasks")
}

// Load reads the task document. A missing ref yields an empty list.
func (s *Store) Load() ([]domain.Task, error) {
	ref, err := s.repo.Reference(s.tasksRef(), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return []domain.Task{}, nil
		}
		return nil, fmt.Errorf("get tasks ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	tasks, err := s.codec.DecodeAll(string(data))
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Save writes a new blob with tasks and points the ref at it.
func (s *Store) Save(tasks []domain.Task) error {
	hash, err := s.writeBlob([]byte(s.codec.EncodeAll(tasks)))
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.tasksRef(), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set tasks ref: %w", err)
	}
	return nil
}

// writeBlob stores data as a blob object and returns its hash.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}
	return hash, nil
}

// readBlob reads the full content of a blob object.
func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	return io.ReadAll(reader)
}
