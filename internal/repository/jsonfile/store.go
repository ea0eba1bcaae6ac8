// internal/repository/jsonfile/store.go

// Package jsonfile persists one record collection per file, as a single JSON
// array rewritten wholesale on every mutation.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"moneta/internal/domain"
	"moneta/internal/repository"
	"moneta/internal/util"
)

// Store is the file-backed implementation of repository.Collection. The mutex
// serializes every operation, and Update holds it across the full
// read-modify-write window, so in-process callers cannot lose updates to each
// other. Writers in other processes are not coordinated with.
type Store[T any] struct {
	mu   sync.Mutex
	path string
}

var _ repository.Collection[struct{}] = (*Store[struct{}])(nil)

// NewStore creates a store for the named collection under dir. The backing
// file is <dir>/<name>.json; it is created lazily on first use.
func NewStore[T any](dir, name string) *Store[T] {
	return &Store[T]{path: filepath.Join(dir, name+".json")}
}

// NewAccountStore opens the accounts collection under dir.
func NewAccountStore(dir string) repository.AccountRepository {
	return NewStore[domain.Account](dir, repository.AccountsCollection)
}

// NewCategoryStore opens the categories collection under dir.
func NewCategoryStore(dir string) repository.CategoryRepository {
	return NewStore[domain.Category](dir, repository.CategoriesCollection)
}

// NewTransactionStore opens the transactions collection under dir.
func NewTransactionStore(dir string) repository.TransactionRepository {
	return NewStore[domain.Transaction](dir, repository.TransactionsCollection)
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// EnsureReady creates the data directory and initializes the backing file with
// an empty collection when it does not exist yet. Idempotent.
func (s *Store[T]) EnsureReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureReadyLocked()
}

func (s *Store[T]) ensureReadyLocked() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &util.StorageError{Op: "write", Path: dir, Err: fmt.Errorf("creating directory: %w", err)}
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &util.StorageError{Op: "read", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, []byte("[]"), 0o644); err != nil {
		return &util.StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// ReadAll returns every persisted record in storage order. A collection that
// was never written reads as empty, not as an error.
func (s *Store[T]) ReadAll() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAllLocked()
}

func (s *Store[T]) readAllLocked() ([]T, error) {
	if err := s.ensureReadyLocked(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &util.StorageError{Op: "read", Path: s.path, Err: err}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &util.StorageError{Op: "read", Path: s.path, Err: fmt.Errorf("corrupt collection: %w", err)}
	}
	return records, nil
}

// WriteAll replaces the persisted collection with exactly the given records.
// The new content is written to a temporary file and renamed over the old one,
// so a failed write leaves the previous state intact.
func (s *Store[T]) WriteAll(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAllLocked(records)
}

func (s *Store[T]) writeAllLocked(records []T) error {
	if err := s.ensureReadyLocked(); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &util.StorageError{Op: "write", Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &util.StorageError{Op: "write", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &util.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &util.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &util.StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// Append adds one record at the end of the collection.
func (s *Store[T]) Append(record T) error {
	return s.Update(func(records []T) ([]T, error) {
		return append(records, record), nil
	})
}

// Update runs fn over the current records and persists its result, holding the
// store lock across the whole read-compute-write sequence.
func (s *Store[T]) Update(fn func(records []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.readAllLocked()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return s.writeAllLocked(updated)
}
