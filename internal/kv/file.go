package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// File stores one file per key under a root directory.
type File struct {
	dir string
	mu  sync.Mutex
}

// NewFile returns a File rooted at dir.
func NewFile(dir string) *File { return &File{dir: dir} }

// Get reads the blob stored for key; a missing file means an absent key.
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Set writes the blob via a temp file, then atomically replaces the target.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(key)
	tmp, err := os.CreateTemp(f.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(name) }()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(name, path)
}

// Remove deletes the key's file; removing an absent key is not an error.
func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".blob")
}

// Compile-time assertion that File implements Store.
var _ Store = (*File)(nil)
