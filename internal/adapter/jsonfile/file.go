// Package jsonfile stores collections as whole JSON documents on local disk.
// Every read loads the full document and every write replaces it.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// document is a JSON array persisted at path. The mutex serialises single
// load or store calls on one document; it does not span a caller's
// read-modify-write cycle.
type document[T any] struct {
	path string
	mu   sync.Mutex
}

func newDocument[T any](path string) *document[T] {
	return &document[T]{path: path}
}

// load returns the decoded array. A missing or empty file is an empty
// collection.
func (d *document[T]) load() ([]T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loadLocked()
}

func (d *document[T]) loadLocked() ([]T, error) {
	items := []T{}
	raw, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return items, nil
	}
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.path, err)
	}
	return items, nil
}

func (d *document[T]) store(items []T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.storeLocked(items)
}

// storeLocked writes to a temp file next to the document and renames it
// over the original so a crash never leaves a truncated document.
func (d *document[T]) storeLocked(items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return err
	}
	tmp := d.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(items); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, d.path)
}

// update loads, mutates and stores the document under one lock.
func (d *document[T]) update(fn func([]T) []T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	items, err := d.loadLocked()
	if err != nil {
		return err
	}
	return d.storeLocked(fn(items))
}
