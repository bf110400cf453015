// Package storage persists the whole store tree as a single JSON blob under
// a fixed key, mirroring the browser-local-storage layout the app started
// with. Backends: a plain file, or a one-row key/value table in SQLite,
// MySQL, or Postgres.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StateKey is the fixed key the snapshot lives under. Kept from the web
// client so an exported blob stays recognizable.
const StateKey = "shoppingghar-storage"

// Repository loads and saves the serialized store snapshot.
type Repository interface {
	// Load returns the stored blob. found is false when no snapshot exists.
	Load(ctx context.Context) (blob []byte, found bool, err error)
	// Save overwrites the stored blob. Last write wins, whole-snapshot only.
	Save(ctx context.Context, blob []byte) error
	Close() error
}

// FileRepository keeps the snapshot in a single JSON file.
type FileRepository struct {
	path string
}

// NewFileRepository prepares a file-backed repository at path, creating the
// parent directory if needed.
func NewFileRepository(path string) (*FileRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) Load(_ context.Context) ([]byte, bool, error) {
	blob, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}
	return blob, true, nil
}

// Save writes to a temp file and renames it over the target, so a crash
// mid-write never leaves a torn snapshot behind.
func (r *FileRepository) Save(_ context.Context, blob []byte) error {
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (r *FileRepository) Close() error { return nil }
