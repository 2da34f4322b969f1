// Package storage persists the ledger document. The canonical form is a
// single JSON file; an in-memory store backs tests and ephemeral runs.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"financio/internal/core"
)

// FileStore reads and writes the ledger document at a fixed path.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document location.
func (f *FileStore) Path() string { return f.path }

// Load deserializes the persisted ledger. A missing or unparsable file is
// not an error: the ledger starts empty and the condition is logged.
func (f *FileStore) Load(ctx context.Context) (*core.State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.InfoContext(ctx, "Ledger file not found, starting with empty data",
				"path", f.path)
			return core.NewState(), nil
		}
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	var state core.State
	if err := json.Unmarshal(data, &state); err != nil {
		slog.WarnContext(ctx, "Ledger file is invalid, starting with empty data",
			"path", f.path,
			"error", err)
		return core.NewState(), nil
	}

	state.Normalize()
	return &state, nil
}

// Save serializes the ledger atomically: the document is written to a
// temporary file in the same directory and renamed over the previous
// version, so a failed save leaves the old document intact.
func (f *FileStore) Save(ctx context.Context, state *core.State) error {
	data, err := json.MarshalIndent(state, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp ledger file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}
