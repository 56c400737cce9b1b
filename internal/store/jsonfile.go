package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"envelope/internal/ledger"
)

// JSONFile persists snapshots as an indented JSON document. Saves are
// atomic: the snapshot is written to a temporary file, synced, and renamed
// over the data file, so a crash mid-write never corrupts existing data.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load reads the snapshot from disk. A missing file yields an empty
// snapshot. An unreadable file is quarantined next to the data file and an
// empty snapshot is returned together with an error wrapping
// ledger.ErrCorruptState, so the caller can surface the recovery instead of
// silently losing data.
func (s *JSONFile) Load() (ledger.Snapshot, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.Snapshot{}, nil
	}
	if err != nil {
		return ledger.Snapshot{}, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var snap ledger.Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		f.Close()
		quarantine := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().Format("20060102150405"))
		if renameErr := os.Rename(s.path, quarantine); renameErr != nil {
			return ledger.Snapshot{}, fmt.Errorf("%w: %v (quarantine failed: %v)", ledger.ErrCorruptState, err, renameErr)
		}
		return ledger.Snapshot{}, fmt.Errorf("%w: %v (moved to %s)", ledger.ErrCorruptState, err, quarantine)
	}
	return snap, nil
}

// Save writes the snapshot atomically.
func (s *JSONFile) Save(snap ledger.Snapshot) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
