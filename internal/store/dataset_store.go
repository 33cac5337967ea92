package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weightlog/internal/analysis/variance"
	"weightlog/internal/domain"
)

const datasetFile = "dataset.json"

// DatasetFileStore persists the tracked dataset to disk.
type DatasetFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewDatasetFileStore returns a DatasetFileStore rooted at dir.
func NewDatasetFileStore(dir string) *DatasetFileStore {
	return &DatasetFileStore{dir: dir}
}

// SaveDataset writes the dataset to disk.
func (s *DatasetFileStore) SaveDataset(d domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Entries == nil {
		d.Entries = []domain.Entry{}
	}
	return writeJSON(filepath.Join(s.dir, datasetFile), d, 0o600)
}

// LoadDataset returns the stored dataset with variances re-derived, or an
// empty dataset when nothing was saved yet.
//
// A file that does not decode is renamed to dataset.json.bad-<time> and
// LoadDataset returns an empty dataset with an error wrapping ErrCorrupt, so
// callers can warn and carry on without a later save destroying the original.
// If the file cannot be moved aside the error does not wrap ErrCorrupt.
func (s *DatasetFileStore) LoadDataset() (domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, datasetFile)
	d := domain.EmptyDataset()
	found, err := readJSON(path, &d)
	if errors.Is(err, ErrCorrupt) {
		bad, mvErr := quarantine(path)
		if mvErr != nil {
			return domain.EmptyDataset(), fmt.Errorf("dataset unreadable (%v) and not moved aside: %w", err, mvErr)
		}
		return domain.EmptyDataset(), fmt.Errorf("%w (kept as %s)", err, bad)
	}
	if err != nil {
		return domain.EmptyDataset(), err
	}
	if !found {
		return d, nil
	}
	d.Entries = variance.Derive(d.Entries)
	return d, nil
}

// quarantine renames path to a timestamped .bad- sibling and returns the new
// name.
func quarantine(path string) (string, error) {
	bad := path + ".bad-" + time.Now().UTC().Format("20060102T150405.000000000Z")
	if err := os.Rename(path, bad); err != nil {
		return "", err
	}
	return bad, nil
}

// Compile-time assertion that DatasetFileStore implements domain.DatasetStore.
var _ domain.DatasetStore = (*DatasetFileStore)(nil)
