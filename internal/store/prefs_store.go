package store

import (
	"path/filepath"
	"sync"

	"weightlog/internal/domain"
)

const prefsFile = "prefs.json"

// PrefsFileStore persists chart preferences to disk.
type PrefsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPrefsFileStore returns a PrefsFileStore rooted at dir.
func NewPrefsFileStore(dir string) *PrefsFileStore {
	return &PrefsFileStore{dir: dir}
}

// SavePrefs writes prefs to disk.
func (s *PrefsFileStore) SavePrefs(p domain.Prefs) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, prefsFile), p, 0o600)
}

// LoadPrefs returns the saved prefs, or the defaults when none were saved or
// the file does not decode (the error is still returned in that case).
func (s *PrefsFileStore) LoadPrefs() (domain.Prefs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.DefaultPrefs()
	if _, err := readJSON(filepath.Join(s.dir, prefsFile), &p); err != nil {
		return domain.DefaultPrefs(), err
	}
	return p, nil
}

// Compile-time assertion that PrefsFileStore implements domain.PrefsStore.
var _ domain.PrefsStore = (*PrefsFileStore)(nil)
