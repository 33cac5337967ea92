package prefs

import (
	"sync"

	"github.com/rs/zerolog"

	"weightlog/internal/domain"
)

// Service caches the current preferences and notifies subscribers on change.
type Service struct {
	store domain.PrefsStore
	log   zerolog.Logger

	mu   sync.RWMutex
	cur  domain.Prefs
	subs map[int]func(domain.Prefs)
	next int
}

// New loads the saved preferences from s. An unreadable file is logged and
// the defaults are used.
func New(s domain.PrefsStore, log zerolog.Logger) *Service {
	p, err := s.LoadPrefs()
	if err != nil {
		log.Warn().Err(err).Msg("prefs unreadable, using defaults")
	}
	return &Service{store: s, log: log, cur: p, subs: make(map[int]func(domain.Prefs))}
}

// Get returns the current preferences.
func (s *Service) Get() domain.Prefs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Set saves p and notifies subscribers.
func (s *Service) Set(p domain.Prefs) error {
	if err := s.store.SavePrefs(p); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = p
	fns := make([]func(domain.Prefs), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	s.log.Debug().Bool("guides", p.ShowGuides).Bool("trend", p.ShowTrend).Msg("prefs updated")
	// Called outside the lock so a subscriber may call Get.
	for _, fn := range fns {
		fn(p)
	}
	return nil
}

// Subscribe registers fn for preference changes. The returned func removes it.
func (s *Service) Subscribe(fn func(domain.Prefs)) (cancel func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Compile-time assertion that Service implements domain.PrefsService.
var _ domain.PrefsService = (*Service)(nil)
