package tracker

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"weightlog/internal/analysis/daterange"
	"weightlog/internal/analysis/variance"
	"weightlog/internal/domain"
	"weightlog/internal/transfer"
)

// Editable entry fields.
const (
	FieldDate   = "date"
	FieldWeight = "weight"
	FieldNotes  = "notes"
)

var (
	// ErrEntryIndex is returned for an index outside the entry list.
	ErrEntryIndex = errors.New("no entry at that position")
	// ErrUnknownField is returned by UpdateEntry for anything but date, weight or notes.
	ErrUnknownField = errors.New("unknown entry field (want date, weight or notes)")
	// ErrInvalidDate is returned when a date value is not an ISO calendar date.
	ErrInvalidDate = errors.New("invalid date (want YYYY-MM-DD)")
)

// Service edits the dataset held by a domain.DatasetStore.
type Service struct {
	store domain.DatasetStore
	prefs domain.PrefsService
	log   zerolog.Logger
	now   func() time.Time

	mu sync.Mutex
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the clock used to pick the first entry's date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New returns a tracker backed by the given store and preferences service.
func New(ds domain.DatasetStore, ps domain.PrefsService, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{store: ds, prefs: ps, log: log, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Dataset returns the stored dataset.
func (s *Service) Dataset() (domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// AddDay appends an entry for the day after the last entry (or the start
// date, or today when there is neither) and returns it.
func (s *Service) AddDay(weight domain.Weight, notes string) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return domain.Entry{}, err
	}

	e := domain.Entry{Date: s.nextDate(d), Weight: weight, Notes: notes}
	d.Entries = append(d.Entries, e)
	if err := s.save(&d); err != nil {
		return domain.Entry{}, err
	}
	s.log.Debug().Str("date", e.Date).Str("weight", weight.String()).Msg("day added")
	return d.Entries[len(d.Entries)-1], nil
}

func (s *Service) nextDate(d domain.Dataset) string {
	today := daterange.FormatDate(s.now().UTC())
	if n := len(d.Entries); n > 0 {
		last := d.Entries[n-1].Date
		if next := daterange.DayAfter(last); next != "" {
			return next
		}
		s.log.Warn().Str("date", last).Msg("last entry date unreadable, adding today")
		return today
	}
	if start := daterange.NormalizeDate(d.StartDate); start != "" {
		return start
	}
	return today
}

// UpdateEntry sets one field of the entry at index (0-based) and returns the
// updated entry.
func (s *Service) UpdateEntry(index int, field, value string) (domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return domain.Entry{}, err
	}
	if index < 0 || index >= len(d.Entries) {
		return domain.Entry{}, fmt.Errorf("%w: %d", ErrEntryIndex, index+1)
	}

	e := &d.Entries[index]
	switch strings.ToLower(field) {
	case FieldDate:
		date := daterange.NormalizeDate(value)
		if date == "" {
			return domain.Entry{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
		}
		e.Date = date
	case FieldWeight:
		e.Weight = domain.Weight(strings.TrimSpace(value))
	case FieldNotes:
		e.Notes = value
	default:
		return domain.Entry{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if err := s.save(&d); err != nil {
		return domain.Entry{}, err
	}
	s.log.Debug().Int("index", index).Str("field", field).Msg("entry updated")
	return d.Entries[index], nil
}

// RemoveEntry deletes the entry at index (0-based).
func (s *Service) RemoveEntry(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(d.Entries) {
		return fmt.Errorf("%w: %d", ErrEntryIndex, index+1)
	}
	d.Entries = append(d.Entries[:index], d.Entries[index+1:]...)
	if err := s.save(&d); err != nil {
		return err
	}
	s.log.Debug().Int("index", index).Msg("entry removed")
	return nil
}

// UpdateSettings applies the non-nil fields of upd to the dataset header.
func (s *Service) UpdateSettings(upd domain.Settings) (domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return domain.Dataset{}, err
	}
	if upd.StartDate != nil {
		date := strings.TrimSpace(*upd.StartDate)
		if date != "" {
			if date = daterange.NormalizeDate(date); date == "" {
				return domain.Dataset{}, fmt.Errorf("%w: %q", ErrInvalidDate, *upd.StartDate)
			}
		}
		d.StartDate = date
	}
	if upd.StartWeight != nil {
		d.StartWeight = domain.Weight(strings.TrimSpace(*upd.StartWeight))
	}
	if upd.TargetWeight != nil {
		d.TargetWeight = domain.Weight(strings.TrimSpace(*upd.TargetWeight))
	}

	if err := s.save(&d); err != nil {
		return domain.Dataset{}, err
	}
	s.log.Debug().Str("start_date", d.StartDate).Msg("settings updated")
	return d, nil
}

// Import replaces the dataset with the content of an export file. Preferences
// in the file, if any, replace the current ones. Once the dataset is saved the
// import has succeeded: a failure to save the preferences is only logged.
func (s *Service) Import(raw []byte, passphrase string) (domain.Dataset, error) {
	p, err := transfer.Decode(raw, passphrase)
	if err != nil {
		return domain.Dataset{}, err
	}

	s.mu.Lock()
	err = s.save(&p.Data)
	s.mu.Unlock()
	if err != nil {
		return domain.Dataset{}, err
	}

	prefsApplied := false
	if p.Prefs != nil {
		if err := s.prefs.Set(*p.Prefs); err != nil {
			s.log.Warn().Err(err).Msg("imported prefs not saved, keeping current prefs")
		} else {
			prefsApplied = true
		}
	}
	s.log.Info().Int("entries", len(p.Data.Entries)).Bool("prefs", prefsApplied).Msg("dataset imported")
	return p.Data, nil
}

// Export serialises the dataset and current preferences. A non-empty
// passphrase seals the output.
func (s *Service) Export(passphrase string) ([]byte, error) {
	d, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	b, err := transfer.Encode(d, s.prefs.Get(), passphrase)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("entries", len(d.Entries)).Bool("sealed", passphrase != "").Msg("dataset exported")
	return b, nil
}

// load reads the dataset. A corrupt file has already been moved aside by the
// store, so it is logged and treated as empty. Any other failure is returned
// and the caller must not save.
func (s *Service) load() (domain.Dataset, error) {
	d, err := s.store.LoadDataset()
	if errors.Is(err, domain.ErrCorrupt) {
		s.log.Warn().Err(err).Msg("dataset unreadable, starting empty")
		return domain.EmptyDataset(), nil
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load dataset: %w", err)
	}
	return d, nil
}

// save re-derives variances into d and persists it.
func (s *Service) save(d *domain.Dataset) error {
	d.Entries = variance.Derive(d.Entries)
	if err := s.store.SaveDataset(*d); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}

// Compile-time assertion that Service implements domain.TrackerService.
var _ domain.TrackerService = (*Service)(nil)
