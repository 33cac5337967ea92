package app

import (
	"github.com/rs/zerolog"

	"weightlog/internal/domain"
	"weightlog/internal/logging"
	chartsvc "weightlog/internal/services/charts"
	prefssvc "weightlog/internal/services/prefs"
	trackersvc "weightlog/internal/services/tracker"
	"weightlog/internal/store"
)

// Wire bundles all stores and services.
type Wire struct {
	Log      zerolog.Logger
	Datasets domain.DatasetStore
	Prefs    domain.PrefsService
	Tracker  domain.TrackerService
	Charts   *chartsvc.Service
}

// NewWire constructs the dependency graph from cfg. cfg must have its
// defaults applied.
func NewWire(cfg Config) *Wire {
	log := logging.New(cfg.LogLevel, cfg.LogOutput)

	// File-based stores
	datasetStore := store.NewDatasetFileStore(cfg.Home)
	prefsStore := store.NewPrefsFileStore(cfg.Home)

	// High-level services
	prefs := prefssvc.New(prefsStore, log.With().Str("svc", "prefs").Logger())
	tracker := trackersvc.New(datasetStore, prefs, log.With().Str("svc", "tracker").Logger())
	charts := chartsvc.New(tracker, prefs)

	return &Wire{
		Log:      log,
		Datasets: datasetStore,
		Prefs:    prefs,
		Tracker:  tracker,
		Charts:   charts,
	}
}
