package domain

import (
	interfaces "weightlog/internal/domain/interfaces"
	types "weightlog/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Weight    = types.Weight
	Entry     = types.Entry
	Dataset   = types.Dataset
	Prefs     = types.Prefs
	DateRange = types.DateRange
	RangeKind = types.RangeKind
	Point     = types.Point
	Bounds    = types.Bounds
	Settings  = types.Settings
)

// Interface aliases expose the storage and service contracts.
type (
	DatasetStore   = interfaces.DatasetStore
	PrefsStore     = interfaces.PrefsStore
	PrefsService   = interfaces.PrefsService
	TrackerService = interfaces.TrackerService
)

// Quick range kinds.
const (
	RangeWeek  = types.RangeWeek
	RangeMonth = types.RangeMonth
	RangeYear  = types.RangeYear
)

// ErrCorrupt is returned when a stored file exists but does not decode.
var ErrCorrupt = types.ErrCorrupt

// NewWeight returns the Weight for a float value.
func NewWeight(v float64) Weight { return types.NewWeight(v) }

// EmptyDataset returns the dataset used before anything has been recorded.
func EmptyDataset() Dataset { return types.EmptyDataset() }

// DefaultPrefs returns the preferences used when none were saved.
func DefaultPrefs() Prefs { return types.DefaultPrefs() }
