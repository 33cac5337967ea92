package interfaces

import domaintypes "weightlog/internal/domain/types"

// PrefsService reads and updates preferences and notifies subscribers.
type PrefsService interface {
	Get() domaintypes.Prefs
	Set(prefs domaintypes.Prefs) error
	Subscribe(fn func(domaintypes.Prefs)) (cancel func())
}

// TrackerService maintains the dataset: settings, entries and import/export.
type TrackerService interface {
	Dataset() (domaintypes.Dataset, error)
	AddDay(weight domaintypes.Weight, notes string) (domaintypes.Entry, error)
	UpdateEntry(index int, field, value string) (domaintypes.Entry, error)
	RemoveEntry(index int) error
	UpdateSettings(s domaintypes.Settings) (domaintypes.Dataset, error)
	Import(raw []byte, passphrase string) (domaintypes.Dataset, error)
	Export(passphrase string) ([]byte, error)
}
