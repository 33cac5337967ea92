package interfaces

import domaintypes "weightlog/internal/domain/types"

// DatasetStore persists the tracked dataset.
type DatasetStore interface {
	SaveDataset(dataset domaintypes.Dataset) error
	LoadDataset() (domaintypes.Dataset, error)
}

// PrefsStore persists chart view preferences.
type PrefsStore interface {
	SavePrefs(prefs domaintypes.Prefs) error
	LoadPrefs() (domaintypes.Prefs, error)
}
