package types

// Prefs are the chart view preferences that travel with exports.
type Prefs struct {
	ShowGuides bool `json:"showGuides"`
	ShowTrend  bool `json:"showTrend"`
}

// DefaultPrefs returns the preferences used when none were saved.
func DefaultPrefs() Prefs {
	return Prefs{ShowGuides: true, ShowTrend: true}
}
