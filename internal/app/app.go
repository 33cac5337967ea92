package app

import (
	"os"

	"weightlog/internal/api"
)

// App is the shared context handed to CLI commands.
type App struct {
	*Wire
	Config Config
}

// New applies defaults to cfg, creates the data directory and wires the
// services.
func New(cfg Config) (*App, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	return &App{Wire: NewWire(cfg), Config: cfg}, nil
}

// API returns an HTTP server over the app's services.
func (a *App) API() *api.Server {
	return api.New(a.Tracker, a.Prefs, a.Charts, a.Log.With().Str("svc", "api").Logger())
}
