package app

import (
	"io"
	"os"
	"path/filepath"
)

// Environment overrides read by ConfigFromEnv.
const (
	EnvHome     = "WEIGHTLOG_HOME"
	EnvLogLevel = "WEIGHTLOG_LOG_LEVEL"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string    // data directory, e.g. $HOME/.weightlog
	LogLevel  string    // debug, info, warn or error
	LogOutput io.Writer // optional; defaults to os.Stderr
}

// ConfigFromEnv returns a Config populated from the environment.
func ConfigFromEnv() Config {
	return Config{
		Home:     os.Getenv(EnvHome),
		LogLevel: os.Getenv(EnvLogLevel),
	}
}

// withDefaults fills unset fields.
func (c Config) withDefaults() (Config, error) {
	if c.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return c, err
		}
		c.Home = filepath.Join(dir, ".weightlog")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogOutput == nil {
		c.LogOutput = os.Stderr
	}
	return c, nil
}
