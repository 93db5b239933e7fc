// Package config handles the XDG configuration directory and the
// environment-driven backend endpoints.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

const (
	// AppName is the application directory name.
	AppName = "ttrack"

	// SessionFile is the persisted session filename.
	SessionFile = "session.json"
)

// Env holds the environment-configurable settings. Values come from the
// process environment (optionally seeded from a .env file by main).
type Env struct {
	// APIBaseURL is the tracker backend root, e.g. http://host:8080/api.
	// The /tasks, /auth and /ai endpoints all hang off it.
	APIBaseURL string `env:"TTRACK_API_URL" env-default:"http://localhost:8080/api"`

	// RequestTimeout bounds every individual backend call.
	RequestTimeout time.Duration `env:"TTRACK_TIMEOUT" env-default:"10s"`
}

// Config holds configuration paths and per-invocation settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Env is the environment-derived configuration.
	Env Env

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Log is the process logger, constructed by the dispatcher.
	Log zerolog.Logger
}

// New creates a Config with the default or specified config directory and
// reads the environment settings.
// If configDir is empty, uses XDG_CONFIG_HOME/ttrack or $HOME/.config/ttrack.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir, Log: zerolog.Nop()}
	if err := cleanenv.ReadEnv(&cfg.Env); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path to the persisted session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
