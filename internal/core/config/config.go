// Package config provides workflow configuration management for shipit.
//
// The configuration is a flat KEY=value file at $HOME/.shipit.conf holding
// the five workflow toggles. It is resolved once at startup into an
// immutable Workflow value that is passed to the orchestrator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aki/shipit/internal/core/logger"
)

// ConfigFile is the filename for the shipit configuration, relative to $HOME.
const ConfigFile = ".shipit.conf"

// Recognized keys in the persisted store.
const (
	KeyCreatePR      = "CREATE_PR"
	KeyFunnyCommit   = "FUNNY_COMMIT"
	KeyAutoMerge     = "AUTO_MERGE"
	KeyBackToDefault = "BACK_TO_DEFAULT"
	KeyDeleteBranch  = "DELETE_BRANCH"
)

// Keys lists the recognized configuration keys in their persisted order.
var Keys = []string{KeyCreatePR, KeyFunnyCommit, KeyAutoMerge, KeyBackToDefault, KeyDeleteBranch}

// ErrNotFound indicates that no configuration store exists yet.
var ErrNotFound = errors.New("configuration not found")

// Workflow holds the five workflow toggles. Constructed once per run and
// treated as immutable thereafter.
type Workflow struct {
	CreatePR      bool `yaml:"createPR"`
	FunnyCommit   bool `yaml:"funnyCommit"`
	AutoMerge     bool `yaml:"autoMerge"`
	BackToDefault bool `yaml:"backToDefault"`
	DeleteBranch  bool `yaml:"deleteBranch"`
}

// Default returns the hard-coded defaults: every toggle enabled.
func Default() Workflow {
	return Workflow{
		CreatePR:      true,
		FunnyCommit:   true,
		AutoMerge:     true,
		BackToDefault: true,
		DeleteBranch:  true,
	}
}

// Get returns the value of a recognized key.
func (w Workflow) Get(key string) (bool, error) {
	switch key {
	case KeyCreatePR:
		return w.CreatePR, nil
	case KeyFunnyCommit:
		return w.FunnyCommit, nil
	case KeyAutoMerge:
		return w.AutoMerge, nil
	case KeyBackToDefault:
		return w.BackToDefault, nil
	case KeyDeleteBranch:
		return w.DeleteBranch, nil
	default:
		return false, fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set assigns the value of a recognized key.
func (w *Workflow) Set(key string, value bool) error {
	switch key {
	case KeyCreatePR:
		w.CreatePR = value
	case KeyFunnyCommit:
		w.FunnyCommit = value
	case KeyAutoMerge:
		w.AutoMerge = value
	case KeyBackToDefault:
		w.BackToDefault = value
	case KeyDeleteBranch:
		w.DeleteBranch = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// Manager handles loading and persisting the shipit configuration.
type Manager struct {
	path string
	log  logger.Logger
}

// NewManager creates a configuration manager for the store at path.
func NewManager(path string, log logger.Logger) *Manager {
	return &Manager{path: path, log: log}
}

// DefaultPath returns the standard location of the configuration store.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ConfigFile), nil
}

// Path returns the location of the configuration store.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the configuration from disk. Unknown keys and unparseable
// values are warned about and skipped; lines without '=' are ignored.
// A missing or unreadable store yields ErrNotFound so the caller can run
// first-time setup.
func (m *Manager) Load() (Workflow, error) {
	cfg := Default()

	data, err := os.ReadFile(m.path)
	if err != nil {
		return cfg, ErrNotFound
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if _, err := cfg.Get(key); err != nil {
			m.log.Warn("ignoring unknown configuration key", "key", key)
			continue
		}

		switch value {
		case "true":
			_ = cfg.Set(key, true)
		case "false":
			_ = cfg.Set(key, false)
		default:
			m.log.Warn("ignoring invalid configuration value", "key", key, "value", value)
		}
	}

	return cfg, nil
}

// Save writes the configuration to disk as one KEY=value line per toggle.
func (m *Manager) Save(cfg Workflow) error {
	var b strings.Builder
	for _, key := range Keys {
		value, _ := cfg.Get(key)
		fmt.Fprintf(&b, "%s=%t\n", key, value)
	}

	if err := os.WriteFile(m.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// IsInitialized checks whether a configuration store exists.
func (m *Manager) IsInitialized() bool {
	_, err := os.Stat(m.path)
	return err == nil
}
