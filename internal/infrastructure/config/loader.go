package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// DefaultConfigDir is where the appliance keeps its API config file.
const DefaultConfigDir = "/etc/sinkhole"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager. configDir overrides the
// default config directory when non-empty (used by the --config flag and by
// tests).
func NewManager(configDir string) *Manager {
	v := viper.New()

	v.SetConfigName("sinkhole") // Name without extension
	v.SetConfigType("toml")

	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(DefaultConfigDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// Environment variable support, e.g. SINKHOLE_SERVER_PORT,
	// SINKHOLE_DATABASE_PATH.
	v.SetEnvPrefix("SINKHOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{viper: v}
}

// Load reads the config file, applies defaults, validates the result, and
// installs it. A missing config file falls back to the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked()
}

func (m *Manager) loadLocked() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// No file: run on defaults, environment overrides still apply.
	}

	cfg := Defaults()
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.config = cfg
	return nil
}

// Get returns the current configuration. Load must have succeeded first.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback invoked with the new config after every
// successful reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}
