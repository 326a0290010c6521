// Package config loads, validates and watches the webdeck configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// WEBDECK_STORAGE_BACKEND, WEBDECK_WINDOW_WIDTH, ...
	v.SetEnvPrefix("WEBDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging uses the shorter names shared with the logging package.
	if err := v.BindEnv("logging.level", "WEBDECK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBDECK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WEBDECK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBDECK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := finalizeConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// finalizeConfig normalizes, fills derived paths and validates.
func finalizeConfig(config *Config) error {
	normalizeConfig(config)
	if err := ensureStoragePath(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" {
		return nil
	}
	path, err := GetStorageFile(config.Storage.Backend)
	if err != nil {
		return fmt.Errorf("failed to get storage path: %w", err)
	}
	config.Storage.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	switch StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend)))) {
	case StorageJSON:
		config.Storage.Backend = StorageJSON
	case StorageBolt:
		config.Storage.Backend = StorageBolt
	default:
		config.Storage.Backend = StorageSQLite
	}
	config.Storage.Path = strings.TrimSpace(config.Storage.Path)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Appearance.Theme = string(entity.ParseThemeMode(config.Appearance.Theme))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return errors.New("config is nil")
	}

	toWrite := *cfg
	normalizeConfig(&toWrite)
	if err := validateConfig(&toWrite); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}

	if err := WriteConfigOrdered(&toWrite, configFile); err != nil {
		return err
	}

	if m.watching {
		// The watcher will see our own write; keep the in-memory copy.
		m.skipNextReload = true
		if err := ensureStoragePath(&toWrite); err != nil {
			return err
		}
		m.config = &toWrite
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	// The schema only feeds editor completion.
	_ = WriteSchemaFile(filepath.Join(filepath.Dir(configFile), schemaFileName))

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("appearance.theme", defaults.Appearance.Theme)

	m.viper.SetDefault("search.threshold", defaults.Search.Threshold)

	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.toolbar_height", defaults.Window.ToolbarHeight)

	m.viper.SetDefault("favicon.size", defaults.Favicon.Size)
	m.viper.SetDefault("favicon.prefetch", defaults.Favicon.Prefetch)
}

// Global configuration manager instance
var (
	globalManager     *Manager
	globalManagerOnce sync.Once
	globalInitErr     error
)

// Init initializes the global configuration manager. Later calls return
// the result of the first one.
func Init() error {
	globalManagerOnce.Do(func() {
		mgr, err := NewManager()
		if err == nil {
			err = mgr.Load()
		}
		if err != nil {
			globalInitErr = err
			return
		}
		globalManager = mgr
	})
	return globalInitErr
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
