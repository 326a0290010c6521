package config

// Config represents the complete configuration for webdeck.
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Search     SearchConfig     `mapstructure:"search" yaml:"search" toml:"search" json:"search"`
	Window     WindowConfig     `mapstructure:"window" yaml:"window" toml:"window" json:"window"`
	Favicon    FaviconConfig    `mapstructure:"favicon" yaml:"favicon" toml:"favicon" json:"favicon"`
}

// StorageBackend selects the durable store for shortcuts.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageJSON   StorageBackend = "json"
	StorageBolt   StorageBackend = "bolt"
)

// StorageBackends lists the supported backends.
func StorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageJSON, StorageBolt}
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	// Backend is one of sqlite, json or bolt.
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=json,enum=bolt"`
	// Path overrides the backend file location. Empty uses the data directory.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// AppearanceConfig holds launcher look settings.
type AppearanceConfig struct {
	// Theme is the initial launcher theme: light, dark or dim.
	Theme string `mapstructure:"theme" yaml:"theme" toml:"theme" json:"theme" jsonschema:"enum=light,enum=dark,enum=dim"`
}

// SearchConfig tunes the fuzzy matcher.
type SearchConfig struct {
	// Threshold is the maximum distance/query-length ratio that still matches.
	Threshold float64 `mapstructure:"threshold" yaml:"threshold" toml:"threshold" json:"threshold" jsonschema:"exclusiveMinimum=0,maximum=1"`
}

// WindowConfig holds app window geometry.
type WindowConfig struct {
	Width         int `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=200,maximum=10000"`
	Height        int `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=200,maximum=10000"`
	ToolbarHeight int `mapstructure:"toolbar_height" yaml:"toolbar_height" toml:"toolbar_height" json:"toolbar_height" jsonschema:"minimum=0,maximum=200"`
}

// FaviconConfig controls the local favicon cache.
type FaviconConfig struct {
	// Size is the icon edge requested from the favicon service.
	Size int `mapstructure:"size" yaml:"size" toml:"size" json:"size" jsonschema:"minimum=16,maximum=512"`
	// Prefetch downloads icons for every shortcut when the launcher starts.
	Prefetch bool `mapstructure:"prefetch" yaml:"prefetch" toml:"prefetch" json:"prefetch"`
}
