package config

// Default configuration constants
const (
	defaultStorageBackend = StorageSQLite

	// CLI output goes to stdout, so keep stderr quiet unless asked.
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"

	defaultTheme = "dark"

	defaultSearchThreshold = 0.3

	defaultWindowWidth   = 1200 // pixels
	defaultWindowHeight  = 800  // pixels
	defaultToolbarHeight = 50   // pixels

	defaultFaviconSize = 128 // pixels
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: defaultStorageBackend,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Appearance: AppearanceConfig{
			Theme: defaultTheme,
		},
		Search: SearchConfig{
			Threshold: defaultSearchThreshold,
		},
		Window: WindowConfig{
			Width:         defaultWindowWidth,
			Height:        defaultWindowHeight,
			ToolbarHeight: defaultToolbarHeight,
		},
		Favicon: FaviconConfig{
			Size:     defaultFaviconSize,
			Prefetch: true,
		},
	}
}
