package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/webdeck/internal/domain/entity"
)

const (
	minWindowSize    = 200
	maxWindowSize    = 10000
	maxToolbarHeight = 200
	minFaviconSize   = 16
	maxFaviconSize   = 512
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled", "off"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateFavicon(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateStorage(config *Config) []string {
	if !slices.Contains(StorageBackends(), config.Storage.Backend) {
		return []string{fmt.Sprintf("storage.backend must be one of sqlite, json, bolt (got %q)", config.Storage.Backend)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, fatal, disabled (got %q)", config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	if !entity.ThemeMode(config.Appearance.Theme).Valid() {
		return []string{fmt.Sprintf("appearance.theme must be light, dark or dim (got %q)", config.Appearance.Theme)}
	}
	return nil
}

func validateSearch(config *Config) []string {
	if config.Search.Threshold <= 0 || config.Search.Threshold > 1 {
		return []string{"search.threshold must be greater than 0 and at most 1"}
	}
	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < minWindowSize || config.Window.Width > maxWindowSize {
		validationErrors = append(validationErrors,
			fmt.Sprintf("window.width must be between %d and %d", minWindowSize, maxWindowSize))
	}
	if config.Window.Height < minWindowSize || config.Window.Height > maxWindowSize {
		validationErrors = append(validationErrors,
			fmt.Sprintf("window.height must be between %d and %d", minWindowSize, maxWindowSize))
	}
	if config.Window.ToolbarHeight < 0 || config.Window.ToolbarHeight > maxToolbarHeight {
		validationErrors = append(validationErrors,
			fmt.Sprintf("window.toolbar_height must be between 0 and %d", maxToolbarHeight))
	}
	return validationErrors
}

func validateFavicon(config *Config) []string {
	if config.Favicon.Size < minFaviconSize || config.Favicon.Size > maxFaviconSize {
		return []string{fmt.Sprintf("favicon.size must be between %d and %d", minFaviconSize, maxFaviconSize)}
	}
	return nil
}
