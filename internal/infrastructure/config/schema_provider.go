package config

import (
	"fmt"
	"strconv"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionStorage    = "Storage"
	SectionLogging    = "Logging"
	SectionAppearance = "Appearance"
	SectionSearch     = "Search"
	SectionWindow     = "Window"
	SectionFavicon    = "Favicon"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (*SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	d := DefaultConfig()

	backends := make([]string, 0, len(StorageBackends()))
	for _, b := range StorageBackends() {
		backends = append(backends, string(b))
	}
	themes := make([]string, 0, len(entity.ThemeModes()))
	for _, m := range entity.ThemeModes() {
		themes = append(themes, string(m))
	}

	return []entity.ConfigKeyInfo{
		{
			Key:         "storage.backend",
			Type:        "string",
			Default:     string(d.Storage.Backend),
			Description: "Where shortcuts are stored",
			Values:      backends,
			Section:     SectionStorage,
		},
		{
			Key:         "storage.path",
			Type:        "string",
			Default:     "(data dir)",
			Description: "Storage file; empty uses the backend's default file in the data directory",
			Section:     SectionStorage,
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     d.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     d.Logging.Format,
			Description: "Log output format",
			Values:      validLogFormats,
			Section:     SectionLogging,
		},
		{
			Key:         "appearance.theme",
			Type:        "string",
			Default:     d.Appearance.Theme,
			Description: "Initial launcher theme",
			Values:      themes,
			Section:     SectionAppearance,
		},
		{
			Key:         "search.threshold",
			Type:        "float64",
			Default:     strconv.FormatFloat(d.Search.Threshold, 'f', -1, 64),
			Description: "Maximum edit distance per query character for a fuzzy match",
			Range:       "0-1",
			Section:     SectionSearch,
		},
		{
			Key:         "window.width",
			Type:        "int",
			Default:     strconv.Itoa(d.Window.Width),
			Description: "Initial app window width in pixels",
			Range:       fmt.Sprintf("%d-%d", minWindowSize, maxWindowSize),
			Section:     SectionWindow,
		},
		{
			Key:         "window.height",
			Type:        "int",
			Default:     strconv.Itoa(d.Window.Height),
			Description: "Initial app window height in pixels",
			Range:       fmt.Sprintf("%d-%d", minWindowSize, maxWindowSize),
			Section:     SectionWindow,
		},
		{
			Key:         "window.toolbar_height",
			Type:        "int",
			Default:     strconv.Itoa(d.Window.ToolbarHeight),
			Description: "Navigation toolbar height in pixels",
			Range:       fmt.Sprintf("0-%d", maxToolbarHeight),
			Section:     SectionWindow,
		},
		{
			Key:         "favicon.size",
			Type:        "int",
			Default:     strconv.Itoa(d.Favicon.Size),
			Description: "Icon size requested from the favicon service",
			Range:       fmt.Sprintf("%d-%d", minFaviconSize, maxFaviconSize),
			Section:     SectionFavicon,
		},
		{
			Key:         "favicon.prefetch",
			Type:        "bool",
			Default:     strconv.FormatBool(d.Favicon.Prefetch),
			Description: "Download favicons for all shortcuts when the launcher starts",
			Section:     SectionFavicon,
		},
	}
}
