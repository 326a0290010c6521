// Package codec reads and writes shortcut collections in the export formats.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bnema/webdeck/internal/domain/entity"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatTOML, FormatYAML}
}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want json, toml or yaml)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format from %q", path)
	}
	return ParseFormat(ext)
}

// document is the top-level shape for TOML and YAML, which need a named
// table for the list.
type document struct {
	Shortcuts []*entity.Shortcut `toml:"shortcuts" yaml:"shortcuts"`
}

// Encode writes shortcuts to w. JSON is a bare array, matching apps.json.
func Encode(w io.Writer, format Format, shortcuts []*entity.Shortcut) error {
	if shortcuts == nil {
		shortcuts = []*entity.Shortcut{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(shortcuts)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(document{Shortcuts: shortcuts})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Shortcuts: shortcuts}); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

// Decode reads shortcuts from r. Nil entries are dropped.
func Decode(r io.Reader, format Format) ([]*entity.Shortcut, error) {
	var out []*entity.Shortcut

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&out); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	case FormatTOML:
		var doc document
		if err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
		out = doc.Shortcuts
	case FormatYAML:
		var doc document
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
		out = doc.Shortcuts
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return entity.CloneShortcuts(out), nil
}
