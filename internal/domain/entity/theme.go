package entity

import "strings"

// ThemeMode is the launcher color scheme.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
	ThemeDim   ThemeMode = "dim"
)

// ThemeModes lists the recognized modes in toggle order.
func ThemeModes() []ThemeMode {
	return []ThemeMode{ThemeLight, ThemeDark, ThemeDim}
}

// ParseThemeMode maps a config value to a ThemeMode, defaulting to dark.
func ParseThemeMode(s string) ThemeMode {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight
	case ThemeDim:
		return ThemeDim
	default:
		return ThemeDark
	}
}

// Valid reports whether m is one of the recognized modes.
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeDim:
		return true
	}
	return false
}

// Next cycles light -> dark -> dim -> light.
func (m ThemeMode) Next() ThemeMode {
	switch m {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeDim
	default:
		return ThemeLight
	}
}
