package entity

import (
	"errors"
	"strconv"
	"strings"

	domainurl "github.com/bnema/webdeck/internal/domain/url"
)

var (
	// ErrShortcutNotFound is returned when no shortcut has the requested ID.
	ErrShortcutNotFound = errors.New("shortcut not found")
	// ErrInvalidInput is returned when a required shortcut field is blank.
	ErrInvalidInput = errors.New("invalid shortcut input")
)

// windowLabelPrefix prefixes every app window label.
const windowLabelPrefix = "app-"

// ShortcutID uniquely identifies a shortcut within the collection.
type ShortcutID int64

// String returns the decimal form of the ID.
func (id ShortcutID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseShortcutID parses a decimal shortcut ID.
func ParseShortcutID(s string) (ShortcutID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return ShortcutID(n), nil
}

// Shortcut is a user-defined launcher entry pointing at a web app.
type Shortcut struct {
	ID   ShortcutID `json:"id" toml:"id" yaml:"id"`
	Name string     `json:"name" toml:"name" yaml:"name"`
	URL  string     `json:"url" toml:"url" yaml:"url"`
	Icon string     `json:"icon" toml:"icon" yaml:"icon"`
}

// WindowLabel returns the stable window label for this shortcut.
func (s *Shortcut) WindowLabel() string {
	return WindowLabelFor(s.ID)
}

// HasImageIcon returns true if the icon is an image URL rather than a glyph.
func (s *Shortcut) HasImageIcon() bool {
	return domainurl.IsImageIcon(s.Icon)
}

// Clone returns a copy safe to hand out of the store.
func (s *Shortcut) Clone() *Shortcut {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// WindowLabelFor returns the window label derived from a shortcut ID.
func WindowLabelFor(id ShortcutID) string {
	return windowLabelPrefix + id.String()
}

// CloneShortcuts deep-copies a slice of shortcuts.
func CloneShortcuts(in []*Shortcut) []*Shortcut {
	out := make([]*Shortcut, 0, len(in))
	for _, s := range in {
		if s == nil {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// SeedShortcuts returns the built-in collection used until storage has data.
func SeedShortcuts() []*Shortcut {
	return []*Shortcut{
		{
			ID:   1,
			Name: "Google",
			URL:  "https://google.com",
			Icon: "https://www.google.com/s2/favicons?domain=google.com&sz=128",
		},
		{
			ID:   2,
			Name: "YouTube",
			URL:  "https://youtube.com",
			Icon: "https://www.google.com/s2/favicons?domain=youtube.com&sz=128",
		},
		{
			ID:   3,
			Name: "ChatGPT",
			URL:  "https://chat.openai.com",
			Icon: "https://www.google.com/s2/favicons?domain=openai.com&sz=128",
		},
	}
}
