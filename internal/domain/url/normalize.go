// Package url provides the string rules for shortcut URLs and icons.
package url

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// faviconServiceTemplate is the third-party icon endpoint keyed by hostname.
	faviconServiceTemplate = "https://www.google.com/s2/favicons?domain=%s&sz=%d"
	// DefaultFaviconSize is the icon edge requested from the favicon service.
	DefaultFaviconSize = 128

	fallbackGlyph = "?"
)

// ErrInvalidURL is returned when a URL cannot be parsed or has no host.
var ErrInvalidURL = errors.New("invalid url")

// Normalize prepends https:// unless the input already starts with "http".
// The result is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	if strings.HasPrefix(input, "http") {
		return input
	}
	return "https://" + input
}

// Hostname returns the host part of rawURL without the port.
func Hostname(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	host := parsed.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: no host in %q", ErrInvalidURL, rawURL)
	}
	return host, nil
}

// FaviconServiceURL builds the favicon-service URL for a hostname.
func FaviconServiceURL(host string, size int) string {
	if size <= 0 {
		size = DefaultFaviconSize
	}
	return fmt.Sprintf(faviconServiceTemplate, url.QueryEscape(host), size)
}

// GlyphIcon returns the uppercased first character of name.
func GlyphIcon(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return fallbackGlyph
	}
	return string(unicode.ToUpper(r))
}

// ResolveIcon applies the icon derivation order: the explicit icon, then the
// favicon-service URL of the host, then the name glyph.
// The returned error is non-nil only when the glyph fallback was taken
// because the URL could not be parsed; callers log it and keep the icon.
func ResolveIcon(name, normalizedURL, rawIcon string) (string, error) {
	if icon := strings.TrimSpace(rawIcon); icon != "" {
		return icon, nil
	}
	host, err := Hostname(normalizedURL)
	if err != nil {
		return GlyphIcon(name), err
	}
	return FaviconServiceURL(host, DefaultFaviconSize), nil
}

// IsDerivedIcon reports whether icon is what ResolveIcon yields for name and
// normalizedURL without an explicit icon.
func IsDerivedIcon(name, normalizedURL, icon string) bool {
	derived, _ := ResolveIcon(name, normalizedURL, "")
	return icon == derived
}

// IsImageIcon reports whether icon is an image URL rather than a glyph.
func IsImageIcon(icon string) bool {
	return strings.HasPrefix(icon, "http")
}

// ExtractDomain extracts the host from a URL string, stripping "www." so
// youtube.com and www.youtube.com resolve to the same value.
func ExtractDomain(rawURL string) string {
	host, err := Hostname(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(host, "www.")
}

// SanitizeDomainForPNG converts a domain to a safe filename with .png extension.
func SanitizeDomainForPNG(domain string) string {
	return sanitizeDomain(domain) + ".png"
}

// sanitizeDomain replaces unsafe filesystem characters with underscores.
func sanitizeDomain(domain string) string {
	replacer := strings.NewReplacer(
		":", "_",
		"/", "_",
		"\\", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(domain)
}
