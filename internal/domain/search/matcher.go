// Package search ranks shortcuts against a free-text query using
// approximate substring matching over the name and URL fields.
package search

import (
	"sort"
	"strings"

	"github.com/bnema/webdeck/internal/domain/entity"
)

// Field identifies which shortcut field produced the best match.
type Field string

const (
	FieldName Field = "name"
	FieldURL  Field = "url"
)

// Config tunes the matcher.
type Config struct {
	// Threshold is the maximum edit-distance divergence (distance / query
	// length) that still counts as a match.
	Threshold   float64
	NameWeight  float64
	URLWeight   float64
	PrefixBonus float64
	ExactBonus  float64
}

// DefaultConfig returns the launcher defaults.
func DefaultConfig() Config {
	return Config{
		Threshold:   0.3,
		NameWeight:  1.0,
		URLWeight:   0.9,
		PrefixBonus: 0.1,
		ExactBonus:  0.25,
	}
}

// Match is a ranked search hit.
type Match struct {
	Shortcut *entity.Shortcut
	Score    float64
	Field    Field
	Distance int
}

// Matcher performs fuzzy matching over shortcut collections.
// It holds no state between queries.
type Matcher struct {
	cfg Config
}

// NewMatcher creates a matcher. Zero weights fall back to the defaults.
func NewMatcher(cfg Config) *Matcher {
	def := DefaultConfig()
	if cfg.Threshold <= 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.NameWeight <= 0 {
		cfg.NameWeight = def.NameWeight
	}
	if cfg.URLWeight <= 0 {
		cfg.URLWeight = def.URLWeight
	}
	return &Matcher{cfg: cfg}
}

// Config returns the effective configuration.
func (m *Matcher) Config() Config {
	return m.cfg
}

// Rank returns the matching shortcuts ordered by descending score.
// Equal scores keep the collection order. An empty query returns every
// item in stored order with a zero score.
func (m *Matcher) Rank(items []*entity.Shortcut, query string) []Match {
	q := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(q) == 0 {
		out := make([]Match, 0, len(items))
		for _, s := range items {
			if s == nil {
				continue
			}
			out = append(out, Match{Shortcut: s})
		}
		return out
	}

	out := make([]Match, 0, len(items))
	for _, s := range items {
		if s == nil {
			continue
		}
		if match, ok := m.matchShortcut(q, s); ok {
			out = append(out, match)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Filter is Rank without the scores.
func (m *Matcher) Filter(items []*entity.Shortcut, query string) []*entity.Shortcut {
	matches := m.Rank(items, query)
	out := make([]*entity.Shortcut, len(matches))
	for i, match := range matches {
		out[i] = match.Shortcut
	}
	return out
}

func (m *Matcher) matchShortcut(query []rune, s *entity.Shortcut) (Match, bool) {
	best := Match{Shortcut: s}
	found := false

	fields := []struct {
		field  Field
		text   string
		weight float64
	}{
		{FieldName, s.Name, m.cfg.NameWeight},
		{FieldURL, s.URL, m.cfg.URLWeight},
	}

	for _, f := range fields {
		score, dist, ok := m.scoreField(query, strings.ToLower(f.text), f.weight)
		if !ok {
			continue
		}
		if !found || score > best.Score {
			best.Score = score
			best.Field = f.field
			best.Distance = dist
			found = true
		}
	}
	return best, found
}

func (m *Matcher) scoreField(query []rune, text string, weight float64) (float64, int, bool) {
	if text == "" {
		return 0, 0, false
	}
	dist := SubstringDistance(query, []rune(text))
	divergence := float64(dist) / float64(len(query))
	if divergence > m.cfg.Threshold {
		return 0, dist, false
	}

	score := (1 - divergence) * weight
	q := string(query)
	if strings.HasPrefix(text, q) {
		score += m.cfg.PrefixBonus
	}
	if text == q {
		score += m.cfg.ExactBonus
	}
	return score, dist, true
}
