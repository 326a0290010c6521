package usecase

import (
	"context"
	"strings"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/search"
	"github.com/bnema/webdeck/internal/logging"
)

// SearchShortcutsUseCase filters the live shortcut collection for the launcher.
type SearchShortcutsUseCase struct {
	shortcuts ShortcutReader
	matcher   *search.Matcher
}

// NewSearchShortcutsUseCase creates a new search use case.
func NewSearchShortcutsUseCase(shortcuts ShortcutReader, cfg search.Config) *SearchShortcutsUseCase {
	return &SearchShortcutsUseCase{
		shortcuts: shortcuts,
		matcher:   search.NewMatcher(cfg),
	}
}

// SearchShortcutsInput contains parameters for a search.
type SearchShortcutsInput struct {
	Query string
	Limit int // 0 means unlimited
}

// SearchShortcutsOutput contains ranked matches.
type SearchShortcutsOutput struct {
	Matches []search.Match
	Total   int // size of the searched collection
}

// Shortcuts returns the matched shortcuts in rank order.
func (o *SearchShortcutsOutput) Shortcuts() []*entity.Shortcut {
	out := make([]*entity.Shortcut, 0, len(o.Matches))
	for _, m := range o.Matches {
		out = append(out, m.Shortcut)
	}
	return out
}

// Search ranks the current collection against the query. The index is
// rebuilt from the store on every call so it always reflects the latest
// mutations. An empty query returns everything in stored order.
func (uc *SearchShortcutsUseCase) Search(ctx context.Context, input SearchShortcutsInput) *SearchShortcutsOutput {
	log := logging.FromContext(ctx)

	items := uc.shortcuts.List(ctx)
	matches := uc.matcher.Rank(items, strings.TrimSpace(input.Query))
	if input.Limit > 0 && len(matches) > input.Limit {
		matches = matches[:input.Limit]
	}

	log.Debug().
		Str("query", input.Query).
		Int("total", len(items)).
		Int("matches", len(matches)).
		Msg("shortcut search")

	return &SearchShortcutsOutput{Matches: matches, Total: len(items)}
}
