package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/search"
)

func collection() []*entity.Shortcut {
	return []*entity.Shortcut{
		{ID: 1, Name: "Google", URL: "https://google.com"},
		{ID: 2, Name: "YouTube", URL: "https://youtube.com"},
		{ID: 3, Name: "ChatGPT", URL: "https://chat.openai.com"},
		{ID: 4, Name: "Notion", URL: "https://notion.so"},
	}
}

func ids(items []*entity.Shortcut) []entity.ShortcutID {
	out := make([]entity.ShortcutID, len(items))
	for i, s := range items {
		out[i] = s.ID
	}
	return out
}

func TestMatcher_EmptyQueryReturnsStoredOrder(t *testing.T) {
	m := search.NewMatcher(search.DefaultConfig())

	for _, q := range []string{"", "   "} {
		got := m.Filter(collection(), q)
		assert.Equal(t, []entity.ShortcutID{1, 2, 3, 4}, ids(got))
	}
}

func TestMatcher_Filter(t *testing.T) {
	m := search.NewMatcher(search.DefaultConfig())

	tests := []struct {
		name    string
		query   string
		wantTop entity.ShortcutID
		wantLen int
	}{
		{name: "exact name", query: "youtube", wantTop: 2, wantLen: 1},
		{name: "case insensitive", query: "YouTube", wantTop: 2, wantLen: 1},
		{name: "one typo", query: "gogle", wantTop: 1, wantLen: 1},
		{name: "url only", query: "openai", wantTop: 3, wantLen: 1},
		{name: "name prefix", query: "noti", wantTop: 4, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Filter(collection(), tt.query)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantTop, got[0].ID)
		})
	}
}

func TestMatcher_NoMatch(t *testing.T) {
	m := search.NewMatcher(search.DefaultConfig())
	assert.Empty(t, m.Filter(collection(), "xyzxyzq"))
}

func TestMatcher_RankReportsField(t *testing.T) {
	m := search.NewMatcher(search.DefaultConfig())

	got := m.Rank(collection(), "openai")
	require.Len(t, got, 1)
	assert.Equal(t, search.FieldURL, got[0].Field)
	assert.InDelta(t, 0.9, got[0].Score, 1e-9)

	got = m.Rank(collection(), "notion")
	require.NotEmpty(t, got)
	assert.Equal(t, search.FieldName, got[0].Field)
	assert.InDelta(t, 1.35, got[0].Score, 1e-9)
}

func TestMatcher_ExactNameIsTopResult(t *testing.T) {
	m := search.NewMatcher(search.DefaultConfig())
	items := append(collection(), &entity.Shortcut{ID: 5, Name: "Google Docs", URL: "https://docs.google.com"})

	got := m.Filter(items, "Google")
	require.Len(t, got, 2)
	assert.Equal(t, entity.ShortcutID(1), got[0].ID)
	assert.Equal(t, entity.ShortcutID(5), got[1].ID)
}

func TestMatcher_TiesKeepCollectionOrder(t *testing.T) {
	m := search.NewMatcher(search.DefaultConfig())
	items := []*entity.Shortcut{
		{ID: 10, Name: "Mail", URL: "https://a.example"},
		{ID: 11, Name: "Mail", URL: "https://b.example"},
		{ID: 12, Name: "Mail", URL: "https://c.example"},
	}

	assert.Equal(t, []entity.ShortcutID{10, 11, 12}, ids(m.Filter(items, "mail")))

	reversed := []*entity.Shortcut{items[2], items[1], items[0]}
	assert.Equal(t, []entity.ShortcutID{12, 11, 10}, ids(m.Filter(reversed, "mail")))

	// every URL matches "https" equally well
	assert.Equal(t, []entity.ShortcutID{1, 2, 3, 4}, ids(m.Filter(collection(), "https")))
}

func TestMatcher_ThresholdIsConfigurable(t *testing.T) {
	strict := search.NewMatcher(search.Config{Threshold: 0.01})
	assert.Empty(t, strict.Filter(collection(), "gogle"))

	loose := search.NewMatcher(search.Config{})
	assert.Equal(t, 0.3, loose.Config().Threshold)
}

func TestMatcher_SkipsNilEntries(t *testing.T) {
	m := search.NewMatcher(search.DefaultConfig())
	items := []*entity.Shortcut{nil, {ID: 1, Name: "Google", URL: "https://google.com"}}

	assert.Len(t, m.Filter(items, ""), 1)
	assert.Len(t, m.Filter(items, "google"), 1)
}
