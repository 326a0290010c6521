package desktop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a := New(filepath.Join(t.TempDir(), "applications"), "/usr/bin/webdeck")
	a.updateDesktopDB = ""
	return a
}

func TestAdapter_InstallShortcutEntry(t *testing.T) {
	ctx := testCtx()
	a := newTestAdapter(t)

	path, err := a.InstallShortcutEntry(ctx, port.DesktopEntry{
		ID:       "1700000000000",
		Name:     `My "Mail"`,
		URL:      "https://mail.example.com/?q=a%20b",
		IconPath: "/tmp/icons/mail.example.com.png",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(a.appsDir, "webdeck-app-1700000000000.desktop"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "[Desktop Entry]\n")
	assert.Contains(t, content, "Name=My Mail\n")
	assert.Contains(t, content,
		`Exec="/usr/bin/webdeck" app --url "https://mail.example.com/?q=a%%20b" --name "My Mail"`+"\n")
	assert.Contains(t, content, "Icon=/tmp/icons/mail.example.com.png\n")
}

func TestAdapter_InstallOverwritesAndDefaultsIcon(t *testing.T) {
	ctx := testCtx()
	a := newTestAdapter(t)

	entry := port.DesktopEntry{ID: "7", Name: "Old", URL: "https://old.example"}
	_, err := a.InstallShortcutEntry(ctx, entry)
	require.NoError(t, err)

	entry.Name = "New"
	path, err := a.InstallShortcutEntry(ctx, entry)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name=New\n")
	assert.NotContains(t, string(data), "Name=Old")
	assert.Contains(t, string(data), "Icon=applications-internet\n")
}

func TestAdapter_InstallRejectsPathLikeID(t *testing.T) {
	a := newTestAdapter(t)

	_, err := a.InstallShortcutEntry(testCtx(), port.DesktopEntry{ID: "../x", Name: "X", URL: "https://x"})
	assert.Error(t, err)

	_, err = a.InstallShortcutEntry(testCtx(), port.DesktopEntry{Name: "X", URL: "https://x"})
	assert.Error(t, err)
}

func TestAdapter_RemoveShortcutEntry(t *testing.T) {
	ctx := testCtx()
	a := newTestAdapter(t)

	path, err := a.InstallShortcutEntry(ctx, port.DesktopEntry{ID: "3", Name: "C", URL: "https://c.example"})
	require.NoError(t, err)

	require.NoError(t, a.RemoveShortcutEntry(ctx, "3"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Idempotent.
	assert.NoError(t, a.RemoveShortcutEntry(ctx, "3"))
}

func TestQuoteExecArg(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{"with space", `"with space"`},
		{`back\slash`, `"back\\slash"`},
		{"$HOME", `"\$HOME"`},
		{"`cmd`", "\"\\`cmd\\`\""},
		{"100%", `"100%%"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteExecArg(tt.in))
		})
	}
}
