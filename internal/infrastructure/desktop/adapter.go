// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/logging"
)

const (
	appName       = "webdeck"
	entryPrefix   = "webdeck-app-"
	fallbackIcon  = "applications-internet"
	filePerm      = 0644
	dirPerm       = 0755
	desktopSuffix = ".desktop"
)

// entryTemplate is the freedesktop.org desktop entry for one shortcut.
// Placeholders: name, url (for the comment), exec line, icon.
const entryTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=%s
Comment=Web app for %s
Exec=%s
Icon=%s
Terminal=false
Categories=Network;WebBrowser;
StartupNotify=true
`

// Adapter implements port.DesktopIntegration by writing one desktop file
// per shortcut into the XDG applications directory.
type Adapter struct {
	appsDir         string
	execPath        string
	updateDesktopDB string
}

// New creates a desktop integration adapter writing into appsDir.
// An empty execPath resolves the running executable.
func New(appsDir, execPath string) *Adapter {
	a := &Adapter{appsDir: appsDir, execPath: execPath}

	// Detect update-desktop-database (optional)
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		a.updateDesktopDB = path
	}

	return a
}

var _ port.DesktopIntegration = (*Adapter)(nil)

// EntryPath returns the desktop file path for a shortcut id.
func (a *Adapter) EntryPath(id string) string {
	return filepath.Join(a.appsDir, entryPrefix+id+desktopSuffix)
}

// InstallShortcutEntry writes the desktop entry for one shortcut.
func (a *Adapter) InstallShortcutEntry(ctx context.Context, entry port.DesktopEntry) (string, error) {
	log := logging.FromContext(ctx)

	if entry.ID == "" || strings.ContainsAny(entry.ID, `/\`) {
		return "", fmt.Errorf("invalid desktop entry id %q", entry.ID)
	}

	execPath, err := a.executable()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(a.appsDir, dirPerm); err != nil {
		return "", fmt.Errorf("create applications dir: %w", err)
	}

	path := a.EntryPath(entry.ID)
	if err := os.WriteFile(path, []byte(renderEntry(execPath, entry)), filePerm); err != nil {
		return "", fmt.Errorf("write desktop file: %w", err)
	}

	log.Info().Str("path", path).Str("name", entry.Name).Msg("desktop entry installed")
	a.refreshDatabase(ctx)

	return path, nil
}

// RemoveShortcutEntry deletes the desktop entry for id.
func (a *Adapter) RemoveShortcutEntry(ctx context.Context, id string) error {
	log := logging.FromContext(ctx)

	path := a.EntryPath(id)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", path).Msg("desktop entry not found (already removed)")
			return nil
		}
		return fmt.Errorf("remove desktop file: %w", err)
	}

	log.Info().Str("path", path).Msg("desktop entry removed")
	a.refreshDatabase(ctx)
	return nil
}

func (a *Adapter) refreshDatabase(ctx context.Context) {
	if a.updateDesktopDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, a.updateDesktopDB, a.appsDir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}

func (a *Adapter) executable() (string, error) {
	if a.execPath != "" {
		return a.execPath, nil
	}

	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	// Fallback to PATH lookup
	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

func renderEntry(execPath string, entry port.DesktopEntry) string {
	name := singleLine(stripQuotes(entry.Name))
	url := singleLine(stripQuotes(entry.URL))

	execLine := fmt.Sprintf("%s app --url %s --name %s",
		quoteExecArg(execPath), quoteExecArg(url), quoteExecArg(name))

	icon := entry.IconPath
	if icon == "" {
		icon = fallbackIcon
	}

	return fmt.Sprintf(entryTemplate, name, url, execLine, singleLine(icon))
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

func singleLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
}

// quoteExecArg quotes one Exec argument. Inside double quotes the
// characters ` $ \ must be escaped, and % is doubled because Exec treats
// it as a field code.
func quoteExecArg(s string) string {
	escaped := strings.NewReplacer(
		`\`, `\\`,
		"`", "\\`",
		`$`, `\$`,
		`"`, `\"`,
		`%`, `%%`,
	).Replace(s)
	return `"` + escaped + `"`
}
