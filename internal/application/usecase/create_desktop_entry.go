package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/domain/entity"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
	"github.com/bnema/webdeck/internal/logging"
)

// CreateDesktopEntryUseCase installs desktop launchers for shortcuts.
type CreateDesktopEntryUseCase struct {
	shortcuts ShortcutReader
	desktop   port.DesktopIntegration
	icons     port.IconStore
}

// NewCreateDesktopEntryUseCase creates a new desktop entry use case.
// icons may be nil, in which case entries use the generic icon.
func NewCreateDesktopEntryUseCase(
	shortcuts ShortcutReader,
	desktop port.DesktopIntegration,
	icons port.IconStore,
) *CreateDesktopEntryUseCase {
	return &CreateDesktopEntryUseCase{
		shortcuts: shortcuts,
		desktop:   desktop,
		icons:     icons,
	}
}

// Create installs the desktop entry for id and returns its path.
// A missing favicon is not an error.
func (uc *CreateDesktopEntryUseCase) Create(ctx context.Context, id entity.ShortcutID) (string, error) {
	log := logging.FromContext(ctx)

	s, err := uc.shortcuts.Get(ctx, id)
	if err != nil {
		return "", err
	}

	entry := port.DesktopEntry{
		ID:       s.ID.String(),
		Name:     s.Name,
		URL:      s.URL,
		IconPath: uc.iconPath(ctx, s),
	}

	path, err := uc.desktop.InstallShortcutEntry(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("failed to install desktop entry for %s: %w", s.Name, err)
	}

	log.Info().Str("path", path).Int64("id", int64(s.ID)).Msg("desktop entry installed")
	return path, nil
}

// Remove deletes the desktop entry for id. The shortcut itself may already
// be gone from the collection.
func (uc *CreateDesktopEntryUseCase) Remove(ctx context.Context, id entity.ShortcutID) error {
	if err := uc.desktop.RemoveShortcutEntry(ctx, id.String()); err != nil {
		return fmt.Errorf("failed to remove desktop entry %d: %w", id, err)
	}
	logging.FromContext(ctx).Info().Int64("id", int64(id)).Msg("desktop entry removed")
	return nil
}

func (uc *CreateDesktopEntryUseCase) iconPath(ctx context.Context, s *entity.Shortcut) string {
	if uc.icons == nil || !s.HasImageIcon() {
		return ""
	}
	log := logging.FromContext(ctx)

	host, err := domainurl.Hostname(s.URL)
	if err != nil {
		log.Debug().Err(err).Str("url", s.URL).Msg("no host for favicon")
		return ""
	}

	path, err := uc.icons.IconPath(ctx, host)
	if err != nil {
		log.Warn().Err(err).Str("host", host).Msg("favicon unavailable, using generic icon")
		return ""
	}
	return path
}
