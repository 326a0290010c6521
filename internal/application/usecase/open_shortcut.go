package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/domain/entity"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
	"github.com/bnema/webdeck/internal/logging"
)

// adHocLabelPrefix labels windows opened from a raw URL.
const adHocLabelPrefix = "app-"

// OpenShortcutUseCase opens shortcuts in their dedicated windows.
type OpenShortcutUseCase struct {
	shortcuts ShortcutReader
	windows   port.WindowManager
	width     int
	height    int
	now       func() time.Time
}

// NewOpenShortcutUseCase creates a new open use case. Zero geometry uses
// the port defaults.
func NewOpenShortcutUseCase(
	shortcuts ShortcutReader,
	windows port.WindowManager,
	width, height int,
) *OpenShortcutUseCase {
	return &OpenShortcutUseCase{
		shortcuts: shortcuts,
		windows:   windows,
		width:     width,
		height:    height,
		now:       time.Now,
	}
}

// Open focuses the window for id, creating it when none is live.
func (uc *OpenShortcutUseCase) Open(ctx context.Context, id entity.ShortcutID) (port.AppWindow, error) {
	log := logging.FromContext(ctx)

	s, err := uc.shortcuts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	spec := port.WindowSpec{
		Label:  s.WindowLabel(),
		URL:    s.URL,
		Title:  s.Name,
		Width:  uc.width,
		Height: uc.height,
	}.WithDefaults()

	win, err := uc.windows.Open(logging.WithWindowLabel(ctx, spec.Label), spec)
	if err != nil {
		log.Error().Err(err).Str("label", spec.Label).Msg("failed to open app window")
		return nil, fmt.Errorf("failed to open %s: %w", s.Name, err)
	}

	log.Info().Str("label", spec.Label).Str("url", spec.URL).Msg("app window opened")
	return win, nil
}

// OpenURLInput contains parameters for opening an ad-hoc app window.
type OpenURLInput struct {
	URL  string
	Name string
}

// OpenURL opens a window for a URL that is not in the collection.
// Every call gets a fresh label.
func (uc *OpenShortcutUseCase) OpenURL(ctx context.Context, input OpenURLInput) (port.AppWindow, error) {
	log := logging.FromContext(ctx)

	rawURL := strings.TrimSpace(input.URL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: url is required", entity.ErrInvalidInput)
	}
	normalized := domainurl.Normalize(rawURL)

	title := strings.TrimSpace(input.Name)
	if title == "" {
		title = domainurl.ExtractDomain(normalized)
	}

	spec := port.WindowSpec{
		Label:  adHocLabelPrefix + strconv.FormatInt(uc.now().UnixMilli(), 10),
		URL:    normalized,
		Title:  title,
		Width:  uc.width,
		Height: uc.height,
	}.WithDefaults()

	win, err := uc.windows.Open(logging.WithWindowLabel(ctx, spec.Label), spec)
	if err != nil {
		log.Error().Err(err).Str("url", normalized).Msg("failed to open ad-hoc window")
		return nil, fmt.Errorf("failed to open %s: %w", normalized, err)
	}
	return win, nil
}
