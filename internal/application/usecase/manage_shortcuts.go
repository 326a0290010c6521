package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/repository"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
	"github.com/bnema/webdeck/internal/logging"
)

// ShortcutReader is the read side of the shortcut store.
type ShortcutReader interface {
	List(ctx context.Context) []*entity.Shortcut
	Get(ctx context.Context, id entity.ShortcutID) (*entity.Shortcut, error)
}

// ManageShortcutsUseCase owns the in-memory shortcut collection.
// Mutations apply to memory first and then hand a full snapshot to the
// persister; the in-memory state stays authoritative when a write fails.
type ManageShortcutsUseCase struct {
	repo      repository.ShortcutRepository
	persister port.ShortcutPersister
	now       func() time.Time

	mu        sync.RWMutex
	shortcuts []*entity.Shortcut
	loaded    bool
}

var _ ShortcutReader = (*ManageShortcutsUseCase)(nil)

// NewManageShortcutsUseCase creates the store seeded with the built-in shortcuts.
// persister may be nil, in which case mutations stay in memory.
func NewManageShortcutsUseCase(
	repo repository.ShortcutRepository,
	persister port.ShortcutPersister,
) *ManageShortcutsUseCase {
	return &ManageShortcutsUseCase{
		repo:      repo,
		persister: persister,
		now:       time.Now,
		shortcuts: entity.SeedShortcuts(),
	}
}

// SetClock overrides the time source used for new IDs.
func (uc *ManageShortcutsUseCase) SetClock(now func() time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.now = now
}

// AddShortcutInput contains parameters for adding a shortcut.
type AddShortcutInput struct {
	Name string
	URL  string
	Icon string
}

// EditShortcutInput contains the replacement fields for a shortcut.
type EditShortcutInput struct {
	Name string
	URL  string
	Icon string
}

// Load replaces the seed collection with the stored one when storage has data.
// Failures keep the seed list and are logged, never returned.
// It reports whether stored data was used.
func (uc *ManageShortcutsUseCase) Load(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	if uc.repo == nil {
		log.Warn().Msg("no shortcut repository configured, keeping seed shortcuts")
		return false
	}

	stored, err := uc.repo.LoadAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load shortcuts, keeping seed shortcuts")
		return false
	}

	repaired := repairLoaded(ctx, stored)
	if len(repaired) == 0 {
		log.Debug().Msg("no stored shortcuts, keeping seed shortcuts")
		return false
	}

	uc.mu.Lock()
	uc.shortcuts = repaired
	uc.loaded = true
	uc.mu.Unlock()

	log.Debug().Int("count", len(repaired)).Msg("loaded shortcuts")
	return true
}

// repairLoaded drops nil or duplicate records and restores the URL and icon
// invariants on anything written by an older or foreign writer.
func repairLoaded(ctx context.Context, stored []*entity.Shortcut) []*entity.Shortcut {
	log := logging.FromContext(ctx)
	seen := make(map[entity.ShortcutID]struct{}, len(stored))
	out := make([]*entity.Shortcut, 0, len(stored))

	for _, s := range stored {
		if s == nil {
			continue
		}
		if _, dup := seen[s.ID]; dup {
			log.Warn().Int64("id", int64(s.ID)).Msg("dropping duplicate shortcut id")
			continue
		}
		seen[s.ID] = struct{}{}

		c := s.Clone()
		c.URL = domainurl.Normalize(strings.TrimSpace(c.URL))
		if strings.TrimSpace(c.Icon) == "" {
			c.Icon = resolveIcon(ctx, c.Name, c.URL, "")
		}
		out = append(out, c)
	}
	return out
}

// Loaded reports whether the collection came from storage.
func (uc *ManageShortcutsUseCase) Loaded() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loaded
}

// Add normalizes the input, appends a new shortcut and persists the collection.
func (uc *ManageShortcutsUseCase) Add(ctx context.Context, input AddShortcutInput) (*entity.Shortcut, error) {
	log := logging.FromContext(ctx)

	name, rawURL, err := validateShortcutInput(input.Name, input.URL)
	if err != nil {
		return nil, err
	}
	normalized := domainurl.Normalize(rawURL)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := &entity.Shortcut{
		ID:   uc.nextIDLocked(),
		Name: name,
		URL:  normalized,
		Icon: resolveIcon(ctx, name, normalized, input.Icon),
	}
	uc.shortcuts = append(uc.shortcuts, s)
	uc.persistLocked(ctx)

	log.Info().Int64("id", int64(s.ID)).Str("url", s.URL).Msg("shortcut added")
	return s.Clone(), nil
}

// Edit replaces the fields of an existing shortcut, keeping its ID and position.
func (uc *ManageShortcutsUseCase) Edit(
	ctx context.Context,
	id entity.ShortcutID,
	input EditShortcutInput,
) (*entity.Shortcut, error) {
	log := logging.FromContext(ctx)

	name, rawURL, err := validateShortcutInput(input.Name, input.URL)
	if err != nil {
		return nil, err
	}
	normalized := domainurl.Normalize(rawURL)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexLocked(id)
	if idx < 0 {
		log.Debug().Int64("id", int64(id)).Msg("edit of unknown shortcut ignored")
		return nil, fmt.Errorf("%w: %d", entity.ErrShortcutNotFound, id)
	}

	s := uc.shortcuts[idx]
	s.Name = name
	s.URL = normalized
	s.Icon = resolveIcon(ctx, name, normalized, input.Icon)
	uc.persistLocked(ctx)

	log.Info().Int64("id", int64(id)).Msg("shortcut updated")
	return s.Clone(), nil
}

// Remove deletes the shortcut with id. A missing id is a no-op and does not
// persist. It reports whether a shortcut was removed.
func (uc *ManageShortcutsUseCase) Remove(ctx context.Context, id entity.ShortcutID) bool {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexLocked(id)
	if idx < 0 {
		log.Debug().Int64("id", int64(id)).Msg("remove of unknown shortcut ignored")
		return false
	}

	uc.shortcuts = append(uc.shortcuts[:idx:idx], uc.shortcuts[idx+1:]...)
	uc.persistLocked(ctx)

	log.Info().Int64("id", int64(id)).Msg("shortcut removed")
	return true
}

// Move places the shortcut with id at index to, clamped to the collection bounds.
func (uc *ManageShortcutsUseCase) Move(ctx context.Context, id entity.ShortcutID, to int) error {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	from := uc.indexLocked(id)
	if from < 0 {
		return fmt.Errorf("%w: %d", entity.ErrShortcutNotFound, id)
	}
	to = max(0, min(to, len(uc.shortcuts)-1))
	if from == to {
		return nil
	}

	s := uc.shortcuts[from]
	rest := append(uc.shortcuts[:from:from], uc.shortcuts[from+1:]...)
	reordered := make([]*entity.Shortcut, 0, len(uc.shortcuts))
	reordered = append(reordered, rest[:to]...)
	reordered = append(reordered, s)
	reordered = append(reordered, rest[to:]...)
	uc.shortcuts = reordered
	uc.persistLocked(ctx)

	log.Info().Int64("id", int64(id)).Int("from", from).Int("to", to).Msg("shortcut moved")
	return nil
}

// Clear removes every shortcut and persists the empty collection.
func (uc *ManageShortcutsUseCase) Clear(ctx context.Context) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n := len(uc.shortcuts)
	uc.shortcuts = nil
	uc.persistLocked(ctx)

	logging.FromContext(ctx).Info().Int("removed", n).Msg("shortcuts cleared")
	return n
}

// List returns a read-only snapshot of the collection in display order.
func (uc *ManageShortcutsUseCase) List(_ context.Context) []*entity.Shortcut {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return entity.CloneShortcuts(uc.shortcuts)
}

// Get returns a copy of the shortcut with id.
func (uc *ManageShortcutsUseCase) Get(_ context.Context, id entity.ShortcutID) (*entity.Shortcut, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	idx := uc.indexLocked(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", entity.ErrShortcutNotFound, id)
	}
	return uc.shortcuts[idx].Clone(), nil
}

// PendingWrites reports whether the latest change has not reached storage yet.
func (uc *ManageShortcutsUseCase) PendingWrites() bool {
	if uc.persister == nil {
		return false
	}
	return uc.persister.Pending()
}

// LastPersistError returns the most recent save failure, if any.
func (uc *ManageShortcutsUseCase) LastPersistError() error {
	if uc.persister == nil {
		return nil
	}
	return uc.persister.LastError()
}

// Flush waits for outstanding writes.
func (uc *ManageShortcutsUseCase) Flush(ctx context.Context) error {
	if uc.persister == nil {
		return nil
	}
	return uc.persister.Flush(ctx)
}

func (uc *ManageShortcutsUseCase) persistLocked(ctx context.Context) {
	if uc.persister == nil {
		return
	}
	uc.persister.Persist(ctx, entity.CloneShortcuts(uc.shortcuts))
}

func (uc *ManageShortcutsUseCase) indexLocked(id entity.ShortcutID) int {
	for i, s := range uc.shortcuts {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// nextIDLocked derives an ID from the wall clock in milliseconds and bumps it
// past the current maximum so IDs stay unique when the clock stalls or rewinds.
func (uc *ManageShortcutsUseCase) nextIDLocked() entity.ShortcutID {
	id := entity.ShortcutID(uc.now().UnixMilli())
	for _, s := range uc.shortcuts {
		if s.ID >= id {
			id = s.ID + 1
		}
	}
	return id
}

func validateShortcutInput(name, rawURL string) (string, string, error) {
	name = strings.TrimSpace(name)
	rawURL = strings.TrimSpace(rawURL)
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", entity.ErrInvalidInput)
	}
	if rawURL == "" {
		return "", "", fmt.Errorf("%w: url is required", entity.ErrInvalidInput)
	}
	return name, rawURL, nil
}

func resolveIcon(ctx context.Context, name, normalizedURL, rawIcon string) string {
	icon, err := domainurl.ResolveIcon(name, normalizedURL, rawIcon)
	if err != nil {
		logging.FromContext(ctx).Debug().
			Err(err).
			Str("url", normalizedURL).
			Msg("could not derive favicon, using glyph")
	}
	return icon
}
