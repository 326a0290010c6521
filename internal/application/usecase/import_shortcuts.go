package usecase

import (
	"context"
	"errors"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/logging"
)

// ImportShortcutsUseCase merges decoded records into the store.
type ImportShortcutsUseCase struct {
	store *ManageShortcutsUseCase
}

// NewImportShortcutsUseCase creates a new import use case.
func NewImportShortcutsUseCase(store *ManageShortcutsUseCase) *ImportShortcutsUseCase {
	return &ImportShortcutsUseCase{store: store}
}

// ImportShortcutsInput contains the records to import.
type ImportShortcutsInput struct {
	Records []*entity.Shortcut
	Replace bool // drop the current collection first
}

// ImportShortcutsOutput summarizes an import.
type ImportShortcutsOutput struct {
	Added   []*entity.Shortcut
	Skipped int
	Removed int
}

// Import sends every record through Add so imported data follows the same
// URL, icon and ID rules as interactive input. Records with a blank name or
// URL are skipped. Imported IDs are not kept.
func (uc *ImportShortcutsUseCase) Import(ctx context.Context, input ImportShortcutsInput) (*ImportShortcutsOutput, error) {
	log := logging.FromContext(ctx)
	out := &ImportShortcutsOutput{}

	if input.Replace {
		out.Removed = uc.store.Clear(ctx)
	}

	for _, r := range input.Records {
		if r == nil {
			out.Skipped++
			continue
		}
		added, err := uc.store.Add(ctx, AddShortcutInput{Name: r.Name, URL: r.URL, Icon: r.Icon})
		if errors.Is(err, entity.ErrInvalidInput) {
			log.Warn().Err(err).Str("name", r.Name).Msg("skipping invalid record")
			out.Skipped++
			continue
		}
		if err != nil {
			return out, err
		}
		out.Added = append(out.Added, added)
	}

	log.Info().
		Int("added", len(out.Added)).
		Int("skipped", out.Skipped).
		Int("removed", out.Removed).
		Msg("import finished")
	return out, nil
}
