package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/cli/model"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/infrastructure/config"
	"github.com/bnema/webdeck/internal/logging"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Interactive launcher with fuzzy search",
	Long: `Open the interactive launcher. Type to filter, enter opens the
highlighted app.

Keys:
  up/down, C-p/C-n   move
  enter              open
  C-d                delete
  C-t                cycle theme (light, dark, dim)
  C-g                help
  esc                quit

Theme changes made in the config file apply while the launcher runs.`,
	Args: cobra.NoArgs,
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	go app.PrefetchIcons(ctx)

	var saveTheme model.ThemeSaver
	if app.Manager != nil {
		saveTheme = app.SaveTheme
	}

	m := model.NewLauncherModel(ctx, app.Theme.Mode, model.LauncherDeps{
		Store:     app.Shortcuts,
		Search:    app.SearchUC,
		Open:      app.OpenUC,
		SaveTheme: saveTheme,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigChangedMsg{Theme: entity.ParseThemeMode(cfg.Appearance.Theme)})
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("launcher failed: %w", err)
	}
	return nil
}
