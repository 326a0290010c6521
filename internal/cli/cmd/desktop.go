package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/cli/styles"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Manage application menu entries for shortcuts",
	Long: `Install a .desktop file so a shortcut shows up in your application menu
and opens with 'webdeck open <id>'.`,
}

var desktopInstallCmd = &cobra.Command{
	Use:   "install <id>",
	Short: "Write a desktop entry for a shortcut",
	Args:  cobra.ExactArgs(1),
	RunE:  runDesktopInstall,
}

var desktopRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete the desktop entry of a shortcut",
	Args:    cobra.ExactArgs(1),
	RunE:    runDesktopRemove,
}

func init() {
	rootCmd.AddCommand(desktopCmd)
	desktopCmd.AddCommand(desktopInstallCmd)
	desktopCmd.AddCommand(desktopRemoveCmd)
}

func runDesktopInstall(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := app.Shortcuts.Get(app.Ctx(), id)
	if err != nil {
		return err
	}

	path, err := app.DesktopUC.Create(app.Ctx(), id)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewShortcutRenderer(app.Theme).RenderDesktopInstalled(s, path))
	return nil
}

func runDesktopRemove(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := app.DesktopUC.Remove(app.Ctx(), id); err != nil {
		return err
	}

	fmt.Println(styles.NewShortcutRenderer(app.Theme).RenderDesktopRemoved(id))
	return nil
}
