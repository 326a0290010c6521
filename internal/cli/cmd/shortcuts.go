package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/domain/entity"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
)

var (
	listJSON bool
	addIcon  string

	editName string
	editURL  string
	editIcon string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List shortcuts in launcher order",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var addCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add a shortcut",
	Long: `Add a shortcut at the end of the collection.

The URL gets https:// when it has no scheme. Without --icon the icon is the
site favicon, falling back to the first letter of the name.

Examples:
  webdeck add GitHub github.com
  webdeck add Notes https://notes.example.com --icon N`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a shortcut's name, URL or icon",
	Long: `Change fields of an existing shortcut. Omitted flags keep their current value.

Examples:
  webdeck edit 2 --name "YouTube Music" --url music.youtube.com`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a shortcut",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var moveCmd = &cobra.Command{
	Use:   "move <id> <index>",
	Short: "Move a shortcut to a zero-based position",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(moveCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	addCmd.Flags().StringVarP(&addIcon, "icon", "i", "", "icon glyph or image URL")
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "new name")
	editCmd.Flags().StringVarP(&editURL, "url", "u", "", "new URL")
	editCmd.Flags().StringVarP(&editIcon, "icon", "i", "", "new icon glyph or image URL")
}

func runList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	shortcuts := app.Shortcuts.List(app.Ctx())
	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(shortcuts)
	}

	fmt.Println(styles.RenderShortcutTable(app.Theme, shortcuts))
	return nil
}

func runAdd(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	s, err := app.Shortcuts.Add(app.Ctx(), usecase.AddShortcutInput{
		Name: args[0],
		URL:  args[1],
		Icon: addIcon,
	})
	if err != nil {
		return err
	}

	fmt.Println(styles.NewShortcutRenderer(app.Theme).RenderAdded(s))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	current, err := app.Shortcuts.Get(app.Ctx(), id)
	if err != nil {
		return err
	}

	s, err := app.Shortcuts.Edit(app.Ctx(), id, buildEditInput(current, cmd))
	if err != nil {
		return err
	}

	fmt.Println(styles.NewShortcutRenderer(app.Theme).RenderUpdated(s))
	return nil
}

// buildEditInput merges the changed flags of cmd over current. An icon that
// was derived from the old name or URL is cleared so it follows the new ones.
func buildEditInput(current *entity.Shortcut, cmd *cobra.Command) usecase.EditShortcutInput {
	input := usecase.EditShortcutInput{Name: current.Name, URL: current.URL, Icon: current.Icon}
	flags := cmd.Flags()
	if flags.Changed("name") {
		input.Name, _ = flags.GetString("name")
	}
	if flags.Changed("url") {
		input.URL, _ = flags.GetString("url")
	}
	if flags.Changed("icon") {
		input.Icon, _ = flags.GetString("icon")
		return input
	}

	changed := input.Name != current.Name || input.URL != current.URL
	if changed && domainurl.IsDerivedIcon(current.Name, current.URL, current.Icon) {
		input.Icon = ""
	}
	return input
}

func runRemove(_ *cobra.Command, args []string) error {
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
	if !app.Shortcuts.Remove(app.Ctx(), id) {
		return fmt.Errorf("shortcut #%d: %w", id, entity.ErrShortcutNotFound)
	}

	fmt.Println(styles.NewShortcutRenderer(app.Theme).RenderRemoved(s))
	return nil
}

func runMove(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	to, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	if err := app.Shortcuts.Move(app.Ctx(), id, to); err != nil {
		return err
	}

	s, err := app.Shortcuts.Get(app.Ctx(), id)
	if err != nil {
		return err
	}
	index := 0
	for i, item := range app.Shortcuts.List(app.Ctx()) {
		if item.ID == id {
			index = i
			break
		}
	}

	fmt.Println(styles.NewShortcutRenderer(app.Theme).RenderMoved(s, index))
	return nil
}
