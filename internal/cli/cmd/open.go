package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/logging"
)

var (
	appURL  string
	appName string
)

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a shortcut in its own window",
	Long: `Open the app window for a shortcut. A window that is already open is
focused instead of duplicated.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Open any URL in a dedicated app window",
	Long: `Open a URL that is not in the collection. Each call gets a new window.

Examples:
  webdeck app --url https://example.com
  webdeck app --url chat.example.org --name Chat`,
	Args: cobra.NoArgs,
	RunE: runApp,
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(appCmd)

	appCmd.Flags().StringVarP(&appURL, "url", "u", "", "URL to open (required)")
	appCmd.Flags().StringVarP(&appName, "name", "n", "", "window title")
	_ = appCmd.MarkFlagRequired("url")
}

func runOpen(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	win, err := app.OpenUC.Open(app.Ctx(), id)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewShortcutRenderer(app.Theme).RenderOpened(win.Label(), win.URL()))
	if app.WaitsForWindows() {
		waitForWindow(cmd.Context(), win)
	}
	return nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	win, err := app.OpenUC.OpenURL(app.Ctx(), usecase.OpenURLInput{URL: appURL, Name: appName})
	if err != nil {
		return err
	}

	fmt.Println(styles.NewShortcutRenderer(app.Theme).RenderOpened(win.Label(), win.URL()))
	if app.WaitsForWindows() {
		waitForWindow(cmd.Context(), win)
	}
	return nil
}

// waitForWindow blocks until win is closed or ctx is done.
func waitForWindow(ctx context.Context, win port.AppWindow) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("label", win.Label()).Msg("waiting for window to close")

	select {
	case <-win.Done():
	case <-ctx.Done():
	}
}
