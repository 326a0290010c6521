// Package cmd provides Cobra CLI commands for webdeck.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/cli"
	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/domain/build"
	"github.com/bnema/webdeck/internal/domain/entity"
)

var (
	app            *cli.App
	buildInfo      build.Info
	windowHost     port.WindowHost
	waitForWindows bool

	rootCmd = &cobra.Command{
		Use:   "webdeck",
		Short: "A launcher for web apps in their own windows",
		Long: `webdeck keeps a list of web app shortcuts and opens each one in its own window.

Features:
  - Ordered shortcuts with name, URL and icon
  - Fuzzy search over names and URLs
  - One dedicated window per app, reused when already open
  - SQLite, JSON or bolt storage
  - Desktop entries for your application menu

Run 'webdeck launch' for the interactive launcher, or use the subcommands
to manage shortcuts from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", cobra.ShellCompRequestCmd, "gen-docs", "version":
				return nil
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var err error
			app, err = cli.NewApp(ctx, cli.Options{
				Host:           windowHost,
				WaitForWindows: waitForWindows,
				LogToFile:      cmd.Name() == "launch",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, defaultTheme().ErrorStyle.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

// ExecuteContext runs the root command with ctx. Pending writes are flushed
// even when the command fails.
func ExecuteContext(ctx context.Context) error {
	defer closeApp()
	return rootCmd.ExecuteContext(ctx)
}

// closeApp flushes pending writes and releases the app once.
func closeApp() {
	if app == nil {
		return
	}
	a := app
	app = nil

	if err := a.Flush(context.WithoutCancel(a.Ctx())); err != nil {
		fmt.Fprintln(os.Stderr, styles.NewShortcutRenderer(a.Theme).RenderPersistWarning(err))
	}
	_ = a.Close()
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// SetWindowHost replaces the system browser with host for app windows.
// With wait set, window commands block until their window is closed.
func SetWindowHost(host port.WindowHost, wait bool) {
	windowHost = host
	waitForWindows = wait
}

// NeedsWindowHost reports whether args run a command that opens windows.
func NeedsWindowHost(args []string) bool {
	c, _, err := rootCmd.Find(args)
	if err != nil || c == nil {
		return false
	}
	switch c.Name() {
	case "open", "app", "launch":
		return true
	}
	return false
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, errors.New("app not initialized")
	}
	return app, nil
}

func parseID(s string) (entity.ShortcutID, error) {
	id, err := entity.ParseShortcutID(s)
	if err != nil {
		return 0, fmt.Errorf("invalid shortcut id %q: %w", s, err)
	}
	return id, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return n, nil
}

// defaultTheme styles output printed without an app.
func defaultTheme() *styles.Theme {
	return styles.NewTheme(entity.ThemeDark)
}
