package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/webdeck/internal/cli/cmd"
	"github.com/bnema/webdeck/internal/domain/build"
	"github.com/bnema/webdeck/internal/infrastructure/config"
	"github.com/bnema/webdeck/internal/infrastructure/webkit"
	"github.com/bnema/webdeck/internal/infrastructure/xdg"
)

// Build-time variables (set via ldflags).
var (
	version   = ""
	commit    = ""
	buildDate = ""
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}.WithDefaults())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run executes the CLI, inside the GTK main loop when the command opens
// windows and the binary was built with WebKit support.
func run(ctx context.Context) int {
	if !webkit.Available() || !cmd.NeedsWindowHost(os.Args[1:]) {
		return cmd.Execute(ctx)
	}
	enableCrashForensics()

	toolbarHeight := config.DefaultConfig().Window.ToolbarHeight
	if err := config.Init(); err == nil {
		toolbarHeight = config.Get().Window.ToolbarHeight
	}

	host, err := webkit.NewGTKHost(xdg.New(), webkit.HostOptions{ToolbarHeight: toolbarHeight})
	if err != nil {
		fmt.Fprintf(os.Stderr, "webdeck: window host unavailable, using the system browser: %v\n", err)
		return cmd.Execute(ctx)
	}
	cmd.SetWindowHost(host, true)

	if err := host.Run(ctx, cmd.ExecuteContext); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
