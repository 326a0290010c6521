// Package cli wires the application for the command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/domain/build"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/repository"
	"github.com/bnema/webdeck/internal/domain/search"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
	"github.com/bnema/webdeck/internal/infrastructure/config"
	"github.com/bnema/webdeck/internal/infrastructure/desktop"
	"github.com/bnema/webdeck/internal/infrastructure/favicon"
	"github.com/bnema/webdeck/internal/infrastructure/persistence/bolt"
	"github.com/bnema/webdeck/internal/infrastructure/persistence/jsonfile"
	"github.com/bnema/webdeck/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webdeck/internal/infrastructure/persistence/writebehind"
	"github.com/bnema/webdeck/internal/infrastructure/window"
	"github.com/bnema/webdeck/internal/infrastructure/xdg"
	"github.com/bnema/webdeck/internal/logging"
)

// Options tunes NewApp.
type Options struct {
	// Host creates app windows. Nil uses the system browser.
	Host port.WindowHost
	// WaitForWindows makes window commands block until their window closes.
	WaitForWindows bool
	// LogToFile sends logs to the rotating log file instead of stderr.
	LogToFile bool
}

// Log file rotation limits.
const (
	logFileMaxSizeMB  = 5
	logFileMaxBackups = 3
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Use cases
	Shortcuts *usecase.ManageShortcutsUseCase
	SearchUC  *usecase.SearchShortcutsUseCase
	OpenUC    *usecase.OpenShortcutUseCase
	DesktopUC *usecase.CreateDesktopEntryUseCase
	ImportUC  *usecase.ImportShortcutsUseCase
	SchemaUC  *usecase.GetConfigSchemaUseCase

	// Services
	Favicons *favicon.Service
	Windows  *window.Registry
	Paths    *xdg.Adapter

	waitForWindows bool
	queue          *writebehind.Queue
	closeStore     func() error
	logFile        io.Closer

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	mgr, cfg := loadConfig()

	level, format := logging.ApplyEnvOverrides(cfg.Logging.Level, cfg.Logging.Format)
	logCfg := logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     format,
		TimeFormat: "15:04:05",
	}
	var logFile io.Closer
	if opts.LogToFile {
		w, err := openLogFile()
		if err != nil {
			// stderr would garble the terminal UI
			logCfg.Output = io.Discard
		} else {
			logCfg.Output = w
			logCfg.Format = "json"
			logFile = w
		}
	}
	logger := logging.New(logCfg)
	ctx = logging.WithContext(ctx, logger)
	log := logging.FromContext(ctx)

	repo, closeStore, err := openRepository(ctx, cfg.Storage)
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, err
	}
	log.Debug().
		Str("backend", string(cfg.Storage.Backend)).
		Str("path", cfg.Storage.Path).
		Msg("shortcut storage selected")

	queue := writebehind.New(ctx, repo)
	store := usecase.NewManageShortcutsUseCase(repo, queue)
	store.Load(ctx)

	paths := xdg.New()

	host := opts.Host
	if host == nil {
		host = window.NewBrowserHost()
	}
	windows := window.NewRegistry(host)

	faviconDir, err := config.GetFaviconCacheDir()
	if err != nil {
		log.Warn().Err(err).Msg("favicon disk cache disabled")
		faviconDir = ""
	}
	favicons := favicon.NewService(faviconDir, cfg.Favicon.Size)

	appsDir, err := paths.ApplicationsDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve applications directory")
	}

	searchCfg := search.DefaultConfig()
	searchCfg.Threshold = cfg.Search.Threshold

	return &App{
		Config:         cfg,
		Manager:        mgr,
		Theme:          styles.NewTheme(entity.ParseThemeMode(cfg.Appearance.Theme)),
		Shortcuts:      store,
		SearchUC:       usecase.NewSearchShortcutsUseCase(store, searchCfg),
		OpenUC:         usecase.NewOpenShortcutUseCase(store, windows, cfg.Window.Width, cfg.Window.Height),
		DesktopUC:      usecase.NewCreateDesktopEntryUseCase(store, desktop.New(appsDir, ""), favicons),
		ImportUC:       usecase.NewImportShortcutsUseCase(store),
		SchemaUC:       usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		Favicons:       favicons,
		Windows:        windows,
		Paths:          paths,
		waitForWindows: opts.WaitForWindows,
		queue:          queue,
		closeStore:     closeStore,
		logFile:        logFile,
		ctx:            ctx,
	}, nil
}

func openLogFile() (*logging.RotatingFile, error) {
	path, err := config.GetLogFile()
	if err != nil {
		return nil, err
	}
	return logging.OpenRotatingFile(path, logFileMaxSizeMB, logFileMaxBackups)
}

// openRepository builds the storage backend picked in the config.
func openRepository(ctx context.Context, cfg config.StorageConfig) (repository.ShortcutRepository, func() error, error) {
	switch cfg.Backend {
	case config.StorageJSON:
		return jsonfile.NewRepository(cfg.Path), nil, nil
	case config.StorageBolt:
		repo, err := bolt.Open(ctx, cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt storage: %w", err)
		}
		return repo, repo.Close, nil
	default:
		// The database opens on first use, so commands that never touch
		// storage do not pay for migrations.
		db := sqlite.NewLazyDB(cfg.Path)
		return sqlite.NewLazyShortcutRepository(db), db.Close, nil
	}
}

// WaitsForWindows reports whether window commands should block until
// their window closes.
func (a *App) WaitsForWindows() bool {
	return a.waitForWindows
}

// SaveTheme writes mode to the config file.
func (a *App) SaveTheme(mode entity.ThemeMode) error {
	if a.Manager == nil {
		return errors.New("configuration manager unavailable")
	}
	cfg := a.Manager.Get()
	cfg.Appearance.Theme = string(mode)
	if err := a.Manager.Save(cfg); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	a.Config = a.Manager.Get()
	a.Theme = styles.NewTheme(mode)
	return nil
}

// PrefetchIcons warms the favicon cache for every shortcut with a host.
func (a *App) PrefetchIcons(ctx context.Context) {
	if !a.Config.Favicon.Prefetch {
		return
	}
	shortcuts := a.Shortcuts.List(ctx)
	hosts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		if h, err := domainurl.Hostname(s.URL); err == nil {
			hosts = append(hosts, h)
		}
	}
	a.Favicons.Prefetch(ctx, hosts)
}

// Flush waits until pending shortcut writes have reached storage and
// returns the last save failure, if any.
func (a *App) Flush(ctx context.Context) error {
	if err := a.Shortcuts.Flush(ctx); err != nil {
		return err
	}
	return a.Shortcuts.LastPersistError()
}

// Close flushes pending writes and releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.queue != nil {
		if err := a.queue.Close(context.WithoutCancel(a.ctx)); err != nil {
			errs = append(errs, err)
		}
	}
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. A broken config
// falls back to the defaults so read-only commands keep working.
func loadConfig() (*config.Manager, *config.Config) {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "webdeck: using default configuration: %v\n", err)
		cfg := config.DefaultConfig()
		if path, pathErr := config.GetStorageFile(cfg.Storage.Backend); pathErr == nil {
			cfg.Storage.Path = path
		}
		// Saving over a file that failed to load would drop the user's edits.
		return nil, cfg
	}
	return config.GetManager(), config.Get()
}
