// Package cli wires configuration, logging and the layout engine for the
// docklayout commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/domain/build"
	"github.com/bnema/docklayout/internal/infrastructure/config"
	"github.com/bnema/docklayout/internal/infrastructure/filesystem"
	"github.com/bnema/docklayout/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/docklayout/internal/logging"
)

// Options carry the global command-line overrides.
type Options struct {
	ConfigFile string
	LayoutPath string
	LogLevel   string
	NoAutosave bool
}

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
	LayoutPath string
	Autosave   bool

	Layout    *usecase.ManageLayoutUseCase
	Snapshots *usecase.ManageSnapshotsUseCase
	Stats     *usecase.OperationStats
	Store     *filesystem.Adapter
	Events    *port.LayoutEventFanout

	configMgr  *config.Manager
	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the engine. The layout file is
// not read until LoadLayout.
func NewApp(opts Options) (*App, error) {
	mgr, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.File.Enabled,
			LogDir:        cfg.Logging.File.Dir,
			MaxSizeMB:     cfg.Logging.File.MaxSizeMB,
			MaxBackups:    cfg.Logging.File.MaxBackups,
			MaxAgeDays:    cfg.Logging.File.MaxAgeDays,
			Compress:      cfg.Logging.File.Compress,
			WriteToStderr: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	layoutPath := cfg.Layout.Path
	if opts.LayoutPath != "" {
		layoutPath = opts.LayoutPath
	}
	ctx := logging.WithLayoutPath(logging.WithContext(context.Background(), logger), layoutPath)

	warn, debug := cfg.SlowThresholds()
	stats := usecase.NewOperationStats(warn, debug)
	store := filesystem.New()
	events := &port.LayoutEventFanout{newLogEventSink(ctx)}

	layout := usecase.NewManageLayoutUseCase(events,
		usecase.WithMinPanelSize(cfg.Layout.MinPanelSize),
		usecase.WithValidationLimits(cfg.ValidationLimits()),
		usecase.WithOperationStats(stats),
		usecase.WithLayoutStore(store),
	)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	snapshots := usecase.NewManageSnapshotsUseCase(sqlite.NewLazyLayoutSnapshotRepository(db), layout)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("database", cfg.Database.Path).
		Msg("docklayout initialized")

	return &App{
		Config:     cfg,
		ConfigFile: mgr.GetConfigFile(),
		Theme:      styles.NewTheme(cfg),
		LayoutPath: layoutPath,
		Autosave:   cfg.Layout.Autosave && !opts.NoAutosave,
		Layout:     layout,
		Snapshots:  snapshots,
		Stats:      stats,
		Store:      store,
		Events:     events,
		configMgr:  mgr,
		db:         db,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

func newConfigManager(file string) (*config.Manager, error) {
	if file != "" {
		return config.NewManagerForFile(file)
	}
	return config.NewManager()
}

// WatchConfig reloads the config file when it changes on disk and hands
// each valid version to fn. fn runs on the watcher goroutine.
func (a *App) WatchConfig(fn func(*config.Config)) error {
	a.configMgr.OnConfigChange(fn)
	return a.configMgr.Watch()
}

// AddEventSink subscribes sink to layout events after the existing sinks.
func (a *App) AddEventSink(sink port.LayoutEventSink) {
	*a.Events = append(*a.Events, sink)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LoadLayout reads the layout file into the engine. A missing file leaves
// the engine empty.
func (a *App) LoadLayout() error {
	exists, err := a.Store.Exists(a.ctx, a.LayoutPath)
	if err != nil {
		return fmt.Errorf("stat layout: %w", err)
	}
	if !exists {
		logging.FromContext(a.ctx).Debug().Msg("no layout file yet, starting empty")
		return nil
	}

	if err := a.Layout.LoadLayoutFromFile(a.ctx, a.LayoutPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// Persist writes the layout back when autosave is on.
func (a *App) Persist() error {
	if !a.Autosave {
		logging.FromContext(a.ctx).Debug().Msg("autosave disabled, layout not written")
		return nil
	}
	return a.Layout.SaveLayoutToFile(a.ctx, a.LayoutPath)
}

// DatabaseVersion opens the snapshot database and reports its schema version.
func (a *App) DatabaseVersion(ctx context.Context) (int64, error) {
	db, err := a.db.DB(ctx)
	if err != nil {
		return 0, err
	}
	return sqlite.GetMigrationStatus(ctx, db)
}

// WithTimeout derives a context bounded by d from the app context.
func (a *App) WithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(a.ctx, d)
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}
