// Package cli wires configuration, logging and themes for the tuikit commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/tuikit/internal/cli/styles"
	"github.com/bnema/tuikit/internal/config"
	"github.com/bnema/tuikit/internal/domain/build"
	"github.com/bnema/tuikit/internal/logging"
	"github.com/bnema/tuikit/internal/ui/gui"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	GUITheme  *gui.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and opens the log file.
// A broken config file is reported and replaced by the defaults so that
// `config` subcommands keep working.
func NewApp() (*App, error) {
	var cfgErr error
	if err := config.Init(); err != nil {
		cfgErr = err
	}
	cfg := config.Get()

	logCfg := logging.WithEnv(logging.ConfigFromValues(cfg.Logging.Level, cfg.Logging.Format))
	logCfg.TimeFormat = "15:04:05"

	// The terminal belongs to the TUI, so logs go to the state directory only.
	logDir, err := config.GetLogDir()
	if err != nil {
		return nil, fmt.Errorf("resolve log dir: %w", err)
	}
	logger, logCleanup, err := logging.NewWithFile(
		logCfg,
		logging.FileConfig{
			Enabled:    true,
			Dir:        logDir,
			Filename:   cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	theme := styles.NewTheme(cfg)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("configuration not loaded, using defaults")
		fmt.Fprintln(os.Stderr, styles.NewConfigRenderer(theme).RenderError(cfgErr))
	}
	if mgr := config.GetManager(); mgr != nil {
		mgr.SetLogger(logger.With().Str("component", "config").Logger())
	}

	return &App{
		Config:     cfg,
		Theme:      theme,
		GUITheme:   styles.NewGUITheme(cfg),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() zerolog.Logger {
	return *logging.FromContext(a.ctx)
}

// NewGUI returns a window manager using the configured theme and the app logger.
func (a *App) NewGUI() *gui.MultiWindowTextGUI {
	ctx := logging.WithComponent(a.ctx, "gui")
	return gui.NewMultiWindowTextGUI(a.GUITheme, *logging.FromContext(ctx))
}
