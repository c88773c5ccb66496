package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/propgrid/internal/config"
	"github.com/vk/propgrid/internal/ctxlog"
	"github.com/vk/propgrid/internal/entitystore"
	"github.com/vk/propgrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	model   *config.Model
	plugins *registry.Context
	store   *entitystore.Store
}

// NewApp is the constructor for the main application. It loads the plugin
// configuration and builds the plugin context. Extra registry options are
// appended after the ones derived from appConfig, so tests can point the
// app at their own registry.
//
// Configuration and plugin construction failures are fatal startup errors
// and cause a panic.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, opts ...registry.Option) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Plugin configuration loaded.", "configured", model.Names())

	ctxOpts := []registry.Option{
		registry.WithLogger(logger),
		registry.WithConfig(model),
	}
	if appConfig.SortedOrder {
		ctxOpts = append(ctxOpts, registry.WithSortedOrder())
	}
	if appConfig.Strict {
		ctxOpts = append(ctxOpts, registry.WithUniqueNames())
	}
	ctxOpts = append(ctxOpts, opts...)

	plugins, err := registry.TryNew(ctxOpts...)
	if err != nil {
		panic(fmt.Errorf("failed to initialize plugins: %w", err))
	}
	logger.Debug("Plugin context built.", "state", plugins.State())

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		model:   model,
		plugins: plugins,
		store:   entitystore.New(plugins),
	}
}

// Plugins returns the application's plugin context. This is primarily for testing.
func (a *App) Plugins() *registry.Context {
	return a.plugins
}

// Store returns the application's entity store. This is primarily for testing.
func (a *App) Store() *entitystore.Store {
	return a.store
}

// Run reports the initialized plugins and creates the configured number of
// entities.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	logger.Info("Plugins initialized.", "count", len(a.plugins.Plugins()), "names", a.plugins.Plugins())

	if missing := a.plugins.Missing(); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, d := range missing {
			names = append(names, d.Name)
		}
		if a.config.Strict {
			return fmt.Errorf("required plugins did not register: %v", names)
		}
		logger.Warn("Required plugins did not register.", "names", names)
	}

	for i := 1; i <= a.config.Entities; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.store.Create(registry.EntityID(i)); err != nil {
			return fmt.Errorf("failed to create entity: %w", err)
		}
	}
	if a.config.Entities > 0 {
		logger.Info("Entities created.", "count", a.store.Len())
	}

	logger.Debug("App.Run method finished.")
	return nil
}
