package kernel

import (
	"context"
	"fmt"

	"github.com/appkit-go/appkit/collection"
	"github.com/appkit-go/appkit/config"
	"github.com/appkit-go/appkit/di"
	"github.com/appkit-go/appkit/logger"
	"github.com/appkit-go/appkit/provider"
)

// Service names the App registers in its container.
const (
	ServiceSettings = "settings"
	ServiceLogger   = "logger"
)

// App is the application kernel. It owns the settings, the container,
// the provider registry, and the logger, and drives the provider
// lifecycle.
type App struct {
	Name      string
	Settings  *collection.Collection
	Container di.Container
	Providers *provider.Registry
	Logger    *logger.Logger
}

// New builds an App named name. Settings are loaded from configuration
// files and environment unless supplied via WithSettings; the logger is
// built from the "logging" settings section unless supplied via
// WithLogger. The App registers its settings and logger as shared
// services and installs its container as the process default.
func New(name string, opts ...Option) (*App, error) {
	o := resolveOptions(opts)

	settings := o.settings
	if settings == nil {
		loaded, err := config.Load(name, config.LoaderConfig{
			ConfigFile: o.configFile,
			EnvFile:    o.envFile,
			Defaults:   o.defaults,
		})
		if err != nil {
			return nil, fmt.Errorf("config load: %w", err)
		}
		settings = loaded
	}

	log := o.logger
	if log == nil {
		log = loggerFromSettings(settings, name)
	}
	logger.SetGlobalLogger(log)

	container := o.container
	if container == nil {
		container = di.NewContainer()
	}

	app := &App{
		Name:      name,
		Settings:  settings,
		Container: container,
		Providers: provider.NewRegistry(),
		Logger:    log,
	}

	container.Set(ServiceSettings, settings, true)
	container.Set(ServiceLogger, log, true)
	di.SetDefault(container)

	return app, nil
}

// Register adds a provider to the kernel's registry.
func (a *App) Register(p provider.Provider) error {
	return a.Providers.Add(p)
}

// Boot runs the register and boot phases for all providers.
func (a *App) Boot(ctx context.Context) error {
	a.Logger.Info("Booting application", map[string]interface{}{
		"app": a.Name,
	})
	if err := a.Providers.BootAll(ctx, a.Container); err != nil {
		return err
	}
	a.Logger.Info("Application booted")
	return nil
}

// Shutdown stops booted providers in reverse order.
func (a *App) Shutdown(ctx context.Context) error {
	a.Logger.Info("Shutting down application", map[string]interface{}{
		"app": a.Name,
	})
	if err := a.Providers.ShutdownAll(ctx); err != nil {
		return err
	}
	a.Logger.Info("Application shutdown complete")
	return nil
}

// loggerFromSettings builds a logger from the "logging" settings
// section, falling back to defaults for anything unset.
func loggerFromSettings(settings *collection.Collection, name string) *logger.Logger {
	cfg := &logger.Config{}
	if section := settings.GetCollection("logging"); section != nil {
		cfg.Level = section.GetString("level", "")
		cfg.Format = section.GetString("format", "")
		cfg.Output = section.GetString("output", "")
		cfg.NoColor = section.GetBool("no_color", false)
		cfg.Caller = section.GetBool("caller", false)
	}
	cfg.ApplyDefaults()
	return logger.New(cfg, name)
}
