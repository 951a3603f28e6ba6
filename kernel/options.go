package kernel

import (
	"github.com/appkit-go/appkit/collection"
	"github.com/appkit-go/appkit/di"
	"github.com/appkit-go/appkit/logger"
)

// Option customizes App construction.
type Option func(*options)

type options struct {
	settings   *collection.Collection
	container  di.Container
	logger     *logger.Logger
	configFile string
	envFile    string
	defaults   map[string]any
}

// WithSettings supplies pre-built settings, skipping configuration
// loading entirely.
func WithSettings(settings *collection.Collection) Option {
	return func(o *options) { o.settings = settings }
}

// WithContainer supplies an existing container instead of a fresh one.
func WithContainer(container di.Container) Option {
	return func(o *options) { o.container = container }
}

// WithLogger supplies a custom logger instead of one built from settings.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithConfigFile points configuration loading at an explicit file.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithEnvFile points environment loading at an explicit .env file.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// WithDefaults seeds default settings that files and environment may
// override.
func WithDefaults(defaults map[string]any) Option {
	return func(o *options) { o.defaults = defaults }
}

func resolveOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
