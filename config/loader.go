package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/appkit-go/appkit/collection"
	"github.com/appkit-go/appkit/errors"
)

// FileSystem abstracts file probing and env loading (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds loading options. Zero values mean "search standard
// locations".
type LoaderConfig struct {
	// ConfigFile is an explicit YAML settings file path.
	ConfigFile string
	// EnvFile is an explicit .env file path.
	EnvFile string
	// EnvPrefix namespaces environment overrides (default "APP").
	EnvPrefix string
	// Defaults seed settings that the file may override.
	Defaults map[string]any
}

// Loader resolves and reads configuration files.
type Loader struct {
	FileSystem FileSystem
}

// NewLoader creates a Loader over the real filesystem.
func NewLoader() *Loader {
	return &Loader{FileSystem: RealFileSystem{}}
}

// Load reads configuration for appName and returns it as a Collection.
// A resolved .env file is loaded into the process environment first; the
// YAML settings file is then read with environment overrides applied.
// A missing settings file is not an error (defaults and environment
// still apply) but an unreadable or malformed one is.
func (l *Loader) Load(appName string, opts LoaderConfig) (*collection.Collection, error) {
	if envFile := l.resolveEnvFile(appName, opts.EnvFile); envFile != "" {
		if err := l.FileSystem.LoadEnv(envFile); err != nil {
			return nil, errors.ConfigError("failed to load env file "+envFile, err)
		}
	}

	v := viper.New()
	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = "APP"
	}
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile := l.resolveConfigFile(appName, opts.ConfigFile); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.ConfigError("failed to read config file "+configFile, err)
		}
	}

	return collection.New(v.AllSettings()), nil
}

// Load reads configuration with the default loader.
func Load(appName string, opts LoaderConfig) (*collection.Collection, error) {
	return NewLoader().Load(appName, opts)
}

// resolveConfigFile returns the explicit path or the first standard
// location that exists.
func (l *Loader) resolveConfigFile(appName, explicit string) string {
	if explicit != "" {
		return explicit
	}
	searchPaths := []string{
		"./config/" + appName + ".yml",
		"./config/config.yml",
		"./config.yml",
		"./config.yaml",
	}
	for _, path := range searchPaths {
		if l.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// resolveEnvFile returns the explicit path or the first standard .env
// location that exists.
func (l *Loader) resolveEnvFile(appName, explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{".env." + appName, ".env"} {
		if l.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}
