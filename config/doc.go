// Package config loads application configuration for the appkit runtime.
//
// Settings are read from a YAML file (resolved from standard locations or
// an explicit path) through viper, after loading a .env file through
// godotenv, and are returned as a collection.Collection so consumers get
// ordered, case-insensitive access with typed getters.
package config
