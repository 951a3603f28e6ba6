// Package kernel assembles the application runtime: configuration,
// logging, the dependency injection container, and the provider
// lifecycle, wired together behind a single App type.
package kernel
