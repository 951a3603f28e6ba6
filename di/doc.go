// Package di implements the dependency injection container for the appkit
// runtime.
//
// A Container maps service names to opaque definitions: raw values,
// zero-argument constructors, container-aware constructors, or
// positional-parameter factories. Get always builds a fresh instance;
// GetShared caches the first resolution per service. A process-wide default
// container can be installed with SetDefault for components that are handed
// no container explicitly.
//
// Typed resolution is available through the generic Resolve, MustResolve,
// and TryResolve helpers.
package di
