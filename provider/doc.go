// Package provider manages service providers that register and boot
// application services against a dependency injection container.
//
// A Provider bundles related service registrations. The Registry runs
// providers with deterministic ordering: Register and Boot in the order
// providers were added, Shutdown in reverse order.
package provider
