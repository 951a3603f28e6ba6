package provider

import (
	"context"

	"github.com/appkit-go/appkit/di"
)

// Provider bundles related service registrations into a unit with a
// two-phase lifecycle. Register binds definitions into the container;
// Boot runs after every provider has registered, so providers may
// resolve each other's services there.
type Provider interface {
	// Name returns the unique name of the provider for registration.
	Name() string

	// Register binds service definitions into the container. It must not
	// resolve services from other providers.
	Register(container di.Container) error

	// Boot finalizes the provider once all registrations are in place.
	Boot(ctx context.Context, container di.Container) error
}

// Shutdowner is optionally implemented by providers that hold resources
// needing release on application shutdown.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Func adapts plain functions into a Provider. Boot and Shutdown may be
// nil when the provider has nothing to do in those phases.
type Func struct {
	ProviderName string
	RegisterFunc func(container di.Container) error
	BootFunc     func(ctx context.Context, container di.Container) error
	ShutdownFunc func(ctx context.Context) error
}

func (f *Func) Name() string { return f.ProviderName }

func (f *Func) Register(container di.Container) error {
	if f.RegisterFunc == nil {
		return nil
	}
	return f.RegisterFunc(container)
}

func (f *Func) Boot(ctx context.Context, container di.Container) error {
	if f.BootFunc == nil {
		return nil
	}
	return f.BootFunc(ctx, container)
}

func (f *Func) Shutdown(ctx context.Context) error {
	if f.ShutdownFunc == nil {
		return nil
	}
	return f.ShutdownFunc(ctx)
}
