package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/appkit-go/appkit/di"
	"github.com/appkit-go/appkit/logger"
)

// providerEntry holds a provider and its lifecycle state.
type providerEntry struct {
	provider   Provider
	registered bool
	booted     bool
}

// Registry manages provider lifecycle with deterministic ordering.
// Providers are registered and booted in the order they were added and
// shut down in reverse order.
type Registry struct {
	entries []*providerEntry
	lookup  map[string]*providerEntry
	mu      sync.RWMutex
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make([]*providerEntry, 0),
		lookup:  make(map[string]*providerEntry),
	}
}

// Add appends a provider to the registry. Providers run in the order
// they are added, so add dependencies first.
func (r *Registry) Add(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.lookup[name]; exists {
		return fmt.Errorf("provider %s already added", name)
	}

	entry := &providerEntry{provider: p}
	r.entries = append(r.entries, entry)
	r.lookup[name] = entry

	logger.Debug("Provider added", map[string]interface{}{
		"provider": name,
	})
	return nil
}

// RegisterAll runs the Register phase for all providers in order.
func (r *Registry) RegisterAll(container di.Container) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.registered {
			continue
		}
		name := entry.provider.Name()
		if err := entry.provider.Register(container); err != nil {
			logger.Error("Provider registration failed", map[string]interface{}{
				"provider": name,
				"error":    err.Error(),
			})
			return fmt.Errorf("failed to register %s: %w", name, err)
		}
		entry.registered = true
		logger.Debug("Provider registered", map[string]interface{}{"provider": name})
	}
	return nil
}

// BootAll runs the Boot phase for all registered providers in order.
// Providers that have not completed Register are registered first.
func (r *Registry) BootAll(ctx context.Context, container di.Container) error {
	if err := r.RegisterAll(container); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	logger.Info("Booting providers", map[string]interface{}{
		"count": len(r.entries),
	})

	for _, entry := range r.entries {
		if entry.booted {
			continue
		}
		name := entry.provider.Name()
		if err := entry.provider.Boot(ctx, container); err != nil {
			logger.Error("Provider boot failed", map[string]interface{}{
				"provider": name,
				"error":    err.Error(),
			})
			return fmt.Errorf("failed to boot %s: %w", name, err)
		}
		entry.booted = true
		logger.Debug("Provider booted", map[string]interface{}{"provider": name})
	}

	logger.Info("All providers booted")
	return nil
}

// ShutdownAll shuts down booted providers in reverse order. Only
// providers implementing Shutdowner participate. All shutdowns are
// attempted even when some fail.
func (r *Registry) ShutdownAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for i := len(r.entries) - 1; i >= 0; i-- {
		entry := r.entries[i]
		if !entry.booted {
			continue
		}
		entry.booted = false

		s, ok := entry.provider.(Shutdowner)
		if !ok {
			continue
		}

		name := entry.provider.Name()
		if err := s.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shut down %s: %w", name, err))
			logger.Error("Provider shutdown failed", map[string]interface{}{
				"provider": name,
				"error":    err.Error(),
			})
		} else {
			logger.Debug("Provider shut down", map[string]interface{}{"provider": name})
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}

// Get returns an added provider by name, or nil if not found.
func (r *Registry) Get(name string) Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, exists := r.lookup[name]; exists {
		return entry.provider
	}
	return nil
}

// All returns all providers in registration order.
func (r *Registry) All() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Provider, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry.provider)
	}
	return out
}
