package di

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/appkit-go/appkit/errors"
)

// Container defines the service registry contract.
type Container interface {
	// Set registers or overwrites a service and returns its handle.
	Set(name string, definition any, shared bool) *Service

	// Attempt registers a service only when name is free. It returns the
	// existing or new handle, and false when the name was already taken.
	Attempt(name string, definition any, shared bool) (*Service, bool)

	// Get always builds a fresh instance from the definition, ignoring
	// any cached shared instance.
	Get(name string, params ...any) (any, error)

	// GetShared returns the cached instance when one exists; otherwise it
	// resolves once and caches the result.
	GetShared(name string, params ...any) (any, error)

	// GetRaw returns the stored definition without resolving it.
	GetRaw(name string) (any, error)

	// GetService returns the registration handle for name.
	GetService(name string) (*Service, error)

	// Has reports whether name is registered.
	Has(name string) bool

	// Remove deregisters name and discards its cached instance. Removing
	// an unregistered name is a no-op.
	Remove(name string)

	// Services returns all registration handles sorted by name.
	Services() []*Service
}

// serviceContainer is the default container implementation.
type serviceContainer struct {
	mu       sync.RWMutex
	services map[string]*Service
}

// NewContainer creates an empty service container.
func NewContainer() Container {
	return &serviceContainer{services: make(map[string]*Service)}
}

func (c *serviceContainer) Set(name string, definition any, shared bool) *Service {
	c.mu.Lock()
	defer c.mu.Unlock()

	service := NewService(name, definition, shared)
	c.services[name] = service
	return service
}

func (c *serviceContainer) Attempt(name string, definition any, shared bool) (*Service, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.services[name]; ok {
		return existing, false
	}
	service := NewService(name, definition, shared)
	c.services[name] = service
	return service, true
}

func (c *serviceContainer) Get(name string, params ...any) (any, error) {
	service, err := c.GetService(name)
	if err != nil {
		return nil, err
	}
	return c.build(name, service.Definition(), params)
}

func (c *serviceContainer) GetShared(name string, params ...any) (any, error) {
	service, err := c.GetService(name)
	if err != nil {
		return nil, err
	}

	if instance, ok := service.cached(); ok {
		return instance, nil
	}
	instance, err := c.build(name, service.Definition(), params)
	if err != nil {
		return nil, err
	}
	service.cache(instance)
	return instance, nil
}

func (c *serviceContainer) GetRaw(name string) (any, error) {
	service, err := c.GetService(name)
	if err != nil {
		return nil, err
	}
	return service.Definition(), nil
}

func (c *serviceContainer) GetService(name string) (*Service, error) {
	c.mu.RLock()
	service, ok := c.services[name]
	c.mu.RUnlock()
	if !ok {
		return nil, errors.ServiceNotFound(name)
	}
	return service, nil
}

func (c *serviceContainer) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.services[name]
	return ok
}

func (c *serviceContainer) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if service, ok := c.services[name]; ok {
		service.flush()
		delete(c.services, name)
	}
}

func (c *serviceContainer) Services() []*Service {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Service, 0, len(c.services))
	for _, service := range c.services {
		out = append(out, service)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// containerType is the reflected Container interface, matched against
// constructor parameters during resolution.
var containerType = reflect.TypeOf((*Container)(nil)).Elem()

func (c *serviceContainer) build(name string, definition any, params []any) (any, error) {
	return buildDefinition(c, name, definition, params)
}

// buildDefinition produces an instance from a definition. Non-function
// definitions are returned as-is. Function definitions are invoked with
// the container substituted for Container-typed parameters and the given
// params filling the remaining positions; they must return (instance) or
// (instance, error).
func buildDefinition(c Container, name string, definition any, params []any) (any, error) {
	fn := reflect.ValueOf(definition)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return definition, nil
	}

	fnType := fn.Type()
	args := make([]reflect.Value, 0, fnType.NumIn())
	next := 0
	for i := 0; i < fnType.NumIn(); i++ {
		in := fnType.In(i)
		if in == containerType {
			if c == nil {
				args = append(args, reflect.Zero(containerType))
			} else {
				args = append(args, reflect.ValueOf(c))
			}
			continue
		}
		if next >= len(params) {
			return nil, errors.ResolutionFailed(name,
				fmt.Errorf("constructor expects %d parameters, got %d", fnType.NumIn(), len(params)))
		}
		arg, err := paramValue(params[next], in)
		if err != nil {
			return nil, errors.ResolutionFailed(name,
				fmt.Errorf("parameter %d: %w", next, err))
		}
		args = append(args, arg)
		next++
	}

	results := fn.Call(args)
	switch len(results) {
	case 1:
		return results[0].Interface(), nil
	case 2:
		instance := results[0].Interface()
		if errVal := results[1].Interface(); errVal != nil {
			err, ok := errVal.(error)
			if !ok {
				return nil, errors.ResolutionFailed(name,
					fmt.Errorf("constructor's second result is %T, not error", errVal))
			}
			return nil, errors.ResolutionFailed(name, err)
		}
		return instance, nil
	default:
		return nil, errors.ResolutionFailed(name,
			fmt.Errorf("constructor must return (instance) or (instance, error)"))
	}
}

// paramValue converts a caller-supplied parameter into a reflect value of
// the parameter type, mapping nil to the type's zero value. A parameter
// whose type neither is assignable nor convertible to the target is
// rejected rather than passed through to reflect.Call.
func paramValue(param any, target reflect.Type) (reflect.Value, error) {
	if param == nil {
		return reflect.Zero(target), nil
	}
	v := reflect.ValueOf(param)
	if v.Type().AssignableTo(target) {
		return v, nil
	}
	if v.Type().ConvertibleTo(target) {
		return v.Convert(target), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", v.Type(), target)
}
