package di

import "fmt"

// MustResolve resolves a shared service with type safety, panicking on
// error. Use this during wiring where a missing service is a programming
// mistake.
func MustResolve[T any](c Container, name string) T {
	instance, err := c.GetShared(name)
	if err != nil {
		panic(fmt.Sprintf("di: failed to resolve %s: %v", name, err))
	}
	result, ok := instance.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("di: service %s is %T, expected %T", name, instance, zero))
	}
	return result
}

// Resolve resolves a shared service with type safety, returning an error
// on failure or type mismatch.
func Resolve[T any](c Container, name string) (T, error) {
	var zero T
	instance, err := c.GetShared(name)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("di: service %s is %T, expected %T", name, instance, zero)
	}
	return result, nil
}

// TryResolve resolves a shared service, returning the zero value and false
// when it is missing or has the wrong type. Use this for optional
// dependencies.
func TryResolve[T any](c Container, name string) (T, bool) {
	var zero T
	instance, err := c.GetShared(name)
	if err != nil {
		return zero, false
	}
	result, ok := instance.(T)
	if !ok {
		return zero, false
	}
	return result, true
}
