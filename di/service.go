package di

import "sync"

// Service is the registration handle for a single named definition. It
// carries the shared flag and, for shared services, the lazily cached
// instance.
type Service struct {
	name       string
	definition any
	shared     bool

	mu       sync.Mutex
	resolved bool
	instance any
}

// NewService creates a detached service handle. Registrations made through
// a Container use this internally.
func NewService(name string, definition any, shared bool) *Service {
	return &Service{name: name, definition: definition, shared: shared}
}

// Name returns the service name.
func (s *Service) Name() string { return s.name }

// Definition returns the stored definition without resolving it.
func (s *Service) Definition() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.definition
}

// SetDefinition replaces the definition and discards any cached instance.
func (s *Service) SetDefinition(definition any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.definition = definition
	s.resolved = false
	s.instance = nil
}

// Shared reports whether the service caches one instance after first
// resolution.
func (s *Service) Shared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shared
}

// SetShared toggles shared-instance caching. Disabling it discards any
// cached instance.
func (s *Service) SetShared(shared bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shared = shared
	if !shared {
		s.resolved = false
		s.instance = nil
	}
}

// Resolve builds an instance from the definition. Shared services return
// their cached instance when one exists and cache the freshly built one
// otherwise. A nil container falls back to the process default.
func (s *Service) Resolve(params []any, container Container) (any, error) {
	if container == nil {
		container = Default()
	}
	if s.Shared() {
		if instance, ok := s.cached(); ok {
			return instance, nil
		}
	}
	instance, err := buildDefinition(container, s.Name(), s.Definition(), params)
	if err != nil {
		return nil, err
	}
	if s.Shared() {
		s.cache(instance)
	}
	return instance, nil
}

// IsResolved reports whether a cached instance exists.
func (s *Service) IsResolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// cached returns the cached instance, if any.
func (s *Service) cached() (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return s.instance, true
	}
	return nil, false
}

// cache stores a resolved instance.
func (s *Service) cache(instance any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instance = instance
	s.resolved = true
}

// flush discards the cached instance.
func (s *Service) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolved = false
	s.instance = nil
}
