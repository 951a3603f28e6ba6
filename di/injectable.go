package di

// InjectionAware is implemented by components that accept a container
// reference. The relation is a non-owning association: the component
// neither constructs nor tears down the container.
type InjectionAware interface {
	SetContainer(c Container)
	Container() Container
}

// Injectable is an embeddable implementation of InjectionAware. When no
// container has been set, Container falls back to the process default.
type Injectable struct {
	container Container
}

// SetContainer stores the container reference.
func (i *Injectable) SetContainer(c Container) { i.container = c }

// Container returns the associated container, or the process default when
// none was set.
func (i *Injectable) Container() Container {
	if i.container != nil {
		return i.container
	}
	return Default()
}
