package vkloader

// InstanceLoader resolves instance-level entry points for one VkInstance
// by forwarding to its Loader with the instance bound.
//
// An InstanceLoader never destroys the instance it wraps; see InstanceFn
// for the owning variant. It keeps its Loader alive until the last
// reference to the InstanceLoader is released.
type InstanceLoader struct {
	refs refCount

	library  *Loader
	instance Instance
	owned    bool

	// destroy runs once when the last reference is released, before the
	// Loader reference is dropped. Set only by owning variants.
	destroy func(*InstanceLoader)
}

// NewInstanceLoader wraps instance without taking responsibility for
// destroying it. own is recorded and reported by Owned.
//
// NewInstanceLoader panics if lib has already been fully released.
func NewInstanceLoader(lib *Loader, own Ownership, instance Instance) *InstanceLoader {
	return newInstanceLoader(lib, own, instance, nil)
}

func newInstanceLoader(lib *Loader, own Ownership, instance Instance, destroy func(*InstanceLoader)) *InstanceLoader {
	if !lib.retain() {
		panic("vkloader: instance loader created from a released Loader")
	}
	l := &InstanceLoader{
		library:  lib,
		instance: instance,
		owned:    bool(own),
		destroy:  destroy,
	}
	l.refs.init()
	return l
}

// Sym resolves an instance-level entry point.
func (l *InstanceLoader) Sym(name string) Proc {
	return l.library.Sym(l.instance, name)
}

// Handle returns the wrapped instance.
func (l *InstanceLoader) Handle() Instance { return l.instance }

// Owned reports whether the instance was marked as owned at construction.
func (l *InstanceLoader) Owned() bool { return l.owned }

// Library returns the Loader this InstanceLoader forwards to.
func (l *InstanceLoader) Library() *Loader { return l.library }

// Close releases the creator's reference.
func (l *InstanceLoader) Close() error {
	last, err := l.refs.releaseOwner()
	if err != nil {
		return err
	}
	if last {
		return l.teardown()
	}
	return nil
}

func (l *InstanceLoader) retain() bool { return l.refs.retain() }

func (l *InstanceLoader) release() error {
	if l.refs.release() {
		return l.teardown()
	}
	return nil
}

func (l *InstanceLoader) teardown() error {
	if l.destroy != nil && l.owned {
		l.destroy(l)
	}
	Logger().Debug("vulkan: instance loader released", "instance", l.instance)
	return l.library.release()
}
