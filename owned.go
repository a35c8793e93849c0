package vkloader

// InstanceFn is the owning form of InstanceLoader. When created with
// Owned it calls vkDestroyInstance on the wrapped instance as soon as its
// last reference is released, before the Loader reference is dropped.
// Created with Borrowed it behaves exactly like an InstanceLoader.
//
// Device loaders are built on the embedded base:
//
//	inst := vkloader.NewInstanceFn(lib, vkloader.Owned, instance)
//	dev, err := vkloader.NewDeviceFn(inst.InstanceLoader, vkloader.Owned, device)
type InstanceFn struct {
	*InstanceLoader
}

// NewInstanceFn wraps instance and, when own is Owned, destroys it on
// teardown.
func NewInstanceFn(lib *Loader, own Ownership, instance Instance) *InstanceFn {
	return &InstanceFn{InstanceLoader: newInstanceLoader(lib, own, instance, destroyInstance)}
}

func destroyInstance(l *InstanceLoader) {
	fn := l.Sym("vkDestroyInstance")
	if fn.IsNil() {
		Logger().Warn("vulkan: vkDestroyInstance not found, instance leaked", "instance", l.instance)
		return
	}
	Logger().Debug("vulkan: destroying instance", "instance", l.instance)
	l.library.call.Destroy(fn, uintptr(l.instance))
}

// DeviceFn is the owning form of DeviceLoader. When created with Owned it
// calls vkDestroyDevice on the wrapped device when closed, before the
// InstanceLoader reference is dropped.
type DeviceFn struct {
	*DeviceLoader
}

// NewDeviceFn wraps device and, when own is Owned, destroys it on
// teardown. It fails like NewDeviceLoader.
func NewDeviceFn(inst *InstanceLoader, own Ownership, device Device) (*DeviceFn, error) {
	l, err := newDeviceLoader(inst, own, device, destroyDevice)
	if err != nil {
		return nil, err
	}
	return &DeviceFn{DeviceLoader: l}, nil
}

func destroyDevice(l *DeviceLoader) {
	fn := l.Sym("vkDestroyDevice")
	if fn.IsNil() {
		Logger().Warn("vulkan: vkDestroyDevice not found, device leaked", "device", l.device)
		return
	}
	Logger().Debug("vulkan: destroying device", "device", l.device)
	l.call.Destroy(fn, uintptr(l.device))
}
