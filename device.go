package vkloader

import "errors"

// DeviceLoader resolves device-level entry points for one VkDevice.
//
// vkGetDeviceProcAddr is resolved once, through the InstanceLoader, when
// the DeviceLoader is created. Sym then calls it directly with the device
// bound and never goes back through the instance chain.
type DeviceLoader struct {
	refs refCount

	instance          *InstanceLoader
	device            Device
	owned             bool
	getDeviceProcAddr Proc
	call              Caller

	destroy func(*DeviceLoader)
}

// NewDeviceLoader wraps device without taking responsibility for
// destroying it. It fails with ErrNoDeviceProcAddr when the driver does
// not provide vkGetDeviceProcAddr for inst, and with ErrClosed when inst
// has already been fully released.
func NewDeviceLoader(inst *InstanceLoader, own Ownership, device Device) (*DeviceLoader, error) {
	return newDeviceLoader(inst, own, device, nil)
}

func newDeviceLoader(inst *InstanceLoader, own Ownership, device Device, destroy func(*DeviceLoader)) (*DeviceLoader, error) {
	if inst == nil {
		return nil, errors.New("vkloader: nil instance loader")
	}
	// inst must be held while its driver is called.
	if !inst.retain() {
		return nil, ErrClosed
	}
	proc := inst.Sym("vkGetDeviceProcAddr")
	if proc.IsNil() {
		Logger().Error("vulkan: vkGetDeviceProcAddr not found", "instance", inst.instance, "device", device)
		if err := inst.release(); err != nil {
			return nil, errors.Join(ErrNoDeviceProcAddr, err)
		}
		return nil, ErrNoDeviceProcAddr
	}
	l := &DeviceLoader{
		instance:          inst,
		device:            device,
		owned:             bool(own),
		getDeviceProcAddr: proc,
		call:              inst.library.call,
		destroy:           destroy,
	}
	l.refs.init()
	return l, nil
}

// Sym resolves a device-level entry point.
func (l *DeviceLoader) Sym(name string) Proc {
	return l.call.GetProcAddr(l.getDeviceProcAddr, uintptr(l.device), name)
}

// Handle returns the wrapped device.
func (l *DeviceLoader) Handle() Device { return l.device }

// Owned reports whether the device was marked as owned at construction.
func (l *DeviceLoader) Owned() bool { return l.owned }

// Instance returns the InstanceLoader this DeviceLoader was created from.
func (l *DeviceLoader) Instance() *InstanceLoader { return l.instance }

// DeviceProcAddr returns the vkGetDeviceProcAddr address resolved at
// construction.
func (l *DeviceLoader) DeviceProcAddr() Proc { return l.getDeviceProcAddr }

// Close releases the creator's reference. Device loaders have no children,
// so this is also the last reference.
func (l *DeviceLoader) Close() error {
	last, err := l.refs.releaseOwner()
	if err != nil {
		return err
	}
	if !last {
		return nil
	}
	if l.destroy != nil && l.owned {
		l.destroy(l)
	}
	Logger().Debug("vulkan: device loader released", "device", l.device)
	return l.instance.release()
}
