package vkloader

import (
	"fmt"

	"github.com/gogpu/wgpu/hal/vulkan/vk"
)

// Instance is a VkInstance handle. The zero value is VK_NULL_HANDLE and
// selects library-global symbols in Loader.Sym.
type Instance = vk.Instance

// Device is a VkDevice handle.
type Device = vk.Device

// Proc is the address of a driver entry point (PFN_vkVoidFunction).
// The zero value means the symbol is absent.
type Proc uintptr

// IsNil reports whether p holds no address.
func (p Proc) IsNil() bool { return p == 0 }

// Addr returns the raw address.
func (p Proc) Addr() uintptr { return uintptr(p) }

// String formats the address as hex.
func (p Proc) String() string { return fmt.Sprintf("%#x", uintptr(p)) }

// Module is an opaque loaded-library handle. Zero means no library.
type Module uintptr

// String formats the handle as hex.
func (m Module) String() string { return fmt.Sprintf("%#x", uintptr(m)) }

// GetInstanceProcAddrFunc is the bootstrap entry point as seen from Go:
// it maps (instance or zero, name) to a driver function address.
type GetInstanceProcAddrFunc func(instance Instance, name string) Proc

// Ownership says whether a wrapper is responsible for destroying the
// driver object it wraps.
type Ownership bool

const (
	// Borrowed wrappers never destroy the wrapped handle.
	Borrowed Ownership = false
	// Owned wrappers destroy the wrapped handle when their last reference
	// is released (owning variants only).
	Owned Ownership = true
)

func (o Ownership) String() string {
	if o {
		return "owned"
	}
	return "borrowed"
}
