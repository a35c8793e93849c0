package vkloader

import (
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
	"github.com/gogpu/wgpu/hal/vulkan/vk"
)

// Caller invokes raw driver function addresses.
//
// GetProcAddr calls a vkGetInstanceProcAddr / vkGetDeviceProcAddr shaped
// function. Destroy calls a vkDestroyInstance / vkDestroyDevice shaped
// function with a nil allocator.
type Caller interface {
	GetProcAddr(fn Proc, handle uintptr, name string) Proc
	Destroy(fn Proc, handle uintptr)
}

var (
	cifOnce       sync.Once
	cifErr        error
	cifGetProc    types.CallInterface
	cifDestroyObj types.CallInterface
)

func prepareCallInterfaces() error {
	cifOnce.Do(func() {
		// PFN_vkVoidFunction (VkInstance|VkDevice, const char* pName)
		cifErr = ffi.PrepareCallInterface(&cifGetProc, types.DefaultCall,
			types.PointerTypeDescriptor,
			[]*types.TypeDescriptor{
				types.UInt64TypeDescriptor,
				types.PointerTypeDescriptor,
			})
		if cifErr != nil {
			return
		}
		// void (VkInstance|VkDevice, const VkAllocationCallbacks*)
		cifErr = ffi.PrepareCallInterface(&cifDestroyObj, types.DefaultCall,
			types.VoidTypeDescriptor,
			[]*types.TypeDescriptor{
				types.UInt64TypeDescriptor,
				types.PointerTypeDescriptor,
			})
	})
	return cifErr
}

// ffiCaller calls driver functions through goffi.
type ffiCaller struct{}

func (ffiCaller) GetProcAddr(fn Proc, handle uintptr, name string) Proc {
	if fn.IsNil() {
		return 0
	}
	if err := prepareCallInterfaces(); err != nil {
		Logger().Error("vulkan: cannot prepare call interface", "err", err)
		return 0
	}

	cname := make([]byte, len(name)+1)
	copy(cname, name)

	h := uint64(handle)
	namePtr := unsafe.Pointer(&cname[0])
	// goffi reads argument values from the addresses in args.
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&h),
		unsafe.Pointer(&namePtr),
	}
	var result uintptr
	if err := ffi.CallFunction(&cifGetProc, fn.pointer(), unsafe.Pointer(&result), args[:]); err != nil {
		Logger().Warn("vulkan: proc address call failed", "name", name, "err", err)
		return 0
	}
	return Proc(result)
}

func (ffiCaller) Destroy(fn Proc, handle uintptr) {
	if fn.IsNil() || handle == 0 {
		return
	}
	if err := prepareCallInterfaces(); err != nil {
		Logger().Error("vulkan: cannot prepare call interface", "err", err)
		return
	}

	h := uint64(handle)
	var allocator *vk.AllocationCallbacks
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&h),
		unsafe.Pointer(&allocator),
	}
	if err := ffi.CallFunction(&cifDestroyObj, fn.pointer(), nil, args[:]); err != nil {
		Logger().Warn("vulkan: destroy call failed", "handle", handle, "err", err)
	}
}

// pointer returns p in the form goffi accepts. p never refers to Go memory.
func (p Proc) pointer() unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&p))
}
