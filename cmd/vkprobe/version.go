package main

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
	"github.com/gogpu/wgpu/hal/vulkan/vk"

	"github.com/gogpu/vkloader"
)

// apiVersion is a packed VK_MAKE_API_VERSION value.
type apiVersion uint32

func (v apiVersion) String() string {
	return fmt.Sprintf("%d.%d.%d (variant %d)",
		(uint32(v)>>22)&0x7f, (uint32(v)>>12)&0x3ff, uint32(v)&0xfff, uint32(v)>>29)
}

// vulkan10 is reported when the driver predates vkEnumerateInstanceVersion.
const vulkan10 apiVersion = 1 << 22

// instanceVersion calls vkEnumerateInstanceVersion through lib.
func instanceVersion(lib *vkloader.Loader) (apiVersion, error) {
	fn := lib.GlobalSym("vkEnumerateInstanceVersion")
	if fn.IsNil() {
		return vulkan10, nil
	}

	// VkResult vkEnumerateInstanceVersion(uint32_t* pApiVersion)
	var cif types.CallInterface
	err := ffi.PrepareCallInterface(&cif, types.DefaultCall,
		types.SInt32TypeDescriptor,
		[]*types.TypeDescriptor{types.PointerTypeDescriptor})
	if err != nil {
		return 0, err
	}

	var version uint32
	out := unsafe.Pointer(&version)
	args := [1]unsafe.Pointer{unsafe.Pointer(&out)}
	var result int32
	fnPtr := *(*unsafe.Pointer)(unsafe.Pointer(&fn))
	if err := ffi.CallFunction(&cif, fnPtr, unsafe.Pointer(&result), args[:]); err != nil {
		return 0, err
	}
	if vk.Result(result) != vk.Success {
		return 0, fmt.Errorf("VkResult %d", result)
	}
	return apiVersion(version), nil
}
