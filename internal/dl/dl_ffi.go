//go:build (linux || freebsd || darwin) && (amd64 || arm64)

package dl

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

func open(name string) (Handle, error) {
	p, err := ffi.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return Handle(uintptr(p)), nil
}

func sym(h Handle, name string) (uintptr, error) {
	p, err := ffi.GetSymbol(pointer(h), name)
	if err != nil {
		return 0, err
	}
	return uintptr(p), nil
}

func closeLib(h Handle) error {
	return ffi.FreeLibrary(pointer(h))
}

// pointer turns a handle obtained from the system loader back into the
// pointer form goffi expects. The memory it refers to is not Go memory.
func pointer(h Handle) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&h))
}
