// Package win32 exposes the small slice of the Win32 API the loader is
// written against, on every host.
//
// LoadLibrary, GetProcAddress and FreeLibrary are real: they forward to the
// system dynamic loader. Everything else in this package (see stubs.go) is a
// placeholder for a primitive the loader never needs on non-Windows hosts.
// Those placeholders log a warning and return their failure value; they must
// not be mistaken for working implementations.
package win32

import "github.com/gogpu/vkloader/internal/dl"

// HMODULE is a loaded library handle. Zero means no library.
type HMODULE uintptr

// LoadLibrary loads the named library. On failure it returns a zero
// HMODULE together with the loader error.
func LoadLibrary(name string) (HMODULE, error) {
	h, err := dl.Open(name)
	if err != nil {
		return 0, err
	}
	return HMODULE(h), nil
}

// GetProcAddress returns the address of an exported symbol, or zero if the
// module is zero or does not export name.
func GetProcAddress(module HMODULE, name string) uintptr {
	if module == 0 {
		return 0
	}
	addr, err := dl.Sym(dl.Handle(module), name)
	if err != nil {
		return 0
	}
	return addr
}

// FreeLibrary unloads a library previously returned by LoadLibrary.
func FreeLibrary(module HMODULE) error {
	return dl.Close(dl.Handle(module))
}
