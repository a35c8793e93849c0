package vkloader

import "github.com/gogpu/vkloader/internal/win32"

// Library loads shared libraries and resolves their exports.
// Implementations must return a zero Proc for missing symbols.
type Library interface {
	Load(name string) (Module, error)
	Symbol(m Module, name string) Proc
	Free(m Module) error
}

// systemLibrary is the Library backed by the operating system loader.
type systemLibrary struct{}

func (systemLibrary) Load(name string) (Module, error) {
	m, err := win32.LoadLibrary(name)
	return Module(m), err
}

func (systemLibrary) Symbol(m Module, name string) Proc {
	return Proc(win32.GetProcAddress(win32.HMODULE(m), name))
}

func (systemLibrary) Free(m Module) error {
	return win32.FreeLibrary(win32.HMODULE(m))
}
