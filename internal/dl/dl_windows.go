//go:build windows

package dl

import "golang.org/x/sys/windows"

func open(name string) (Handle, error) {
	h, err := windows.LoadLibrary(name)
	return Handle(h), err
}

func sym(h Handle, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

func closeLib(h Handle) error {
	return windows.FreeLibrary(windows.Handle(h))
}
