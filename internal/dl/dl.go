// Package dl opens shared libraries and resolves their exported symbols.
//
// It is the single place that talks to the operating system loader:
// goffi on linux, freebsd and darwin, golang.org/x/sys/windows on Windows.
// Handles are plain integers so that callers can carry them through
// interfaces and test fakes without keeping Go pointers to foreign memory.
package dl

import (
	"errors"
	"fmt"
)

// Handle is an opaque library handle returned by Open. Zero means no library.
type Handle uintptr

// ErrUnsupported is returned on platforms without a dynamic loader backend.
var ErrUnsupported = errors.New("dl: dynamic loading not supported on this platform")

// ErrSymbolNotFound is wrapped by Sym when the library has no such export.
var ErrSymbolNotFound = errors.New("dl: symbol not found")

// Error describes a failed loader operation.
type Error struct {
	Op   string // "open", "sym" or "close"
	Name string // library or symbol name
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("dl: %s %q failed", e.Op, e.Name)
	}
	return fmt.Sprintf("dl: %s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying loader error.
func (e *Error) Unwrap() error { return e.Err }

// Open loads the named library.
func Open(name string) (Handle, error) {
	if name == "" {
		return 0, &Error{Op: "open", Name: name, Err: errors.New("empty library name")}
	}
	h, err := open(name)
	if err != nil {
		return 0, &Error{Op: "open", Name: name, Err: err}
	}
	return h, nil
}

// Sym returns the address of the named export of h.
func Sym(h Handle, name string) (uintptr, error) {
	if h == 0 {
		return 0, &Error{Op: "sym", Name: name, Err: errors.New("nil library handle")}
	}
	addr, err := sym(h, name)
	if err != nil {
		return 0, &Error{Op: "sym", Name: name, Err: err}
	}
	if addr == 0 {
		return 0, &Error{Op: "sym", Name: name, Err: ErrSymbolNotFound}
	}
	return addr, nil
}

// Close unloads h. Closing a zero handle is a no-op.
func Close(h Handle) error {
	if h == 0 {
		return nil
	}
	if err := closeLib(h); err != nil {
		return &Error{Op: "close", Name: fmt.Sprintf("%#x", uintptr(h)), Err: err}
	}
	return nil
}
