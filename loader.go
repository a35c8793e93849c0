package vkloader

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// bootstrapSymbol is the one export looked up in the driver library.
const bootstrapSymbol = "vkGetInstanceProcAddr"

// Loader resolves library-global and instance-level Vulkan entry points
// through vkGetInstanceProcAddr.
//
// A Loader is created once per driver session by one of the New functions
// and is immutable afterwards. It is shared by every InstanceLoader built
// on it; the library it loaded is freed when the creator and all those
// instance loaders have called Close.
//
// A Loader whose construction failed is not nil but is not Valid: Sym
// returns a nil Proc and Err reports why.
type Loader struct {
	refs refCount

	library Library
	call    Caller

	module Module
	owned  bool
	name   string // library the bootstrap symbol came from, if probed

	procAddr            Proc
	getInstanceProcAddr GetInstanceProcAddrFunc

	err error
}

func newLoader(o *loaderOptions) *Loader {
	l := &Loader{library: o.library, call: o.caller}
	l.refs.init()
	return l
}

// NewLoader creates a Loader using the platform's construction path:
// the forced environment override on Android, library probing elsewhere.
func NewLoader(opts ...Option) *Loader {
	o := buildOptions(opts)
	if forcedOverride {
		return newEnvLoader(&o)
	}
	return newProbeLoader(&o, o.names)
}

// NewLoaderWithProc creates a Loader around a bootstrap function the
// caller already has. No library is loaded or owned.
func NewLoaderWithProc(fn GetInstanceProcAddrFunc, opts ...Option) *Loader {
	o := buildOptions(opts)
	l := newLoader(&o)
	if fn == nil {
		Logger().Error("vulkan: nil vkGetInstanceProcAddr supplied")
		l.err = ErrNoProc
		return l
	}
	l.getInstanceProcAddr = fn
	return l
}

// NewLoaderWithProcAddr creates a Loader around the raw address of a
// vkGetInstanceProcAddr implementation. No library is loaded or owned.
func NewLoaderWithProcAddr(addr Proc, opts ...Option) *Loader {
	o := buildOptions(opts)
	l := newLoader(&o)
	if addr.IsNil() {
		Logger().Error("vulkan: nil vkGetInstanceProcAddr supplied")
		l.err = ErrNoProc
		return l
	}
	l.setProcAddr(addr)
	return l
}

// setProcAddr adopts a raw bootstrap address, called through the Caller.
func (l *Loader) setProcAddr(addr Proc) {
	l.procAddr = addr
	call := l.call
	l.getInstanceProcAddr = func(instance Instance, name string) Proc {
		return call.GetProcAddr(addr, uintptr(instance), name)
	}
}

// Sym resolves name for instance, or a library-global symbol when
// instance is zero. It returns whatever the driver reports, including a
// nil Proc for unknown names. On an invalid Loader it returns a nil Proc.
func (l *Loader) Sym(instance Instance, name string) Proc {
	if l.getInstanceProcAddr == nil {
		return 0
	}
	return l.getInstanceProcAddr(instance, name)
}

// GlobalSym resolves a library-global symbol such as vkCreateInstance.
func (l *Loader) GlobalSym(name string) Proc {
	return l.Sym(0, name)
}

// Valid reports whether the Loader has a bootstrap function.
func (l *Loader) Valid() bool { return l.getInstanceProcAddr != nil }

// Err returns the construction failure, or nil.
func (l *Loader) Err() error { return l.err }

// Module returns the library handle, zero when none is known.
func (l *Loader) Module() Module { return l.module }

// Owned reports whether the Loader loaded its library and will free it.
func (l *Loader) Owned() bool { return l.owned }

// LibraryName returns the probed library that provided the bootstrap
// symbol, or "" for the other construction paths.
func (l *Loader) LibraryName() string { return l.name }

// ProcAddr returns the raw bootstrap address, or a nil Proc when the
// Loader was built from a Go function.
func (l *Loader) ProcAddr() Proc { return l.procAddr }

// Backend identifies the graphics API this Loader serves.
func (l *Loader) Backend() gputypes.Backend { return gputypes.BackendVulkan }

// Close releases the creator's reference. The owned library is unloaded
// once no InstanceLoader refers to the Loader any more.
func (l *Loader) Close() error {
	last, err := l.refs.releaseOwner()
	if err != nil {
		return err
	}
	if last {
		return l.teardown()
	}
	return nil
}

func (l *Loader) retain() bool { return l.refs.retain() }

func (l *Loader) release() error {
	if l.refs.release() {
		return l.teardown()
	}
	return nil
}

func (l *Loader) teardown() error {
	if !l.owned || l.module == 0 {
		return nil
	}
	Logger().Debug("vulkan: unloading library", "library", l.name, "module", l.module)
	if err := l.library.Free(l.module); err != nil {
		return fmt.Errorf("vkloader: free %s: %w", l.name, err)
	}
	return nil
}
