package vkloader

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"testing"
)

// Addresses handed out by the fake driver.
const (
	gipaAddr            Proc = 0x1000
	gdpaAddr            Proc = 0x2000
	destroyInstanceAddr Proc = 0x3000
	destroyDeviceAddr   Proc = 0x4000
	createInstanceAddr  Proc = 0x5000
	queueSubmitAddr     Proc = 0x6000
	instanceFuncAddr    Proc = 0x7000
)

// eventLog records driver and library activity in order.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (e *eventLog) add(format string, args ...any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, fmt.Sprintf(format, args...))
}

func (e *eventLog) all() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.events)
}

func (e *eventLog) count(event string) int {
	n := 0
	for _, ev := range e.all() {
		if ev == event {
			n++
		}
	}
	return n
}

// fakeDriver implements Caller by dispatching on the fake addresses.
type fakeDriver struct {
	log *eventLog

	noDeviceProcAddr bool
	noDestroy        bool
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{log: &eventLog{}}
}

func (d *fakeDriver) getInstanceProcAddr(instance Instance, name string) Proc {
	d.log.add("gipa(%#x,%s)", uintptr(instance), name)
	if instance == 0 {
		if name == "vkCreateInstance" {
			return createInstanceAddr
		}
		return 0
	}
	switch name {
	case "vkGetDeviceProcAddr":
		if d.noDeviceProcAddr {
			return 0
		}
		return gdpaAddr
	case "vkDestroyInstance":
		if d.noDestroy {
			return 0
		}
		return destroyInstanceAddr
	case "vkEnumeratePhysicalDevices":
		return instanceFuncAddr
	}
	return 0
}

func (d *fakeDriver) getDeviceProcAddr(device Device, name string) Proc {
	d.log.add("gdpa(%#x,%s)", uintptr(device), name)
	switch name {
	case "vkQueueSubmit":
		return queueSubmitAddr
	case "vkDestroyDevice":
		if d.noDestroy {
			return 0
		}
		return destroyDeviceAddr
	}
	return 0
}

func (d *fakeDriver) GetProcAddr(fn Proc, handle uintptr, name string) Proc {
	switch fn {
	case gipaAddr:
		return d.getInstanceProcAddr(Instance(handle), name)
	case gdpaAddr:
		return d.getDeviceProcAddr(Device(handle), name)
	}
	d.log.add("bad-call(%s,%s)", fn, name)
	return 0
}

func (d *fakeDriver) Destroy(fn Proc, handle uintptr) {
	switch fn {
	case destroyInstanceAddr:
		d.log.add("destroyInstance(%#x)", handle)
	case destroyDeviceAddr:
		d.log.add("destroyDevice(%#x)", handle)
	default:
		d.log.add("bad-destroy(%s,%#x)", fn, handle)
	}
}

// fakeLib describes one library known to fakeLibrary.
type fakeLib struct {
	loadable bool
	exports  map[string]Proc
}

// fakeLibrary implements Library over an in-memory set of libraries.
type fakeLibrary struct {
	log     *eventLog
	libs    map[string]fakeLib
	modules map[Module]string
	next    Module
	freeErr error
}

func newFakeLibrary(log *eventLog, libs map[string]fakeLib) *fakeLibrary {
	return &fakeLibrary{
		log:     log,
		libs:    libs,
		modules: make(map[Module]string),
		next:    0x100,
	}
}

func (f *fakeLibrary) Load(name string) (Module, error) {
	f.log.add("load(%s)", name)
	lib, ok := f.libs[name]
	if !ok || !lib.loadable {
		return 0, errors.New("cannot open shared object file")
	}
	m := f.next
	f.next += 0x100
	f.modules[m] = name
	return m, nil
}

func (f *fakeLibrary) Symbol(m Module, name string) Proc {
	lib := f.modules[m]
	f.log.add("sym(%s,%s)", lib, name)
	return f.libs[lib].exports[name]
}

func (f *fakeLibrary) Free(m Module) error {
	f.log.add("free(%s)", f.modules[m])
	return f.freeErr
}

// vulkanLib is a library exporting the fake bootstrap function.
func vulkanLib() fakeLib {
	return fakeLib{loadable: true, exports: map[string]Proc{bootstrapSymbol: gipaAddr}}
}

// newFakeLoader returns a probed Loader over a single working library.
func newFakeLoader(t *testing.T) (*Loader, *fakeDriver) {
	t.Helper()
	drv := newFakeDriver()
	lib := newFakeLibrary(drv.log, map[string]fakeLib{"libvulkan.so.1": vulkanLib()})
	l := NewLoaderFromLibraries([]string{"libvulkan.so.1"}, WithLibrary(lib), WithCaller(drv))
	if !l.Valid() {
		t.Fatalf("fake loader invalid: %v", l.Err())
	}
	return l, drv
}

// captureLogs routes the package logger into a buffer for the test duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func assertEvents(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("events:\n got %q\nwant %q", got, want)
	}
}
