package vkloader

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// NewLoaderFromLibraries creates a Loader by probing names in order. The
// first library that loads and exports vkGetInstanceProcAddr is kept and
// owned by the Loader; libraries lacking the symbol are unloaded again.
//
// If no candidate works the Loader is not Valid and Err wraps
// ErrLibraryNotFound.
func NewLoaderFromLibraries(names []string, opts ...Option) *Loader {
	o := buildOptions(opts)
	return newProbeLoader(&o, names)
}

// LibraryNames returns this platform's candidate libraries in probing
// order. The returned slice is a copy.
func LibraryNames() []string {
	return libraryNames()
}

func newProbeLoader(o *loaderOptions, names []string) *Loader {
	l := newLoader(o)
	log := Logger()

	for _, name := range names {
		m, err := o.library.Load(name)
		if err != nil || m == 0 {
			log.Warn("vulkan: failed to load library", "library", name, "err", err)
			continue
		}

		proc := o.library.Symbol(m, bootstrapSymbol)
		if proc.IsNil() {
			log.Warn("vulkan: "+bootstrapSymbol+" not found", "library", name)
			if err := o.library.Free(m); err != nil {
				log.Warn("vulkan: failed to unload library", "library", name, "err", err)
			}
			continue
		}

		log.Info("vulkan: found "+bootstrapSymbol,
			"library", name,
			"addr", proc,
			"backend", gputypes.BackendVulkan)
		l.module = m
		l.owned = true
		l.name = name
		l.setProcAddr(proc)
		return l
	}

	log.Error("vulkan: "+bootstrapSymbol+" not found", "candidates", names)
	l.err = fmt.Errorf("%w in [%s]", ErrLibraryNotFound, strings.Join(names, ", "))
	return l
}
