package main

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/vkloader"
)

// newSources registers one factory per Loader construction path. The
// caller picks exactly one by name; there is no fallback between them.
func newSources(candidates []string) *gpucontext.Registry[*vkloader.Loader] {
	r := gpucontext.NewRegistry[*vkloader.Loader]()
	r.Register("default", func() *vkloader.Loader {
		if len(candidates) > 0 {
			return vkloader.NewLoader(vkloader.WithLibraryNames(candidates...))
		}
		return vkloader.NewLoader()
	})
	r.Register("probe", func() *vkloader.Loader {
		if len(candidates) > 0 {
			return vkloader.NewLoaderFromLibraries(candidates)
		}
		return vkloader.NewLoaderFromLibraries(vkloader.LibraryNames())
	})
	r.Register("env", func() *vkloader.Loader {
		return vkloader.NewLoaderFromEnv()
	})
	return r
}
