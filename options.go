package vkloader

import "os"

// Default forced-override environment variable names.
const (
	// EnvLibraryHandle carries the driver library handle as hex text.
	EnvLibraryHandle = "VULKAN_PTR"
	// EnvGetInstanceProcAddr carries the vkGetInstanceProcAddr address as hex text.
	EnvGetInstanceProcAddr = "VK_GET_INSTANCE_PROC_ADDR"
)

// Option configures a Loader during creation.
//
// Example:
//
//	// Probe a custom list of libraries
//	l := vkloader.NewLoader(vkloader.WithLibraryNames("libvulkan_custom.so"))
//
//	// Read the driver from differently named variables
//	l := vkloader.NewLoaderFromEnv(vkloader.WithEnvNames("MY_VK_LIB", "MY_VK_GIPA"))
type Option func(*loaderOptions)

// loaderOptions holds optional configuration for Loader creation.
type loaderOptions struct {
	library   Library
	caller    Caller
	names     []string
	handleEnv string
	procEnv   string
	lookupEnv func(string) (string, bool)
}

// defaultOptions returns the default loader options.
func defaultOptions() loaderOptions {
	return loaderOptions{
		library:   systemLibrary{},
		caller:    ffiCaller{},
		names:     libraryNames(),
		handleEnv: EnvLibraryHandle,
		procEnv:   EnvGetInstanceProcAddr,
		lookupEnv: os.LookupEnv,
	}
}

func buildOptions(opts []Option) loaderOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLibrary sets the dynamic library backend used for probing.
// The default uses the operating system loader.
func WithLibrary(lib Library) Option {
	return func(o *loaderOptions) {
		if lib != nil {
			o.library = lib
		}
	}
}

// WithCaller sets how raw driver function addresses are invoked.
// The default calls through goffi.
func WithCaller(c Caller) Option {
	return func(o *loaderOptions) {
		if c != nil {
			o.caller = c
		}
	}
}

// WithLibraryNames replaces the platform candidate list used by NewLoader.
// Candidates are tried in the given order.
func WithLibraryNames(names ...string) Option {
	return func(o *loaderOptions) {
		o.names = append([]string(nil), names...)
	}
}

// WithEnvNames replaces the forced-override environment variable names.
func WithEnvNames(handleVar, procVar string) Option {
	return func(o *loaderOptions) {
		o.handleEnv = handleVar
		o.procEnv = procVar
	}
}

// WithLookupEnv replaces os.LookupEnv for the forced-override path.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *loaderOptions) {
		if lookup != nil {
			o.lookupEnv = lookup
		}
	}
}
