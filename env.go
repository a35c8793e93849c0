package vkloader

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NewLoaderFromEnv creates a Loader from a driver that was already loaded
// by another component of this process and published through two
// environment variables (EnvLibraryHandle and EnvGetInstanceProcAddr by
// default, see WithEnvNames). Both hold hexadecimal addresses, with or
// without a 0x prefix.
//
// The library handle is recorded but not owned: Close never unloads it.
// There is no fallback to probing. If either variable is missing, not hex,
// or zero, the Loader is not Valid and Err wraps ErrEnvNotSet or
// ErrEnvInvalid.
func NewLoaderFromEnv(opts ...Option) *Loader {
	o := buildOptions(opts)
	return newEnvLoader(&o)
}

func newEnvLoader(o *loaderOptions) *Loader {
	l := newLoader(o)
	log := Logger()

	handleText, handleSet := o.lookupEnv(o.handleEnv)
	procText, procSet := o.lookupEnv(o.procEnv)
	log.Info("vulkan: forced driver override",
		o.handleEnv, envDisplay(handleText, handleSet),
		o.procEnv, envDisplay(procText, procSet))

	if !handleSet || !procSet {
		log.Error("vulkan: driver environment variables not set",
			"handle_var", o.handleEnv, "proc_var", o.procEnv)
		l.err = fmt.Errorf("%w: %s and %s are required", ErrEnvNotSet, o.handleEnv, o.procEnv)
		return l
	}

	handleAddr, err := parseHexAddr(handleText)
	if err != nil {
		log.Error("vulkan: cannot parse driver handle", "var", o.handleEnv, "err", err)
		l.err = fmt.Errorf("%w: %s: %w", ErrEnvInvalid, o.handleEnv, err)
		return l
	}
	procAddr, err := parseHexAddr(procText)
	if err != nil {
		log.Error("vulkan: cannot parse driver proc address", "var", o.procEnv, "err", err)
		l.err = fmt.Errorf("%w: %s: %w", ErrEnvInvalid, o.procEnv, err)
		return l
	}
	log.Info("vulkan: parsed driver override",
		"handle", fmt.Sprintf("%#x", handleAddr),
		"proc", fmt.Sprintf("%#x", procAddr))

	module, proc, err := reconstructFromEnv(handleAddr, procAddr)
	if err != nil {
		log.Error("vulkan: unusable driver override", "err", err)
		l.err = fmt.Errorf("%w: %w", ErrEnvInvalid, err)
		return l
	}

	l.module = module
	l.setProcAddr(proc)
	log.Info("vulkan: using driver from environment", "module", module, "addr", proc)
	return l
}

func envDisplay(v string, ok bool) string {
	if !ok {
		return "(unset)"
	}
	return v
}

// parseHexAddr parses a 64-bit hexadecimal address with an optional 0x or
// 0X prefix.
func parseHexAddr(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" {
		return 0, errors.New("empty value")
	}
	return strconv.ParseUint(s, 16, 64)
}

// reconstructFromEnv turns two integers published by an out-of-process
// launcher into a library handle and a function address.
//
// This is the only place where integers become live addresses. The values
// must have been produced by a trusted loader in this same address space,
// and the library must stay loaded for the life of the process. Nothing
// here can verify either condition.
func reconstructFromEnv(handle, proc uint64) (Module, Proc, error) {
	if handle == 0 || proc == 0 {
		return 0, 0, errors.New("driver handle and proc address must be non-zero")
	}
	if handle > math.MaxUint || proc > math.MaxUint {
		return 0, 0, errors.New("address does not fit this platform")
	}
	return Module(uintptr(handle)), Proc(uintptr(proc)), nil
}
