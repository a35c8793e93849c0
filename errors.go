package vkloader

import "errors"

// Package errors.
var (
	// ErrLibraryNotFound is recorded when no candidate library exports
	// vkGetInstanceProcAddr.
	ErrLibraryNotFound = errors.New("vkloader: vkGetInstanceProcAddr not found")

	// ErrEnvNotSet is recorded when a forced-override environment variable
	// is missing.
	ErrEnvNotSet = errors.New("vkloader: driver environment variable not set")

	// ErrEnvInvalid is recorded when a forced-override environment variable
	// is not a non-zero hexadecimal address.
	ErrEnvInvalid = errors.New("vkloader: invalid driver address in environment")

	// ErrNoProc is recorded when a Loader is given a nil bootstrap function.
	ErrNoProc = errors.New("vkloader: nil vkGetInstanceProcAddr")

	// ErrNoDeviceProcAddr is returned when vkGetDeviceProcAddr cannot be
	// resolved for a device.
	ErrNoDeviceProcAddr = errors.New("vkloader: vkGetDeviceProcAddr not found")

	// ErrClosed is returned when a wrapper is closed twice or used as a
	// parent after its last reference was released.
	ErrClosed = errors.New("vkloader: already closed")
)
