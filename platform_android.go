//go:build android

package vkloader

// forcedOverride selects the environment path in NewLoader. On Android the
// system loader always resolves to the vendor driver, so the driver is
// handed over by a launcher through the environment instead.
const forcedOverride = true
