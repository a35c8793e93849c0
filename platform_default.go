//go:build !android

package vkloader

// forcedOverride selects the environment path in NewLoader.
const forcedOverride = false
