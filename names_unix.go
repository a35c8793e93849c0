//go:build !windows && !darwin

package vkloader

// libraryNames lists the Vulkan loader candidates in probing order.
// The unversioned name picks up a development or shim loader first; the
// versioned system loader is the last resort.
func libraryNames() []string {
	return []string{
		"libvulkan.so",
		"libvulkan.so.1",
	}
}
