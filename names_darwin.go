//go:build darwin

package vkloader

// libraryNames lists the Vulkan loader candidates in probing order.
// MoltenVK is tried directly when no loader is installed.
func libraryNames() []string {
	return []string{
		"libvulkan.dylib",
		"libvulkan.1.dylib",
		"libMoltenVK.dylib",
	}
}
