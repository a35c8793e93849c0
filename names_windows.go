//go:build windows

package vkloader

// libraryNames lists the Vulkan loader candidates in probing order.
// winevulkan.dll comes first so that a Wine host prefers its own thunk.
func libraryNames() []string {
	return []string{
		"winevulkan.dll",
		"vulkan-1.dll",
	}
}
