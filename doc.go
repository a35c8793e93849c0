// Package vkloader locates the Vulkan driver and resolves its entry points.
//
// # Overview
//
// Vulkan functions are reached through a chain of proc-address calls. A
// [Loader] owns the bootstrap function vkGetInstanceProcAddr and resolves
// library-global symbols. An [InstanceLoader] binds a VkInstance to a
// Loader. A [DeviceLoader] binds a VkDevice and calls vkGetDeviceProcAddr
// directly, skipping the instance chain. Nothing is cached beyond
// vkGetDeviceProcAddr itself; every Sym call asks the driver.
//
// # Finding the driver
//
// There are three ways to build a Loader, and the caller picks one:
//
//	// Probe the platform candidates (libvulkan.so, libvulkan.so.1, ...)
//	lib := vkloader.NewLoader()
//
//	// Use a function obtained elsewhere
//	lib := vkloader.NewLoaderWithProc(myGetInstanceProcAddr)
//
//	// Use a driver another component already loaded and published in
//	// VULKAN_PTR / VK_GET_INSTANCE_PROC_ADDR (the default on Android)
//	lib := vkloader.NewLoaderFromEnv()
//
// Construction never panics and never returns nil. Check [Loader.Valid]
// (or [Loader.Err]) before use.
//
// # Ownership
//
// Two things are owned separately. Each loader node is reference counted:
// the creator holds one reference and every child holds one on its parent,
// so teardown always runs device, then instance, then library. The wrapped
// driver handle is owned only when the node was created by an owning
// variant ([NewInstanceFn], [NewDeviceFn]) with [Owned]:
//
//	inst := vkloader.NewInstanceFn(lib, vkloader.Owned, instance)
//	dev, err := vkloader.NewDeviceFn(inst.InstanceLoader, vkloader.Borrowed, device)
//	...
//	dev.Close()  // device left alone, it is borrowed
//	inst.Close() // vkDestroyInstance, then the Loader reference is dropped
//	lib.Close()  // library unloaded if this Loader loaded it
//
// # Logging
//
// vkloader logs through [log/slog]; see [SetLogger]. It is silent by default.
package vkloader
