// Command vkprobe reports which Vulkan driver vkloader selects on this host.
//
// Usage:
//
//	vkprobe [-source default|probe|env] [-libs a.so,b.so] [-v]
//
// With -source env the driver is taken from VULKAN_PTR and
// VK_GET_INSTANCE_PROC_ADDR only; there is no fallback to probing.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/gogpu/vkloader"
)

func main() {
	var (
		source  = flag.String("source", "default", "construction path: "+strings.Join(sourceNames(), ", "))
		libs    = flag.String("libs", "", "comma-separated candidate libraries for -source probe")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vkloader.SetLogger(logger)

	var candidates []string
	if *libs != "" {
		candidates = strings.Split(*libs, ",")
	}
	if err := run(os.Stdout, *source, candidates); err != nil {
		logger.Error("vkprobe failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, source string, candidates []string) (err error) {
	sources := newSources(candidates)
	if !sources.Has(source) {
		return fmt.Errorf("unknown source %q (want one of %s)", source, strings.Join(sourceNames(), ", "))
	}

	lib := sources.Get(source)
	defer func() {
		if cerr := lib.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if !lib.Valid() {
		return fmt.Errorf("no usable Vulkan driver: %w", lib.Err())
	}

	fmt.Fprintf(w, "backend:  %s\n", lib.Backend())
	fmt.Fprintf(w, "source:   %s\n", source)
	if name := lib.LibraryName(); name != "" {
		fmt.Fprintf(w, "library:  %s (%s, owned=%v)\n", name, lib.Module(), lib.Owned())
	} else {
		fmt.Fprintf(w, "library:  %s (owned=%v)\n", lib.Module(), lib.Owned())
	}
	fmt.Fprintf(w, "gipa:     %s\n", lib.ProcAddr())

	version, err := instanceVersion(lib)
	if err != nil {
		return fmt.Errorf("vkEnumerateInstanceVersion: %w", err)
	}
	fmt.Fprintf(w, "version:  %s\n", version)

	for _, name := range globalEntryPoints {
		fmt.Fprintf(w, "%-40s %s\n", name, lib.GlobalSym(name))
	}
	return nil
}

// globalEntryPoints are the symbols resolvable without an instance.
var globalEntryPoints = []string{
	"vkCreateInstance",
	"vkEnumerateInstanceExtensionProperties",
	"vkEnumerateInstanceLayerProperties",
	"vkEnumerateInstanceVersion",
}

func sourceNames() []string {
	names := newSources(nil).Available()
	slices.Sort(names)
	return names
}
