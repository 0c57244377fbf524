package libpng

import (
	"io"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the process-wide loader used by the package-level functions.
func Default() *Loader {
	defaultOnce.Do(func() {
		defaultLoader = newLoader(defaultConfig())
	})
	return defaultLoader
}

// Load loads libpng into the default loader using the platform search order.
func Load(flags LoadFlags) LoadError {
	return Default().Load(flags)
}

// LoadFromPath loads libpng from path into the default loader.
func LoadFromPath(path string, flags LoadFlags) LoadError {
	return Default().LoadFromPath(path, flags)
}

// Unload releases the default loader's library.
func Unload() {
	Default().Unload()
}

// IsLoaded reports whether the default loader holds a library.
func IsLoaded() bool {
	return Default().IsLoaded()
}

// ObservedVersion returns the version reported by the default loader's libpng.
func ObservedVersion() string {
	return Default().ObservedVersion()
}

// ExpectedVersion returns HeaderVersion.
func ExpectedVersion() string {
	return HeaderVersion
}

// PrintMissingFunctions writes the default loader's unresolved functions to w.
func PrintMissingFunctions(w io.Writer, includeOptional bool) {
	Default().PrintMissingFunctions(w, includeOptional)
}

// Proc returns a resolved function address from the default loader.
func Proc(name string) uintptr {
	return Default().Proc(name)
}

// Bind binds fptr to a function resolved by the default loader.
func Bind(fptr any, name string) error {
	return Default().Bind(fptr, name)
}
