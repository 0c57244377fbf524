package libpng

import "strings"

// Function describes one libpng export the loader resolves.
type Function struct {
	// Name is the exported symbol name.
	Name string
	// Signature is the C function pointer type, for documentation and reports.
	Signature string
	// Optional functions may be absent without failing FlagFunctionCheck.
	Optional bool
}

// Manifest is the ordered set of functions resolved on every load.
type Manifest []Function

// versionFunction is resolved on every load regardless of flags.
const versionFunction = "png_get_libpng_ver"

// optionalKeywords mark chunk APIs added during the 1.6 series; a 1.6.x
// build older than the header may lack them.
var optionalKeywords = []string{
	"eXIf", // 1.6.31
	"cICP", // 1.6.45
	"mDCV", // 1.6.46
	"cLLI", // 1.6.46
}

// optionalFunctions are not part of common libpng builds.
var optionalFunctions = map[string]bool{
	"png_err":                     true,
	"png_set_strip_error_numbers": true,
}

// isOptional reports whether a symbol may be missing from a compatible libpng.
func isOptional(name string) bool {
	if optionalFunctions[name] {
		return true
	}
	for _, kw := range optionalKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// export builds a manifest entry, deriving Optional from the symbol name.
func export(name, signature string) Function {
	return Function{Name: name, Signature: signature, Optional: isOptional(name)}
}

// DefaultManifest returns a copy of the libpng manifest.
func DefaultManifest() Manifest {
	m := make(Manifest, len(libpngFunctions))
	copy(m, libpngFunctions)
	return m
}

// Index returns the position of name in m, or -1.
func (m Manifest) Index(name string) int {
	for i, fn := range m {
		if fn.Name == name {
			return i
		}
	}
	return -1
}

// Required returns the names of all non-optional entries.
func (m Manifest) Required() []string {
	names := make([]string, 0, len(m))
	for _, fn := range m {
		if !fn.Optional {
			names = append(names, fn.Name)
		}
	}
	return names
}
