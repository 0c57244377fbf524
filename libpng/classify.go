package libpng

import (
	"path/filepath"
	"strings"
)

// knownDependencies are libraries libpng links against.
var knownDependencies = []string{"libz", "zlib"}

// invalidFormatMarkers appear in dlerror text when the file exists but is not
// a loadable image for this platform.
var invalidFormatMarkers = []string{
	"invalid elf",
	"wrong elf class",
	"file too short",
	"not a mach-o file",
	"incompatible architecture",
	"wrong architecture",
}

// classifyDlerror classifies a dlopen failure from its dlerror text.
//
// This is a heuristic over glibc, musl and dyld message formats. It can only
// tell a missing dependency from a missing library when the message names
// the object that failed; anything unrecognized is ClassOther.
func classifyDlerror(name, msg string) OpenClass {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "library not loaded"):
		// dyld found the image but not one of its load commands.
		return ClassDependencyMissing
	case strings.Contains(lower, "o such file"):
		if namesDependency(name, msg) {
			return ClassDependencyMissing
		}
		return ClassNotFound
	}
	for _, marker := range invalidFormatMarkers {
		if strings.Contains(lower, marker) {
			return ClassInvalidFormat
		}
	}
	return ClassOther
}

// namesDependency reports whether a "no such file" message is about an
// object other than the one requested.
func namesDependency(name, msg string) bool {
	for _, dep := range knownDependencies {
		if strings.Contains(msg, dep) && !strings.Contains(name, dep) {
			return true
		}
	}

	// glibc: "<object>: cannot open shared object file: ..."
	// musl:  "Error loading shared library <object>: ..."
	obj, _, ok := strings.Cut(msg, ": ")
	if !ok || strings.HasPrefix(obj, "dlopen(") {
		return false
	}
	obj = strings.TrimPrefix(obj, "Error loading shared library ")
	return obj != name && filepath.Base(obj) != filepath.Base(name)
}
