package libpng

import (
	"errors"
	"fmt"
	"strings"
)

// LoadFlags configures Load and LoadFromPath.
type LoadFlags uint

const (
	// FlagsUnsafe disables all validators.
	FlagsUnsafe LoadFlags = 0
	// FlagVersionCheck rejects a libpng whose MAJOR.MINOR differs from HeaderVersion.
	FlagVersionCheck LoadFlags = 1 << 0
	// FlagFunctionCheck rejects a libpng missing any required function.
	FlagFunctionCheck LoadFlags = 1 << 1
	// FlagPrintErrors writes diagnostics to the loader's error output.
	FlagPrintErrors LoadFlags = 1 << 2

	// FlagsDefault enables both validators.
	FlagsDefault = FlagVersionCheck | FlagFunctionCheck
)

// Has reports whether every bit of mask is set in f.
func (f LoadFlags) Has(mask LoadFlags) bool {
	return f&mask == mask
}

func (f LoadFlags) String() string {
	if f == FlagsUnsafe {
		return "Unsafe"
	}
	var parts []string
	if f.Has(FlagVersionCheck) {
		parts = append(parts, "VersionCheck")
	}
	if f.Has(FlagFunctionCheck) {
		parts = append(parts, "FunctionCheck")
	}
	if f.Has(FlagPrintErrors) {
		parts = append(parts, "PrintErrors")
	}
	if rest := f &^ (FlagVersionCheck | FlagFunctionCheck | FlagPrintErrors); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint(rest)))
	}
	return strings.Join(parts, "|")
}

// LoadError is the result of a load attempt. Exactly one value is returned
// per attempt. The numeric values are stable.
type LoadError uint

const (
	Success                LoadError = 0
	ErrLibraryNotFound     LoadError = 1  // libpng was not found
	ErrInvalidBinaryFormat LoadError = 2  // libpng was not built for this platform
	ErrOtherLoadFailure    LoadError = 3  // the dynamic linker failed for another reason
	ErrDependencyNotFound  LoadError = 4  // libpng was found but one of its dependencies (zlib) was not
	ErrFunctionNotFound    LoadError = 32 // a required function could not be resolved
	ErrVersionMismatch     LoadError = 33 // libpng has an unexpected MAJOR.MINOR
	ErrAlreadyLoaded       LoadError = 34 // a library is loaded already
	ErrNullPath            LoadError = 35 // no library path was given
)

var loadErrorNames = map[LoadError]string{
	Success:                "success",
	ErrLibraryNotFound:     "libpng not found",
	ErrInvalidBinaryFormat: "invalid binary format",
	ErrOtherLoadFailure:    "failed to load libpng",
	ErrDependencyNotFound:  "libpng dependency not found",
	ErrFunctionNotFound:    "function not found",
	ErrVersionMismatch:     "libpng version mismatch",
	ErrAlreadyLoaded:       "libpng is loaded already",
	ErrNullPath:            "library path is empty",
}

func (e LoadError) String() string {
	if name, ok := loadErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("LoadError(%d)", uint(e))
}

func (e LoadError) Error() string {
	return "libpng: " + e.String()
}

// Err returns nil for Success and e otherwise, so results can flow into
// ordinary error handling.
func (e LoadError) Err() error {
	if e == Success {
		return nil
	}
	return e
}

// ErrNotLoaded is returned by Bind when no library is loaded.
var ErrNotLoaded = errors.New("libpng: library is not loaded")

// SymbolError reports a function that could not be bound.
type SymbolError struct {
	Name string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("libpng: symbol %q is not resolved", e.Name)
}

// Is makes a SymbolError match ErrFunctionNotFound.
func (e *SymbolError) Is(target error) bool {
	return target == ErrFunctionNotFound
}
