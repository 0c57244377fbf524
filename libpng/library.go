package libpng

import "fmt"

// Library is an open shared library.
type Library interface {
	// Symbol returns the address of an exported symbol, or 0 when absent.
	Symbol(name string) uintptr
	// Close releases the library.
	Close() error
}

// Platform opens shared libraries. Open failures are returned as *OpenError.
type Platform interface {
	Open(name string) (Library, error)
}

// OpenClass is the classified cause of a failed open.
type OpenClass int

const (
	ClassOther OpenClass = iota
	ClassNotFound
	ClassDependencyMissing
	ClassInvalidFormat
)

func (c OpenClass) String() string {
	switch c {
	case ClassNotFound:
		return "not found"
	case ClassDependencyMissing:
		return "dependency missing"
	case ClassInvalidFormat:
		return "invalid binary format"
	default:
		return "other"
	}
}

// LoadError maps the class to the result reported by Load.
func (c OpenClass) LoadError() LoadError {
	switch c {
	case ClassNotFound:
		return ErrLibraryNotFound
	case ClassDependencyMissing:
		return ErrDependencyNotFound
	case ClassInvalidFormat:
		return ErrInvalidBinaryFormat
	default:
		return ErrOtherLoadFailure
	}
}

// OpenError describes a library that could not be opened.
//
// Class is derived from the platform's diagnostic and is best-effort: the
// dynamic linker does not report a structured reason on every platform.
type OpenError struct {
	Name    string
	Class   OpenClass
	Message string
	Err     error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s (%s): %s", e.Name, e.Class, e.Message)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
