//go:build windows

package libpng

import (
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type winPlatform struct{}

func defaultPlatform() Platform {
	return winPlatform{}
}

func (winPlatform) Open(name string) (Library, error) {
	handle, err := windows.LoadLibrary(name)
	if err == nil && handle != 0 {
		return &winLibrary{handle: handle}, nil
	}
	if err == nil {
		err = errors.Errorf("LoadLibrary %s: null handle", name)
	}

	var errno syscall.Errno
	errors.As(err, &errno)
	return nil, &OpenError{
		Name:    name,
		Class:   classifyLoadLibrary(errno, func() bool { return imageExists(name) }),
		Message: err.Error(),
		Err:     errors.WithMessage(err, "LoadLibrary"),
	}
}

// classifyLoadLibrary maps a LoadLibrary error code to an OpenClass.
// ERROR_MOD_NOT_FOUND is reported both for a missing DLL and for a DLL whose
// imports cannot be found, so exists re-probes the image itself.
func classifyLoadLibrary(errno syscall.Errno, exists func() bool) OpenClass {
	switch errno {
	case windows.ERROR_MOD_NOT_FOUND:
		if exists() {
			return ClassDependencyMissing
		}
		return ClassNotFound
	case windows.ERROR_BAD_EXE_FORMAT:
		return ClassInvalidFormat
	default:
		return ClassOther
	}
}

// imageExists maps name as a data file, which succeeds even when the DLL's
// own dependencies are missing.
func imageExists(name string) bool {
	handle, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_AS_DATAFILE)
	if err != nil || handle == 0 {
		return false
	}
	_ = windows.FreeLibrary(handle)
	return true
}

type winLibrary struct {
	handle windows.Handle
}

func (l *winLibrary) Symbol(name string) uintptr {
	proc, err := windows.GetProcAddress(l.handle, name)
	if err != nil {
		return 0
	}
	return proc
}

func (l *winLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := windows.FreeLibrary(l.handle)
	l.handle = 0
	return errors.Wrap(err, "FreeLibrary")
}
