//go:build !windows

package libpng

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

type dlPlatform struct{}

func defaultPlatform() Platform {
	return dlPlatform{}
}

func (dlPlatform) Open(name string) (Library, error) {
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		msg := err.Error()
		return nil, &OpenError{
			Name:    name,
			Class:   classifyDlerror(name, msg),
			Message: msg,
			Err:     errors.WithMessage(err, "dlopen"),
		}
	}
	if handle == 0 {
		return nil, &OpenError{
			Name:    name,
			Class:   ClassOther,
			Message: "dlopen returned a null handle",
			Err:     errors.Errorf("dlopen %s: null handle", name),
		}
	}
	return &dlLibrary{handle: handle}, nil
}

type dlLibrary struct {
	handle uintptr
}

func (l *dlLibrary) Symbol(name string) uintptr {
	sym, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0
	}
	return sym
}

func (l *dlLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return errors.Wrap(err, "dlclose")
}
