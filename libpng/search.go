package libpng

import (
	"errors"
	"fmt"
)

// baseName is the libpng 1.6 library name without extension.
const baseName = "libpng16"

// searchCandidates returns the default library name for goos followed by
// the locations tried when it is not found.
func searchCandidates(goos string) (string, []string) {
	switch goos {
	case "windows":
		return baseName + ".dll", nil
	case "darwin", "ios":
		// dyld does not search the Homebrew prefixes by default.
		return baseName + ".dylib", []string{
			"/usr/local/lib/" + baseName + ".dylib",
			"/opt/homebrew/lib/" + baseName + ".dylib",
		}
	default:
		return baseName + ".so", []string{
			"libpng.so",
			// Runtime soname, present without the -dev package.
			baseName + ".so.16",
		}
	}
}

// openFirst opens the first candidate that loads and returns it with the
// name it was opened by. A candidate that is not found moves the search on;
// any other failure is definitive.
func openFirst(p Platform, candidates []string, onError func(*OpenError)) (Library, string, *OpenError) {
	var last *OpenError
	for _, name := range candidates {
		lib, err := p.Open(name)
		if err == nil && lib != nil {
			return lib, name, nil
		}
		if err == nil {
			err = fmt.Errorf("platform returned no library for %s", name)
		}
		last = asOpenError(name, err)
		if onError != nil {
			onError(last)
		}
		if last.Class != ClassNotFound {
			break
		}
	}
	return nil, "", last
}

// asOpenError normalizes errors from Platform implementations that do not
// return *OpenError.
func asOpenError(name string, err error) *OpenError {
	var oe *OpenError
	if errors.As(err, &oe) {
		return oe
	}
	return &OpenError{Name: name, Class: ClassOther, Message: err.Error(), Err: err}
}
