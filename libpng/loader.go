package libpng

import (
	"io"
	"strings"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// Loader owns one dynamically loaded libpng and its resolved function table.
//
// Load, LoadFromPath and Unload are serialized: concurrent Load calls yield
// one Success and ErrAlreadyLoaded for the rest. Read-only methods may run
// concurrently with each other and never observe a half-populated table.
type Loader struct {
	mu sync.RWMutex

	platform Platform
	search   []string
	manifest Manifest
	index    map[string]int
	errOut   io.Writer
	log      *logrus.Logger

	// callVersion invokes the resolved png_get_libpng_ver.
	callVersion func(fn uintptr) string

	lib      Library // nil iff not loaded
	name     string
	flags    LoadFlags
	procs    []uintptr // aligned with manifest, 0 when unresolved
	observed versionBuffer
}

// New creates a Loader with nothing loaded.
func New(opts ...Option) (*Loader, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return newLoader(cfg), nil
}

func newLoader(cfg config) *Loader {
	index := make(map[string]int, len(cfg.manifest))
	for i, fn := range cfg.manifest {
		index[fn.Name] = i
	}

	logger := cfg.logger
	if logger == nil {
		logger = newDiagnosticsLogger(cfg.errOut)
	}

	return &Loader{
		platform:    cfg.platform,
		search:      cfg.searchPaths,
		manifest:    cfg.manifest,
		index:       index,
		errOut:      cfg.errOut,
		log:         logger,
		callVersion: callVersion,
		procs:       make([]uintptr, len(cfg.manifest)),
	}
}

// Load finds libpng using the platform search order and loads it.
func (l *Loader) Load(flags LoadFlags) LoadError {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(l.search, flags)
}

// LoadFromPath loads libpng from path (e.g. /usr/lib/libpng16.so).
// An empty path returns ErrNullPath without touching the loader.
func (l *Loader) LoadFromPath(path string, flags LoadFlags) LoadError {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrNullPath
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load([]string{path}, flags)
}

func (l *Loader) load(candidates []string, flags LoadFlags) LoadError {
	diag := l.diagnostics(flags)

	if l.lib != nil {
		diag.WithField("library", l.name).Error("libpng is loaded already")
		return ErrAlreadyLoaded
	}

	lib, name, openErr := openFirst(l.platform, candidates, func(e *OpenError) {
		diag.WithFields(logrus.Fields{
			"library": e.Name,
			"reason":  e.Class.String(),
		}).Error(e.Message)
	})
	if openErr != nil {
		return openErr.Class.LoadError()
	}
	if lib == nil {
		return ErrLibraryNotFound
	}

	l.lib, l.name = lib, name
	for i, fn := range l.manifest {
		l.procs[i] = lib.Symbol(fn.Name)
	}
	diag = diag.WithField("library", name)

	getVersion := l.procs[l.index[versionFunction]]
	if getVersion == 0 {
		diag.Errorf("%s is missing", versionFunction)
		l.release(diag)
		return ErrFunctionNotFound
	}

	observed := l.callVersion(getVersion)
	l.observed.set(observed)

	if flags.Has(FlagVersionCheck) && !CompatibleVersion(observed, HeaderVersion) {
		diag.WithFields(logrus.Fields{
			"observed": observed,
			"expected": HeaderVersion,
		}).Errorf("libpng %s is not supported, it should be %s", observed, versionSeries(HeaderVersion))
		l.release(diag)
		return ErrVersionMismatch
	}

	if flags.Has(FlagFunctionCheck) && l.countMissing(false) > 0 {
		if flags.Has(FlagPrintErrors) {
			diag.WithField("missing", l.countMissing(false)).Error("required functions are missing")
			l.writeMissing(l.errOut, false)
		}
		l.release(diag)
		return ErrFunctionNotFound
	}

	l.flags = flags
	return Success
}

// release clears the function table and closes the library.
func (l *Loader) release(diag *logrus.Entry) {
	for i := range l.procs {
		l.procs[i] = 0
	}
	if l.lib != nil {
		if err := l.lib.Close(); err != nil {
			diag.WithField("library", l.name).WithError(err).Warn("failed to close libpng")
		}
	}
	l.lib = nil
	l.name = ""
	l.flags = 0
}

// Unload clears every resolved function and closes the library. It is safe
// to call when nothing is loaded. The observed version remains available.
func (l *Loader) Unload() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.release(l.diagnostics(l.flags))
}

// IsLoaded reports whether a library is currently loaded.
func (l *Loader) IsLoaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lib != nil
}

// LibraryName returns the name or path the current library was opened by.
func (l *Loader) LibraryName() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.name
}

// ObservedVersion returns the version of the loaded libpng. After a failed
// or unloaded library it returns the last version seen, and "0.0.0" if no
// version was ever read.
func (l *Loader) ObservedVersion() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.observedVersion()
}

func (l *Loader) observedVersion() string {
	if fn := l.procs[l.index[versionFunction]]; fn != 0 {
		return l.callVersion(fn)
	}
	if v := l.observed.String(); v != "" {
		return v
	}
	return unknownVersion
}

// ExpectedVersion returns HeaderVersion.
func (l *Loader) ExpectedVersion() string {
	return HeaderVersion
}

// Manifest returns a copy of the functions this loader resolves.
func (l *Loader) Manifest() Manifest {
	return append(Manifest(nil), l.manifest...)
}

// MissingFunctions returns the unresolved required functions, followed by
// the unresolved optional ones when includeOptional is set.
func (l *Loader) MissingFunctions(includeOptional bool) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var missing []string
	for _, want := range []bool{false, true} {
		if want && !includeOptional {
			break
		}
		for i, fn := range l.manifest {
			if fn.Optional == want && l.procs[i] == 0 {
				missing = append(missing, fn.Name)
			}
		}
	}
	return missing
}

// PrintMissingFunctions writes the unresolved functions to w, one per line.
// Optional functions are listed only when includeOptional is set.
func (l *Loader) PrintMissingFunctions(w io.Writer, includeOptional bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.writeMissing(w, includeOptional)
}

func (l *Loader) countMissing(includeOptional bool) int {
	n := 0
	for i, fn := range l.manifest {
		if l.procs[i] == 0 && (!fn.Optional || includeOptional) {
			n++
		}
	}
	return n
}

// Proc returns the resolved address of a manifest function, or 0.
func (l *Loader) Proc(name string) uintptr {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[name]
	if !ok {
		return 0
	}
	return l.procs[i]
}

// Bind points fptr, a pointer to a Go func variable, at a resolved libpng
// function. The bound function must not be called after Unload.
// Bind panics if fptr is not a pointer to a func.
func (l *Loader) Bind(fptr any, name string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.lib == nil {
		return ErrNotLoaded
	}
	i, ok := l.index[name]
	if !ok || l.procs[i] == 0 {
		return &SymbolError{Name: name}
	}
	purego.RegisterFunc(fptr, l.procs[i])
	return nil
}
