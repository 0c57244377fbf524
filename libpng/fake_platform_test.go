package libpng

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeLibrary stands in for a shared library. Symbol addresses are opaque
// tokens; png_get_libpng_ver is answered by fakePlatform.callVersion.
type fakeLibrary struct {
	version string
	symbols map[string]uintptr
	closed  bool
}

func (l *fakeLibrary) Symbol(name string) uintptr {
	return l.symbols[name]
}

func (l *fakeLibrary) Close() error {
	l.closed = true
	return nil
}

type fakePlatform struct {
	mu        sync.Mutex
	factories map[string]func() *fakeLibrary
	failures  map[string]OpenClass
	opened    []string
	libs      []*fakeLibrary
	versions  map[uintptr]string
	next      uintptr
	delay     time.Duration
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		factories: make(map[string]func() *fakeLibrary),
		failures:  make(map[string]OpenClass),
		versions:  make(map[uintptr]string),
		next:      0x10000,
	}
}

// addLibrary registers name as a library exporting symbols, reporting version.
func (p *fakePlatform) addLibrary(name, version string, symbols ...string) {
	p.factories[name] = func() *fakeLibrary {
		lib := &fakeLibrary{version: version, symbols: make(map[string]uintptr)}
		for _, sym := range symbols {
			p.next += 0x10
			lib.symbols[sym] = p.next
			if sym == versionFunction {
				p.versions[p.next] = version
			}
		}
		return lib
	}
}

// addFullLibrary registers a library exporting every default manifest entry.
func (p *fakePlatform) addFullLibrary(name, version string) {
	p.addLibrary(name, version, allFunctionNames()...)
}

// addDummyLibrary mirrors a library that only exports png_get_libpng_ver.
func (p *fakePlatform) addDummyLibrary(name, version string) {
	p.addLibrary(name, version, versionFunction)
}

func (p *fakePlatform) fail(name string, class OpenClass) {
	p.failures[name] = class
}

func (p *fakePlatform) Open(name string) (Library, error) {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opened = append(p.opened, name)

	if class, ok := p.failures[name]; ok {
		return nil, &OpenError{Name: name, Class: class, Message: name + ": " + class.String()}
	}
	build, ok := p.factories[name]
	if !ok {
		return nil, &OpenError{Name: name, Class: ClassNotFound, Message: name + ": No such file or directory"}
	}
	lib := build()
	p.libs = append(p.libs, lib)
	return lib, nil
}

func (p *fakePlatform) callVersion(fn uintptr) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.versions[fn]
}

func (p *fakePlatform) openCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.opened)
}

func (p *fakePlatform) openedNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.opened...)
}

// openLibraries counts libraries that were opened and not closed.
func (p *fakePlatform) openLibraries() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, lib := range p.libs {
		if !lib.closed {
			n++
		}
	}
	return n
}

func allFunctionNames() []string {
	names := make([]string, 0, len(libpngFunctions))
	for _, fn := range libpngFunctions {
		names = append(names, fn.Name)
	}
	return names
}

// newTestLoader builds a Loader over p whose diagnostics go to the returned buffer.
func newTestLoader(t *testing.T, p *fakePlatform, opts ...Option) (*Loader, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]Option{WithPlatform(p), WithErrorOutput(&out), WithSearchPaths("libpng16.so", "libpng.so")}, opts...)
	l, err := New(opts...)
	require.NoError(t, err)
	l.callVersion = p.callVersion
	return l, &out
}

// requireEmptyTable asserts the unloaded-state invariant.
func requireEmptyTable(t *testing.T, l *Loader) {
	t.Helper()
	require.False(t, l.IsLoaded())
	for _, fn := range l.Manifest() {
		require.Zerof(t, l.Proc(fn.Name), "%s should be unresolved", fn.Name)
	}
}
