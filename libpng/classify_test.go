package libpng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDlerror(t *testing.T) {
	tests := []struct {
		name    string
		library string
		msg     string
		want    OpenClass
	}{
		{
			name:    "glibc library missing",
			library: "libpng16.so",
			msg:     "libpng16.so: cannot open shared object file: No such file or directory",
			want:    ClassNotFound,
		},
		{
			name:    "glibc absolute path missing",
			library: "/opt/png/lib/libpng16.so",
			msg:     "/opt/png/lib/libpng16.so: cannot open shared object file: No such file or directory",
			want:    ClassNotFound,
		},
		{
			name:    "glibc zlib missing",
			library: "/opt/png/lib/libpng16.so",
			msg:     "libz.so.1: cannot open shared object file: No such file or directory",
			want:    ClassDependencyMissing,
		},
		{
			name:    "glibc other dependency missing",
			library: "libpng16.so",
			msg:     "libm.so.6: cannot open shared object file: No such file or directory",
			want:    ClassDependencyMissing,
		},
		{
			name:    "musl library missing",
			library: "libpng16.so",
			msg:     "Error loading shared library libpng16.so: No such file or directory",
			want:    ClassNotFound,
		},
		{
			name:    "musl dependency missing",
			library: "/usr/lib/libpng16.so",
			msg:     "Error loading shared library libz.so.1: No such file or directory (needed by /usr/lib/libpng16.so)",
			want:    ClassDependencyMissing,
		},
		{
			name:    "dyld library missing",
			library: "/usr/local/lib/libpng16.dylib",
			msg:     "dlopen(/usr/local/lib/libpng16.dylib, 0x0002): tried: '/usr/local/lib/libpng16.dylib' (no such file)",
			want:    ClassNotFound,
		},
		{
			name:    "dyld dependency missing",
			library: "/usr/local/lib/libpng16.dylib",
			msg:     "dlopen(/usr/local/lib/libpng16.dylib, 0x0002): Library not loaded: /usr/local/opt/zlib/lib/libz.1.dylib",
			want:    ClassDependencyMissing,
		},
		{
			name:    "glibc invalid elf",
			library: "./garbage.so",
			msg:     "./garbage.so: invalid ELF header",
			want:    ClassInvalidFormat,
		},
		{
			name:    "glibc wrong class",
			library: "./libpng32.so",
			msg:     "./libpng32.so: wrong ELF class: ELFCLASS32",
			want:    ClassInvalidFormat,
		},
		{
			name:    "glibc truncated",
			library: "./empty.so",
			msg:     "./empty.so: file too short",
			want:    ClassInvalidFormat,
		},
		{
			name:    "dyld wrong architecture",
			library: "/tmp/libpng16.dylib",
			msg:     "dlopen(/tmp/libpng16.dylib, 0x0002): tried: '/tmp/libpng16.dylib' (mach-o file, but is an incompatible architecture (have 'x86_64', need 'arm64'))",
			want:    ClassInvalidFormat,
		},
		{
			name:    "dyld not mach-o",
			library: "/tmp/libpng16.dylib",
			msg:     "dlopen(/tmp/libpng16.dylib, 0x0002): tried: '/tmp/libpng16.dylib' (not a mach-o file)",
			want:    ClassInvalidFormat,
		},
		{
			name:    "unresolved symbol",
			library: "libpng16.so",
			msg:     "libpng16.so: undefined symbol: inflateValidate",
			want:    ClassOther,
		},
		{
			name:    "empty message",
			library: "libpng16.so",
			msg:     "",
			want:    ClassOther,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyDlerror(tc.library, tc.msg))
		})
	}
}

func TestOpenClassLoadError(t *testing.T) {
	assert.Equal(t, ErrLibraryNotFound, ClassNotFound.LoadError())
	assert.Equal(t, ErrDependencyNotFound, ClassDependencyMissing.LoadError())
	assert.Equal(t, ErrInvalidBinaryFormat, ClassInvalidFormat.LoadError())
	assert.Equal(t, ErrOtherLoadFailure, ClassOther.LoadError())
	assert.Equal(t, ErrOtherLoadFailure, OpenClass(42).LoadError())
}
