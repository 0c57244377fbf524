package libpng

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ebitengine/purego"
)

// HeaderVersion is the libpng version the manifest was generated from.
// A loaded libpng must share its MAJOR.MINOR to pass FlagVersionCheck.
const HeaderVersion = "1.6.54"

// unknownVersion is reported when no version was ever observed.
const unknownVersion = "0.0.0"

// versionBufferSize bounds the observed version kept across Unload,
// including the terminating NUL.
const versionBufferSize = 16

// versionBuffer holds the last observed version string.
type versionBuffer [versionBufferSize]byte

// set copies v into the buffer, truncating to fit and always terminating.
func (b *versionBuffer) set(v string) {
	n := copy(b[:len(b)-1], v)
	b[n] = 0
}

func (b *versionBuffer) String() string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b[:])
}

// CompatibleVersion reports whether observed and expected share MAJOR.MINOR.
// The comparison is a character scan up to and including the second '.',
// so "1.6.54.git" matches "1.6.2" while "1.60.0" and "16.6.2" do not.
func CompatibleVersion(observed, expected string) bool {
	dots := 0
	for i := 0; ; i++ {
		o, e := charAt(observed, i), charAt(expected, i)
		if o != e {
			return false
		}
		if o == 0 {
			return true
		}
		if o == '.' {
			dots++
			if dots == 2 {
				return true
			}
		}
	}
}

func charAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// versionSeries renders the MAJOR.MINOR.x series of v for diagnostics.
func versionSeries(v string) string {
	parts := strings.SplitN(v, ".", 4)
	if len(parts) >= 3 {
		if sv, err := semver.StrictNewVersion(strings.Join(parts[:3], ".")); err == nil {
			return fmt.Sprintf("%d.%d.x", sv.Major(), sv.Minor())
		}
	}
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1] + ".x"
	}
	return v
}

// callVersion calls png_get_libpng_ver(NULL) through its resolved address.
func callVersion(fn uintptr) string {
	r1, _, _ := purego.SyscallN(fn, 0)
	return goString(r1)
}
