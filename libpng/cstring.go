package libpng

import "unsafe"

// maxCStringLen bounds the scan for a NUL terminator. libpng strings returned
// by the loader (versions, copyright) are far shorter.
const maxCStringLen = 4096

// minValidAddress rejects pointers into the zero page.
const minValidAddress = 4096

// goString converts a NUL-terminated C string to a Go string.
// Returns "" for null or obviously invalid pointers.
func goString(ptr uintptr) string {
	if ptr < minValidAddress {
		return ""
	}

	// #nosec G103 -- ptr is a char* returned by the loaded library.
	// go vet reports "possible misuse of unsafe.Pointer" here; ptr is C memory.
	p := unsafe.Pointer(ptr)
	n := 0
	for n < maxCStringLen && *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
