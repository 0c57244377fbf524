//go:build windows

package libpng

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

// allocForeign commits n zeroed bytes outside the Go heap, like memory handed
// out by a C library. The allocation is released when t finishes.
func allocForeign(t *testing.T, n int) []byte {
	t.Helper()
	addr, err := windows.VirtualAlloc(0, uintptr(n), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, windows.VirtualFree(addr, 0, windows.MEM_RELEASE))
	})
	// #nosec G103 -- addr is a VirtualAlloc region, not Go memory.
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

func addressOf(mem []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
}
