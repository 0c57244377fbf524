package libpng

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeUnloadsAfterReporting(t *testing.T) {
	p := newFakePlatform()
	p.addDummyLibrary("libpng.so", "1.4.0")
	l, out := newTestLoader(t, p)

	r := l.Probe("")
	assert.Equal(t, "libpng.so", r.Library)
	assert.Equal(t, "success", r.Result)
	assert.Equal(t, uint(Success), r.Code)
	assert.Equal(t, "1.4.0", r.ObservedVersion)
	assert.Equal(t, HeaderVersion, r.ExpectedVersion)
	assert.False(t, r.Compatible)
	assert.Contains(t, r.Missing, "png_create_read_struct")
	assert.Contains(t, r.MissingOptional, "png_get_cICP")
	assert.False(t, r.Usable())

	requireEmptyTable(t, l)
	assert.Zero(t, p.openLibraries())
	assert.Empty(t, out.String())
}

func TestProbeFromPath(t *testing.T) {
	p := newFakePlatform()
	p.addFullLibrary("/opt/libpng16.so", compatibleVersion)
	l, _ := newTestLoader(t, p)

	r := l.Probe(" /opt/libpng16.so ")
	assert.Equal(t, "/opt/libpng16.so", r.Library)
	assert.True(t, r.Compatible)
	assert.Empty(t, r.Missing)
	assert.True(t, r.Usable())
	assert.False(t, l.IsLoaded())
}

func TestProbeReportsFailure(t *testing.T) {
	p := newFakePlatform()
	p.fail("libpng16.so", ClassInvalidFormat)
	l, _ := newTestLoader(t, p)

	r := l.Probe("")
	assert.Empty(t, r.Library)
	assert.Equal(t, uint(ErrInvalidBinaryFormat), r.Code)
	assert.Equal(t, "invalid binary format", r.Result)
	assert.Equal(t, unknownVersion, r.ObservedVersion)
	assert.False(t, r.Usable())
}

func TestProbeKeepsLoadedLibrary(t *testing.T) {
	p := newFakePlatform()
	p.addFullLibrary("libpng16.so", compatibleVersion)
	l, _ := newTestLoader(t, p)
	require.Equal(t, Success, l.Load(FlagsDefault))

	r := l.Probe("/elsewhere/libpng16.so")
	assert.Equal(t, "libpng16.so", r.Library)
	assert.True(t, r.Usable())
	assert.True(t, l.IsLoaded())
	assert.Equal(t, 1, p.openCount())
}

func TestReportWriteText(t *testing.T) {
	r := Report{
		Library:         "libpng16.so",
		Result:          "success",
		ExpectedVersion: "1.6.54",
		ObservedVersion: "1.6.43",
		Compatible:      true,
		MissingOptional: []string{"png_get_cICP", "png_set_cICP"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	want := "library:          libpng16.so\n" +
		"result:           success (0)\n" +
		"expected version: 1.6.54\n" +
		"observed version: 1.6.43\n" +
		"compatible:       true\n" +
		"missing:          (none)\n" +
		"missing optional: png_get_cICP, png_set_cICP\n"
	assert.Equal(t, want, buf.String())
}
