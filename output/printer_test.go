package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/colorspace"
	"github.com/weaming/spectrum-go/matrix"
)

func TestRGB(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, colorspace.FormatFraction, false)
	p.RGB("rgb", matrix.Vector3{1, 0, 0.5})
	p.RGB("", matrix.Vector3{0, 1, 0})
	assert.Equal(t, "rgb      = 1.000000 0.000000 0.500000\n0.000000 1.000000 0.000000\n", buf.String())

	buf.Reset()
	p = NewPrinter(&buf, colorspace.FormatHTML, false)
	p.RGB("rgb", matrix.Vector3{1, 0, 0.5})
	assert.Equal(t, "rgb      = #ff007f\n", buf.String())
}

func TestSwatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, colorspace.FormatHTML, true, termenv.WithProfile(termenv.TrueColor))
	p.RGB("rgb", matrix.Vector3{1, 0, 0})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "rgb      = #ff0000 "))
	assert.Contains(t, out, "48;2;255;0;0")
	assert.Contains(t, out, strings.Repeat(" ", SwatchWidth))

	// 无颜色的终端只输出空白
	buf.Reset()
	p = NewPrinter(&buf, colorspace.FormatHTML, true, termenv.WithProfile(termenv.Ascii))
	p.RGB("rgb", matrix.Vector3{1, 0, 0})
	assert.Equal(t, "rgb      = #ff0000 "+strings.Repeat(" ", SwatchWidth)+"\n", buf.String())
}

func TestSpectrum(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, colorspace.FormatFraction, false)

	var s cie.Spectrum
	s[0] = 1.5
	p.Spectrum(s)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, cie.Samples)
	assert.Equal(t, "380 1.500000", lines[0])
	assert.Equal(t, "780 0.000000", lines[cie.Samples-1])
}

func TestSectionAndMatrix(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, colorspace.FormatFraction, false)
	p.Section("matrices", func() {
		p.Matrix("M", matrix.Identity3x3())
		p.Vector("wscale", matrix.Vector3{1, 2, 3})
		p.XYZ("xyz", matrix.Vector3{0.1, 0.2, 0.7})
		p.XY("xy", 0.25, 0.5)
		p.Error("x", errors.New("boom"))
		p.Line("weight %.1f", 2.5)
	})

	want := `BEGIN: matrices

  M:
    [1.000000, 0.000000, 0.000000]
    [0.000000, 1.000000, 0.000000]
    [0.000000, 0.000000, 1.000000]
wscale   = [1.000000, 2.000000, 3.000000]
xyz      = 0.100000 0.200000 0.700000
xy       = 0.250000 0.500000
x        = error: boom
weight 2.5

END: matrices

`
	assert.Equal(t, want, buf.String())
}
