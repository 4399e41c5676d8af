package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/colorspace"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestXY(t *testing.T) {
	out, _, err := run(t, "", "xy", "0.64", "0.33", "-f", "html")
	require.NoError(t, err)
	assert.Equal(t, "xyz      = 0.640000 0.330000 0.030000\nrgb      = #ff0000\n", out)

	out, _, err = run(t, "", "xy", "0.15", "0.06", "--system", "hdtv")
	require.NoError(t, err)
	assert.Contains(t, out, "rgb      = 0.000000 0.000000 1.000000\n")
}

func TestXYZ(t *testing.T) {
	out, _, err := run(t, "", "xyz", "0.3", "0.6", "0.1", "--format", "hex")
	require.NoError(t, err)
	assert.Equal(t, "rgb      = #00ff00\n", out)

	_, _, err = run(t, "", "xyz", "0.3", "abc", "0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Y")

	_, _, err = run(t, "", "xyz", "0.3")
	assert.Error(t, err)
}

func TestSpectrum(t *testing.T) {
	var sb strings.Builder
	for i, v := range cie.Default().D65 {
		fmt.Fprintf(&sb, "%d,%g\n", cie.Wavelength(i), v)
	}
	path := writeFile(t, "d65.csv", sb.String())

	out, _, err := run(t, "", "spectrum", path, "-f", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "xy       = 0.313805 0.330977\n")
	assert.Contains(t, out, "rgb      = #fefffa\n")

	// 标准输入，每行一个数值
	zeros := strings.Repeat("0\n", cie.Samples)
	out, _, err = run(t, zeros, "spectrum")
	require.NoError(t, err)
	assert.Contains(t, out, "xyz      = 0.000000 0.000000 0.000000\n")
	assert.Contains(t, out, "xy       = error: "+colorspace.ErrDegenerateInput.Error())
	assert.Contains(t, out, "rgb      = 0.000000 0.000000 0.000000\n")

	_, _, err = run(t, "1\n2\n3\n", "spectrum", "-")
	assert.ErrorIs(t, err, colorspace.ErrDimensionMismatch)

	for _, in := range []string{"0\n;\n", "0\n,\n", "380,1\n,\n"} {
		_, _, err = run(t, in, "spectrum")
		assert.Error(t, err, "%q", in)
	}

	_, _, err = run(t, "", "spectrum", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProject(t *testing.T) {
	out, errOut, err := run(t, "", "project", "0.3127", "0.3291")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, cie.Samples)
	assert.Equal(t, "380 0.716184", lines[0])
	assert.Empty(t, errOut)

	out1931, errOut, err := run(t, "", "project", "0.3127", "0.3291", "--observer", "1931")
	require.NoError(t, err)
	assert.Equal(t, out, out1931)
	assert.Contains(t, errOut, "CIE 1964")
}

func TestLocus(t *testing.T) {
	out, _, err := run(t, "", "locus", "--step", "100", "-f", "html")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "380nm"))
	assert.True(t, strings.HasPrefix(lines[4], "780nm"))

	_, _, err = run(t, "", "locus", "--step", "7")
	assert.Error(t, err)

	out, _, err = run(t, "", "locus", "--step", "100", "--band", "2", "--height", "3", "--image", "ppm")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "P3\n10 3\n65535\n"))

	_, _, err = run(t, "", "locus", "--image", "gif")
	assert.Error(t, err)
	_, _, err = run(t, "", "locus", "--image", "ppm", "--height", "100000")
	assert.Error(t, err)
	_, _, err = run(t, "", "locus", "--image", "ppm", "--step", "5", "--band", "1000")
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN: colour system srgb")
	assert.Contains(t, out, "observer = CIE 1964")
	assert.Contains(t, out, "T (xyz -> rgb)")
	assert.Contains(t, out, "[9.854084, -4.674373, -1.516013]")
	assert.Contains(t, out, "white xy = 0.312700 0.329100")
	assert.Contains(t, out, "weight   = 2324.082493")
}

const customSystems = `
[systems.wide]
red = [0.7347, 0.2653]
green = [0.1152, 0.8264]
blue = [0.1566, 0.0177]
white = [0.3457, 0.3585]
`

func TestSystems(t *testing.T) {
	out, _, err := run(t, "", "systems")
	require.NoError(t, err)
	assert.Equal(t, "hdtv\nsmpte\nsrgb\n", out)

	path := writeFile(t, "systems.toml", customSystems)
	out, _, err = run(t, "", "systems", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "hdtv\nsmpte\nsrgb\nwide ("+path+")\n", out)

	out, _, err = run(t, "", "xy", "0.7347", "0.2653", "-c", path, "-s", "wide", "-f", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "rgb      = #ff0000\n")
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "", "xy", "0.3", "0.3", "-s", "adobe")
	assert.ErrorIs(t, err, colorspace.ErrConfiguration)

	_, _, err = run(t, "", "xy", "0.3", "0.3", "--observer", "1976")
	assert.ErrorIs(t, err, colorspace.ErrConfiguration)

	_, _, err = run(t, "", "xy", "0.3", "0.3", "-f", "lab")
	assert.ErrorIs(t, err, colorspace.ErrConfiguration)
}

func TestLogging(t *testing.T) {
	_, errOut, err := run(t, "", "xy", "0.3", "0.3", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "加载参考表")
	assert.Contains(t, errOut, "选择色彩系统")

	_, errOut, err = run(t, "", "xy", "0.3", "0.3")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}
