package svgout

import (
	"strings"
	"testing"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOnePathPerPolyline(t *testing.T) {
	p := paths.New()
	p.Add(vecmath.New(0, 0, 0), vecmath.New(10, 0, 0), vecmath.New(10, 10, 0))

	var buf strings.Builder
	err := Write(&buf, p, Options{Width: 100, Height: 100})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "<path"))
	assert.Contains(t, out, `width="100"`)
	assert.Contains(t, out, "M 0.000 0.000")
}

func TestWriteDropsDegeneratePolylines(t *testing.T) {
	p := paths.New()
	p.AddLine(nil)
	var buf strings.Builder
	require.NoError(t, Write(&buf, p, Options{Width: 10, Height: 10}))
	assert.Equal(t, 0, strings.Count(buf.String(), "<path"))
}
