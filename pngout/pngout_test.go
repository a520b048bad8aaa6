package pngout

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeProducesValidPNG(t *testing.T) {
	p := paths.New()
	p.Add(vecmath.New(5, 5, 0), vecmath.New(90, 90, 0))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, p, Options{Width: 100, Height: 100}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestRasterizeDrawsNonEmptyStroke(t *testing.T) {
	p := paths.New()
	p.Add(vecmath.New(0, 50, 0), vecmath.New(100, 50, 0))

	img := Rasterize(p, Options{Width: 100, Height: 100, LineWidth: 3})
	_, _, _, a := img.At(50, 50).RGBA()
	assert.NotZero(t, a)
}
