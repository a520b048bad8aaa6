// Package pngout rasterizes paths.Paths into a PNG image. Each segment is
// stroked as a thin filled quad via golang.org/x/image/vector.Rasterizer;
// golang.org/x/image has no PNG encoder of its own, so the final encode
// step uses the standard library's image/png — the one place this
// repository intentionally touches only the standard library for an
// ambient concern (see DESIGN.md).
package pngout

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
)

// Options controls the rasterized image's size, stroke color, and line
// width in pixels.
type Options struct {
	Width, Height int
	Color         color.Color // defaults to opaque black
	LineWidth     float64     // defaults to 1
}

func (o Options) withDefaults() Options {
	if o.Color == nil {
		o.Color = color.Black
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}
	return o
}

// Rasterize rasterizes p into an image.RGBA of the configured size.
func Rasterize(p paths.Paths, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	z := vector.NewRasterizer(opts.Width, opts.Height)
	half := float32(opts.LineWidth) / 2

	for _, line := range p.Lines {
		for i := 1; i < len(line); i++ {
			strokeSegment(z, line[i-1], line[i], half)
		}
	}

	alpha := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))
	z.Draw(alpha, alpha.Bounds(), image.NewUniform(color.Opaque), image.Point{})

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	r, g, b, _ := opts.Color.RGBA()
	stroke := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			a := alpha.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			img.Set(x, y, color.RGBA{stroke.R, stroke.G, stroke.B, a})
		}
	}
	return img
}

// strokeSegment rasterizes the 2D segment a->b (Z ignored) as a filled
// quad of the given half-width, perpendicular to the segment direction.
func strokeSegment(z *vector.Rasterizer, a, b vecmath.Vector, half float32) {
	dx, dy := float32(b[0]-a[0]), float32(b[1]-a[1])
	length := dx*dx + dy*dy
	if length == 0 {
		dx, dy = 1, 0
	} else {
		inv := float32(1 / math.Sqrt(float64(length)))
		dx, dy = dx*inv, dy*inv
	}
	nx, ny := -dy*half, dx*half

	ax, ay := float32(a[0]), float32(a[1])
	bx, by := float32(b[0]), float32(b[1])

	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

// Encode rasterizes p and writes it to w as a PNG.
func Encode(w io.Writer, p paths.Paths, opts Options) error {
	img := Rasterize(p, opts)
	return png.Encode(w, img)
}
