// Package svgout emits paths.Paths as an SVG document, one <path> per
// polyline with a moveto followed by linetos, in the moveto/lineto string
// style of boxesandglue/mpgo's svg-writer.go.
package svgout

import (
	"fmt"
	"io"
	"strings"

	"github.com/inkwell3d/inkwell/paths"
)

// Options controls the emitted document's size and stroke styling.
type Options struct {
	Width, Height int
	Stroke        string // CSS color; defaults to "black"
	StrokeWidth   float64
}

func (o Options) withDefaults() Options {
	if o.Stroke == "" {
		o.Stroke = "black"
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 1
	}
	return o
}

// polylineToSVG renders one polyline (already in pixel coordinates) as an
// SVG path data string: "M x0 y0 L x1 y1 L x2 y2 ...".
func polylineToSVG(pl paths.Polyline) string {
	var b strings.Builder
	for i, p := range pl {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s %.3f %.3f ", cmd, p[0], p[1])
	}
	return strings.TrimSpace(b.String())
}

// Write emits an SVG document containing one <path> per polyline in p.
// Ordering is preserved: one output path per input polyline of two or more
// points, in input order; polylines with fewer points are skipped.
func Write(w io.Writer, p paths.Paths, opts Options) error {
	opts = opts.withDefaults()
	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height); err != nil {
		return err
	}
	for _, line := range p.Lines {
		if len(line) < 2 {
			continue
		}
		_, err := fmt.Fprintf(w, `<path d="%s" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
			polylineToSVG(line), opts.Stroke, opts.StrokeWidth)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</svg>")
	return err
}
