// Package paths models the ordered sequence of 3D (and, after projection,
// 2D-with-depth) polylines that the renderer emits as "ink". A Paths value
// is built up by shapes during Paths(), chopped into short segments for
// visibility sampling, projected through the camera matrix, clipped to the
// unit view rectangle, and finally mapped to pixel coordinates.
package paths

import (
	"math"

	"github.com/inkwell3d/inkwell/vecmath"
)

// Polyline is an ordered sequence of >=2 points. After projection, the Z
// component holds NDC depth rather than a spatial coordinate; it is kept so
// depth-based pruning can run without a second pass over the source mesh.
type Polyline []vecmath.Vector

// Len returns the polyline's total 3D arc length.
func (pl Polyline) Len() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i].Sub(pl[i-1]).Len()
	}
	return total
}

// Paths is an ordered collection of polylines.
type Paths struct {
	Lines []Polyline
}

// New returns an empty Paths value.
func New() Paths {
	return Paths{}
}

// Add appends a new polyline built from the given points. Polylines with
// fewer than two points are dropped.
func (p *Paths) Add(pts ...vecmath.Vector) {
	if len(pts) < 2 {
		return
	}
	line := make(Polyline, len(pts))
	copy(line, pts)
	p.Lines = append(p.Lines, line)
}

// AddLine appends a pre-built polyline, dropping it if degenerate.
func (p *Paths) AddLine(pl Polyline) {
	if len(pl) < 2 {
		return
	}
	p.Lines = append(p.Lines, pl)
}

// Append concatenates another Paths value's polylines onto p.
func (p *Paths) Append(other Paths) {
	p.Lines = append(p.Lines, other.Lines...)
}

// Segments returns every consecutive point pair across every polyline.
func (p Paths) Segments() [][2]vecmath.Vector {
	var out [][2]vecmath.Vector
	for _, line := range p.Lines {
		for i := 1; i < len(line); i++ {
			out = append(out, [2]vecmath.Vector{line[i-1], line[i]})
		}
	}
	return out
}

// Chop subdivides every segment so that none exceeds step in 3D length,
// returning a new Paths. Concatenating the returned sub-segments
// reconstructs the original polyline to within floating point error.
func (p Paths) Chop(step float64) Paths {
	if step <= 0 {
		return p
	}
	out := New()
	for _, line := range p.Lines {
		var chopped Polyline
		for i := 0; i < len(line); i++ {
			if i == 0 {
				chopped = append(chopped, line[i])
				continue
			}
			a, b := line[i-1], line[i]
			segLen := b.Sub(a).Len()
			n := int(math.Ceil(segLen / step))
			if n < 1 {
				n = 1
			}
			for k := 1; k <= n; k++ {
				t := float64(k) / float64(n)
				chopped = append(chopped, vecmath.Lerp(a, b, t))
			}
		}
		out.AddLine(chopped)
	}
	return out
}

// Project transforms every point of every polyline through m, applying the
// perspective divide (see vecmath.TransformPoint). Z is retained as NDC
// depth.
func (p Paths) Project(m vecmath.Matrix) Paths {
	out := New()
	for _, line := range p.Lines {
		projected := make(Polyline, len(line))
		for i, pt := range line {
			projected[i] = vecmath.TransformPoint(m, pt)
		}
		out.Lines = append(out.Lines, projected)
	}
	return out
}

// FilterDepth drops any polyline with a point outside the near/far NDC
// range [-1,1], splitting at the crossing is not attempted: a single
// out-of-range sample removes the whole sub-polyline it belongs to, since
// depth pruning in this engine operates on already-chopped, already
// visibility-split short runs.
func (p Paths) FilterDepth() Paths {
	out := New()
	for _, line := range p.Lines {
		ok := true
		for _, pt := range line {
			if pt[2] < -1 || pt[2] > 1 {
				ok = false
				break
			}
		}
		if ok {
			out.AddLine(line)
		}
	}
	return out
}

// FilterToUnitRect clips every polyline segment to the rectangle
// [-1,1]x[-1,1] using Liang-Barsky segment clipping, splitting polylines at
// clip boundaries so that every emitted segment lies wholly inside the
// rectangle.
func (p Paths) FilterToUnitRect() Paths {
	out := New()
	for _, line := range p.Lines {
		var current Polyline
		for i := 1; i < len(line); i++ {
			a, b, ok := clipSegmentToUnitRect(line[i-1], line[i])
			if !ok {
				if len(current) >= 2 {
					out.AddLine(current)
				}
				current = nil
				continue
			}
			if len(current) == 0 {
				current = append(current, a)
			}
			current = append(current, b)
		}
		if len(current) >= 2 {
			out.AddLine(current)
		}
	}
	return out
}

// clipSegmentToUnitRect clips the segment [a,b] (using only X,Y; Z is
// interpolated along) to [-1,1]x[-1,1] via Liang-Barsky.
func clipSegmentToUnitRect(a, b vecmath.Vector) (vecmath.Vector, vecmath.Vector, bool) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}

	if !clip(-dx, a[0]-(-1)) {
		return a, b, false
	}
	if !clip(dx, 1-a[0]) {
		return a, b, false
	}
	if !clip(-dy, a[1]-(-1)) {
		return a, b, false
	}
	if !clip(dy, 1-a[1]) {
		return a, b, false
	}
	if t0 > t1 {
		return a, b, false
	}
	return vecmath.Lerp(a, b, t0), vecmath.Lerp(a, b, t1), true
}

// Viewport maps the unit rectangle [-1,1]x[-1,1] onto [0,width]x[0,height],
// flipping Y so that NDC +Y (up) becomes pixel row 0 (top).
func (p Paths) Viewport(width, height float64) Paths {
	out := New()
	for _, line := range p.Lines {
		mapped := make(Polyline, len(line))
		for i, pt := range line {
			mapped[i] = vecmath.Vector{
				(pt[0] + 1) * 0.5 * width,
				(1 - (pt[1]+1)*0.5) * height,
				pt[2],
			}
		}
		out.Lines = append(out.Lines, mapped)
	}
	return out
}
