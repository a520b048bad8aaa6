package shape

import (
	"fmt"
	"math"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
)

// csgIntersect marches a ray forward past each candidate child surface
// point, testing whether it is a genuine boundary crossing of the combined
// solid (contains flips on either side within +-delta). This lets a
// Shape.Intersect that only ever reports the nearest root still resolve
// CSG boundaries that may lie behind several non-boundary child crossings.
func csgIntersect(self Shape, children []Shape, contains func(p vecmath.Vector, eps float64) bool, r vecmath.Ray) vecmath.Hit {
	const delta = 1e-7
	tCur := Eps
	maxIter := 8*len(children) + 16

	for iter := 0; iter < maxIter; iter++ {
		bestT := math.Inf(1)
		found := false
		for _, c := range children {
			offset := tCur + delta
			localRay := vecmath.Ray{Origin: r.At(offset), Dir: r.Dir}
			hit := c.Intersect(localRay)
			if !hit.Ok() {
				continue
			}
			globalT := offset + hit.T
			if globalT < bestT {
				bestT = globalT
				found = true
			}
		}
		if !found {
			return vecmath.NoHit
		}
		beforeP := r.At(bestT - delta)
		afterP := r.At(bestT + delta)
		if contains(beforeP, ContainsEps) != contains(afterP, ContainsEps) {
			return vecmath.Hit{T: bestT, Shape: self}
		}
		tCur = bestT
	}
	return vecmath.NoHit
}

// csgPaths chops each child's raw surface paths finely enough to resolve
// boundary crossings, then keeps only the sub-runs for which visible
// reports the point as part of the combined solid's surface.
func csgPaths(children []Shape, visible func(childIdx int, p vecmath.Vector) bool) paths.Paths {
	box := vecmath.EmptyAABB()
	for _, c := range children {
		box = box.Union(c.BoundingBox())
	}
	step := box.Diagonal() / 64
	if step <= 0 {
		step = 1e-3
	}

	out := paths.New()
	for i, c := range children {
		chopped := c.Paths().Chop(step)
		for _, line := range chopped.Lines {
			var run paths.Polyline
			flush := func() {
				if len(run) >= 2 {
					out.AddLine(run)
				}
				run = nil
			}
			for _, p := range line {
				if visible(i, p) {
					run = append(run, p)
				} else {
					flush()
				}
			}
			flush()
		}
	}
	return out
}

func compileAll(children []Shape) error {
	for _, c := range children {
		if err := c.Compile(); err != nil {
			return err
		}
	}
	return nil
}

// Difference is S0 minus the union of the remaining operands.
type Difference struct {
	base
	Children []Shape
}

// NewDifference requires at least two operands: the base solid and at
// least one subtracted solid.
func NewDifference(children ...Shape) (*Difference, error) {
	if len(children) < 2 {
		return nil, fmt.Errorf("shape: difference needs at least 2 operands, got %d: %w", len(children), ErrConstruction)
	}
	return &Difference{base: newBase(), Children: children}, nil
}

func (d *Difference) Compile() error { return compileAll(d.Children) }

func (d *Difference) BoundingBox() vecmath.AABB { return d.Children[0].BoundingBox() }

func (d *Difference) Contains(p vecmath.Vector, eps float64) bool {
	if !d.Children[0].Contains(p, eps) {
		return false
	}
	for _, c := range d.Children[1:] {
		if c.Contains(p, eps) {
			return false
		}
	}
	return true
}

func (d *Difference) Intersect(r vecmath.Ray) vecmath.Hit {
	return csgIntersect(d, d.Children, d.Contains, r)
}

// Paths keeps S0's surface outside every subtracted operand, and each
// subtracted operand's surface wherever it lies inside S0 and outside the
// other subtracted operands — the cut face.
func (d *Difference) Paths() paths.Paths {
	return csgPaths(d.Children, func(idx int, p vecmath.Vector) bool {
		if idx == 0 {
			for _, c := range d.Children[1:] {
				if c.Contains(p, ContainsEps) {
					return false
				}
			}
			return true
		}
		if !d.Children[0].Contains(p, ContainsEps) {
			return false
		}
		for j, c := range d.Children {
			if j == 0 || j == idx {
				continue
			}
			if c.Contains(p, ContainsEps) {
				return false
			}
		}
		return true
	})
}

// Intersection is the common overlap of every operand.
type Intersection struct {
	base
	Children []Shape
}

// NewIntersection requires at least two operands.
func NewIntersection(children ...Shape) (*Intersection, error) {
	if len(children) < 2 {
		return nil, fmt.Errorf("shape: intersection needs at least 2 operands, got %d: %w", len(children), ErrConstruction)
	}
	return &Intersection{base: newBase(), Children: children}, nil
}

func (s *Intersection) Compile() error { return compileAll(s.Children) }

func (s *Intersection) BoundingBox() vecmath.AABB {
	box := s.Children[0].BoundingBox()
	for _, c := range s.Children[1:] {
		box = box.Intersection(c.BoundingBox())
	}
	return box
}

func (s *Intersection) Contains(p vecmath.Vector, eps float64) bool {
	for _, c := range s.Children {
		if !c.Contains(p, eps) {
			return false
		}
	}
	return true
}

func (s *Intersection) Intersect(r vecmath.Ray) vecmath.Hit {
	return csgIntersect(s, s.Children, s.Contains, r)
}

// Paths keeps each operand's surface wherever it lies inside every other
// operand.
func (s *Intersection) Paths() paths.Paths {
	return csgPaths(s.Children, func(idx int, p vecmath.Vector) bool {
		for j, c := range s.Children {
			if j == idx {
				continue
			}
			if !c.Contains(p, ContainsEps) {
				return false
			}
		}
		return true
	})
}
