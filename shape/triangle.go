package shape

import (
	"math"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
)

// Triangle is a single 2-manifold face; it never participates in CSG
// containment (Contains always reports false).
type Triangle struct {
	base
	V1, V2, V3 vecmath.Vector
}

// NewTriangle builds a Triangle. Degenerate (zero-area) triangles are
// accepted (they simply never report a hit); the spec names no validation
// requirement for triangles beyond what CSG operand counts and primitive
// radii require.
func NewTriangle(v1, v2, v3 vecmath.Vector) *Triangle {
	return &Triangle{base: newBase(), V1: v1, V2: v2, V3: v3}
}

func (t *Triangle) Compile() error { return nil }

func (t *Triangle) BoundingBox() vecmath.AABB {
	return vecmath.NewAABB(t.V1, t.V1).Union(vecmath.NewAABB(t.V2, t.V2)).Union(vecmath.NewAABB(t.V3, t.V3))
}

func (t *Triangle) Contains(p vecmath.Vector, eps float64) bool { return false }

func (t *Triangle) Normal() vecmath.Vector {
	return vecmath.Normalize(t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)))
}

// Intersect implements the Möller-Trumbore algorithm; backface hits are
// allowed (no one-sided culling).
func (t *Triangle) Intersect(r vecmath.Ray) vecmath.Hit {
	const eps = 1e-12
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V1)
	h := r.Dir.Cross(e2)
	a := e1.Dot(h)
	if math.Abs(a) < eps {
		return vecmath.NoHit
	}
	f := 1 / a
	s := r.Origin.Sub(t.V1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return vecmath.NoHit
	}
	q := s.Cross(e1)
	v := f * r.Dir.Dot(q)
	if v < 0 || u+v > 1 {
		return vecmath.NoHit
	}
	tt := f * e2.Dot(q)
	if tt <= Eps {
		return vecmath.NoHit
	}
	return vecmath.Hit{T: tt, Shape: t}
}

func (t *Triangle) Paths() paths.Paths {
	out := paths.New()
	out.Add(t.V1, t.V2)
	out.Add(t.V2, t.V3)
	out.Add(t.V3, t.V1)
	return out
}
