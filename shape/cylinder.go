package shape

import (
	"fmt"
	"math"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/texture"
	"github.com/inkwell3d/inkwell/vecmath"
)

// Cylinder is a solid of revolution of constant radius between the axis
// endpoints V0 and V1.
type Cylinder struct {
	base
	Radius float64
	V0, V1 vecmath.Vector

	LineCount int
	Samples   int
}

// NewCylinder validates radius > 0 and builds a Cylinder.
func NewCylinder(radius float64, v0, v1 vecmath.Vector) (*Cylinder, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("shape: cylinder radius must be positive, got %g: %w", radius, ErrConstruction)
	}
	return &Cylinder{base: newBase(), Radius: radius, V0: v0, V1: v1, LineCount: 16, Samples: 48}, nil
}

func (c *Cylinder) axis() (vecmath.Vector, float64) {
	d := c.V1.Sub(c.V0)
	h := d.Len()
	if h < 1e-12 {
		return vecmath.New(0, 0, 1), 0
	}
	return d.Mul(1 / h), h
}

func (c *Cylinder) Compile() error { return nil }

func (c *Cylinder) BoundingBox() vecmath.AABB {
	r := vecmath.New(c.Radius, c.Radius, c.Radius)
	return vecmath.NewAABB(c.V0, c.V0).Union(vecmath.NewAABB(c.V1, c.V1)).Union(
		vecmath.NewAABB(c.V0.Sub(r), c.V0.Add(r))).Union(
		vecmath.NewAABB(c.V1.Sub(r), c.V1.Add(r)))
}

func (c *Cylinder) Contains(p vecmath.Vector, eps float64) bool {
	axis, h := c.axis()
	rel := p.Sub(c.V0)
	along := rel.Dot(axis)
	if along < -eps || along > h+eps {
		return false
	}
	radial := rel.Sub(axis.Mul(along))
	return radial.Len() <= c.Radius+eps
}

// Intersect solves the axis-aligned quadratic and the two end-cap planes,
// returning the nearest valid positive root.
func (c *Cylinder) Intersect(r vecmath.Ray) vecmath.Hit {
	axis, h := c.axis()
	if h < 1e-12 {
		return vecmath.NoHit
	}

	oc := r.Origin.Sub(c.V0)
	dAxis := r.Dir.Dot(axis)
	oAxis := oc.Dot(axis)
	dPerp := r.Dir.Sub(axis.Mul(dAxis))
	oPerp := oc.Sub(axis.Mul(oAxis))

	best := math.Inf(1)
	consider := func(t float64) {
		if t > Eps && t < best {
			best = t
		}
	}

	a := dPerp.Dot(dPerp)
	if a > 1e-15 {
		b := 2 * oPerp.Dot(dPerp)
		cc := oPerp.Dot(oPerp) - c.Radius*c.Radius
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				along := oAxis + t*dAxis
				if along >= 0 && along <= h {
					consider(t)
				}
			}
		}
	}

	if math.Abs(dAxis) > 1e-15 {
		for _, capAt := range []float64{0, h} {
			t := (capAt - oAxis) / dAxis
			p := oPerp.Add(dPerp.Mul(t))
			if p.Len() <= c.Radius {
				consider(t)
			}
		}
	}

	if math.IsInf(best, 1) {
		return vecmath.NoHit
	}
	return vecmath.Hit{T: best, Shape: c}
}

func (c *Cylinder) Paths() paths.Paths {
	n := c.LineCount
	if n < 1 {
		n = 16
	}
	samples := c.Samples
	if samples < 4 {
		samples = 48
	}
	return texture.CylinderDefault(c.Radius, c.V0, c.V1, n, samples)
}
