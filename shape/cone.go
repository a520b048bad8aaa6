package shape

import (
	"fmt"
	"math"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/texture"
	"github.com/inkwell3d/inkwell/vecmath"
)

// Cone tapers linearly from Radius at V0 to a point at V1.
type Cone struct {
	base
	Radius float64
	V0, V1 vecmath.Vector

	LineCount int
	Samples   int
}

// NewCone validates radius > 0 and builds a Cone.
func NewCone(radius float64, v0, v1 vecmath.Vector) (*Cone, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("shape: cone radius must be positive, got %g: %w", radius, ErrConstruction)
	}
	return &Cone{base: newBase(), Radius: radius, V0: v0, V1: v1, LineCount: 16, Samples: 48}, nil
}

func (c *Cone) axis() (vecmath.Vector, float64) {
	d := c.V1.Sub(c.V0)
	h := d.Len()
	if h < 1e-12 {
		return vecmath.New(0, 0, 1), 0
	}
	return d.Mul(1 / h), h
}

func (c *Cone) Compile() error { return nil }

func (c *Cone) BoundingBox() vecmath.AABB {
	r := vecmath.New(c.Radius, c.Radius, c.Radius)
	return vecmath.NewAABB(c.V0.Sub(r), c.V0.Add(r)).Union(vecmath.NewAABB(c.V1, c.V1))
}

func (c *Cone) Contains(p vecmath.Vector, eps float64) bool {
	axis, h := c.axis()
	rel := p.Sub(c.V0)
	along := rel.Dot(axis)
	if along < -eps || along > h+eps {
		return false
	}
	radiusAt := c.Radius * (1 - along/h)
	radial := rel.Sub(axis.Mul(along))
	return radial.Len() <= radiusAt+eps
}

// Intersect solves the double-napped quadratic restricted to the finite
// axial extent, plus the base disk at V0.
func (c *Cone) Intersect(r vecmath.Ray) vecmath.Hit {
	axis, h := c.axis()
	if h < 1e-12 {
		return vecmath.NoHit
	}

	oc := r.Origin.Sub(c.V0)
	dAxis := r.Dir.Dot(axis)
	oAxis := oc.Dot(axis)
	dPerp := r.Dir.Sub(axis.Mul(dAxis))
	oPerp := oc.Sub(axis.Mul(oAxis))

	k := c.Radius / h // radius shrinks to 0 over [0,h]

	best := math.Inf(1)
	consider := func(t float64) {
		if t > Eps && t < best {
			best = t
		}
	}

	// radial(t)^2 = (k*(h - along(t)))^2
	// |oPerp + t*dPerp|^2 - k^2*(h - oAxis - t*dAxis)^2 = 0
	rk := h - oAxis
	a := dPerp.Dot(dPerp) - k*k*dAxis*dAxis
	b := 2*oPerp.Dot(dPerp) + 2*k*k*dAxis*rk
	cc := oPerp.Dot(oPerp) - k*k*rk*rk

	if math.Abs(a) > 1e-15 {
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
	} else if math.Abs(b) > 1e-15 {
		t := -cc / b
		along := oAxis + t*dAxis
		if along >= 0 && along <= h {
			consider(t)
		}
	}

	if math.Abs(dAxis) > 1e-15 {
		t := (0 - oAxis) / dAxis
		p := oPerp.Add(dPerp.Mul(t))
		if p.Len() <= c.Radius {
			consider(t)
		}
	}

	if math.IsInf(best, 1) {
		return vecmath.NoHit
	}
	return vecmath.Hit{T: best, Shape: c}
}

func (c *Cone) Paths() paths.Paths {
	n := c.LineCount
	if n < 1 {
		n = 16
	}
	samples := c.Samples
	if samples < 4 {
		samples = 48
	}
	return texture.ConeDefault(c.Radius, c.V0, c.V1, n, samples)
}
