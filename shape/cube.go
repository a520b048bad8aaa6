package shape

import (
	"fmt"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/texture"
	"github.com/inkwell3d/inkwell/vecmath"
)

// Cube is an axis-aligned box.
type Cube struct {
	base
	Min, Max vecmath.Vector

	Striped     bool
	StripeCount int
}

// NewCube validates min <= max componentwise and builds a Cube.
func NewCube(min, max vecmath.Vector) (*Cube, error) {
	for axis := 0; axis < 3; axis++ {
		if min[axis] > max[axis] {
			return nil, fmt.Errorf("shape: cube min must be <= max componentwise: %w", ErrConstruction)
		}
	}
	return &Cube{base: newBase(), Min: min, Max: max, StripeCount: 8}, nil
}

func (c *Cube) Compile() error { return nil }

func (c *Cube) BoundingBox() vecmath.AABB {
	return vecmath.AABB{Min: c.Min, Max: c.Max}
}

func (c *Cube) Contains(p vecmath.Vector, eps float64) bool {
	return p[0] >= c.Min[0]-eps && p[0] <= c.Max[0]+eps &&
		p[1] >= c.Min[1]-eps && p[1] <= c.Max[1]+eps &&
		p[2] >= c.Min[2]-eps && p[2] <= c.Max[2]+eps
}

// Intersect performs the AABB slab test and returns the nearest positive
// boundary.
func (c *Cube) Intersect(r vecmath.Ray) vecmath.Hit {
	box := c.BoundingBox()
	tEnter, tExit, ok := box.IntersectRay(r)
	if !ok || tExit < Eps {
		return vecmath.NoHit
	}
	t := tEnter
	if t <= Eps {
		t = tExit
	}
	if t <= Eps {
		return vecmath.NoHit
	}
	return vecmath.Hit{T: t, Shape: c}
}

func (c *Cube) Paths() paths.Paths {
	if c.Striped {
		n := c.StripeCount
		if n < 1 {
			n = 8
		}
		return texture.CubeStripes(c.Min, c.Max, n)
	}
	return texture.CubeEdges(c.Min, c.Max)
}
