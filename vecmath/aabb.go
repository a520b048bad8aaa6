package vecmath

import "math"

// AABB is an axis-aligned bounding box. An empty box is represented by a
// degenerate pair with Min > Max on some axis; Contains and IntersectRay
// return false/no-hit in that case.
type AABB struct {
	Min, Max Vector
}

// EmptyAABB returns a degenerate box that contains nothing and unions
// transparently with any other box.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Vector{inf, inf, inf}, Max: Vector{-inf, -inf, -inf}}
}

// NewAABB builds a box from two corners, normalizing min/max per axis.
func NewAABB(a, b Vector) AABB {
	return AABB{Min: Min(a, b), Max: Max(a, b)}
}

// Empty reports whether the box is degenerate on any axis.
func (b AABB) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Contains reports whether p lies within the closed box.
func (b AABB) Contains(p Vector) bool {
	if b.Empty() {
		return false
	}
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return AABB{Min: Min(b.Min, o.Min), Max: Max(b.Max, o.Max)}
}

// Intersection returns the box common to b and o; the result may be empty.
func (b AABB) Intersection(o AABB) AABB {
	return AABB{Min: Max(b.Min, o.Min), Max: Min(b.Max, o.Max)}
}

// Anchor and Size return the box in anchor/extent form.
func (b AABB) Anchor() Vector { return b.Min }
func (b AABB) Size() Vector   { return b.Max.Sub(b.Min) }

// Center returns the box midpoint.
func (b AABB) Center() Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the 3D length of the box diagonal.
func (b AABB) Diagonal() float64 {
	return b.Size().Len()
}

// IntersectRay performs a slab test, returning (tEnter, tExit, true) with
// tEnter <= tExit, or (0, 0, false) if the ray misses. Both tEnter and
// tExit may be negative (the ray origin can be inside the box).
func (b AABB) IntersectRay(r Ray) (float64, float64, bool) {
	if b.Empty() {
		return 0, 0, false
	}
	tMin, tMax := math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		d := r.Dir[axis]
		o := r.Origin[axis]
		if math.Abs(d) < 1e-15 {
			if o < b.Min[axis] || o > b.Max[axis] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (b.Min[axis] - o) * inv
		t2 := (b.Max[axis] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}
	return tMin, tMax, true
}

// Intersect implements bvh.Intersectable so an AABB-keyed item can be probed
// directly when no richer shape is available (e.g. in tests).
func (b AABB) Intersect(r Ray) Hit {
	tEnter, tExit, ok := b.IntersectRay(r)
	if !ok || tExit < 0 {
		return NoHit
	}
	t := tEnter
	if t < 1e-9 {
		t = tExit
	}
	if t < 1e-9 {
		return NoHit
	}
	return Hit{T: t, Shape: b}
}

// BoundingBox implements bvh.Intersectable.
func (b AABB) BoundingBox() AABB { return b }
