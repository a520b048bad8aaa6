// Package vecmath provides the vector, ray, bounding-box, matrix and hit
// primitives shared by every shape and by the render pipeline. Types are
// built directly on github.com/go-gl/mathgl/mgl64 so that shapes compose
// with the same algebra the rest of the engine uses.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a tuple of IEEE-754 doubles. It carries no identity; values are
// copied freely. Arithmetic (Add, Sub, Dot, Cross, Len, ...) is inherited
// directly from mgl64.Vec3.
type Vector = mgl64.Vec3

// New builds a Vector from its components.
func New(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// Normalize returns v scaled to unit length, or the zero vector if v is
// (numerically) zero. Callers that require a non-zero normal must check.
func Normalize(v Vector) Vector {
	l := v.Len()
	if l < 1e-15 {
		return Vector{}
	}
	return v.Mul(1 / l)
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vector) Vector {
	return Vector{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vector) Vector {
	return Vector{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}

// Abs returns the component-wise absolute value of v.
func Abs(v Vector) Vector {
	return Vector{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}

// Lerp linearly interpolates between a and b at parameter t.
func Lerp(a, b Vector, t float64) Vector {
	return a.Add(b.Sub(a).Mul(t))
}

// ReflectAxis mirrors v across the plane whose normal is the given axis
// (0=x, 1=y, 2=z), i.e. negates that one component.
func ReflectAxis(v Vector, axis int) Vector {
	out := v
	out[axis] = -out[axis]
	return out
}

// SegmentDistance returns the shortest distance from point p to the segment
// [a,b].
func SegmentDistance(p, a, b Vector) float64 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom < 1e-15 {
		return p.Sub(a).Len()
	}
	t := p.Sub(a).Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).Len()
}
