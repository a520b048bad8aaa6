package vecmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 affine/projective transform, built directly on
// mgl64.Mat4. Composition is right-to-left: Compose(a, b) applies b first.
type Matrix = mgl64.Mat4

// SingularDetLimit is the determinant magnitude below which Inverse panics.
const SingularDetLimit = 1e-12

// Identity returns the identity matrix.
func Identity() Matrix { return mgl64.Ident4() }

// Translate returns a pure translation matrix.
func Translate(v Vector) Matrix {
	return mgl64.Translate3D(v[0], v[1], v[2])
}

// Scale returns a pure (possibly non-uniform) scale matrix.
func Scale(v Vector) Matrix {
	return mgl64.Scale3D(v[0], v[1], v[2])
}

// Rotate returns a rotation of angleRad radians about axis.
func Rotate(axis Vector, angleRad float64) Matrix {
	return mgl64.HomogRotate3D(angleRad, Normalize(axis))
}

// Frustum returns a perspective frustum matrix, OpenGL style.
func Frustum(l, r, b, t, near, far float64) Matrix {
	return mgl64.Frustum(l, r, b, t, near, far)
}

// Orthographic returns a parallel-projection matrix.
func Orthographic(l, r, b, t, near, far float64) Matrix {
	return mgl64.Ortho(l, r, b, t, near, far)
}

// Perspective returns a symmetric perspective projection built from a
// vertical field of view in degrees, matching the OpenGL convention
// yMax = near*tan(fovy/2).
func Perspective(fovyDeg, aspect, near, far float64) Matrix {
	fovyRad := fovyDeg * math.Pi / 180
	return mgl64.Perspective(fovyRad, aspect, near, far)
}

// LookAt builds the standard right-handed world->camera matrix.
func LookAt(eye, center, up Vector) Matrix {
	return mgl64.LookAtV(eye, center, up)
}

// Compose returns a*b (a applied after b).
func Compose(a, b Matrix) Matrix {
	return a.Mul4(b)
}

// Inverse returns a matrix M2 such that m*M2 approximates the identity. It
// panics if m's determinant has magnitude below SingularDetLimit, matching
// the engine's "degrade gracefully during render, fail loudly during
// compile" error policy (see shape.ErrSingularTransform, which
// TransformedShape.Compile wraps this panic into during Scene compile).
func Inverse(m Matrix) Matrix {
	if math.Abs(m.Det()) < SingularDetLimit {
		panic(fmt.Sprintf("vecmath: matrix is singular (det=%g)", m.Det()))
	}
	return m.Inv()
}

// TransformPoint applies m to a point: translation and perspective divide
// both apply.
func TransformPoint(m Matrix, p Vector) Vector {
	v4 := m.Mul4x1(mgl64.Vec4{p[0], p[1], p[2], 1})
	w := v4[3]
	if math.Abs(w) < 1e-15 {
		return Vector{v4[0], v4[1], v4[2]}
	}
	return Vector{v4[0] / w, v4[1] / w, v4[2] / w}
}

// TransformDirection applies m to a direction: no translation, no
// perspective divide.
func TransformDirection(m Matrix, d Vector) Vector {
	v4 := m.Mul4x1(mgl64.Vec4{d[0], d[1], d[2], 0})
	return Vector{v4[0], v4[1], v4[2]}
}

// TransformRay applies m to both the origin and the direction of r. The
// resulting direction is only unit length if m is orthogonal, matching the
// relaxed Ray contract.
func TransformRay(m Matrix, r Ray) Ray {
	return Ray{Origin: TransformPoint(m, r.Origin), Dir: TransformDirection(m, r.Dir)}
}

// TransformBox returns the box enclosing all eight transformed corners of b.
func TransformBox(m Matrix, b AABB) AABB {
	if b.Empty() {
		return b
	}
	out := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := Vector{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		p := TransformPoint(m, corner)
		out = out.Union(AABB{Min: p, Max: p})
	}
	return out
}
