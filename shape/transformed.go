package shape

import (
	"fmt"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
)

// TransformedShape wraps a child Shape with an affine matrix, forwarding
// all four geometric operations through it.
type TransformedShape struct {
	base
	Child  Shape
	Matrix vecmath.Matrix

	inverse vecmath.Matrix
	ready   bool
}

// NewTransformedShape validates that matrix is invertible and builds a
// TransformedShape. The inverse itself is computed lazily in Compile so
// that construction never panics on a matrix whose invertibility can only
// be confirmed once — the constructor performs the same determinant check
// eagerly for a fast, construction-time error.
func NewTransformedShape(child Shape, matrix vecmath.Matrix) (*TransformedShape, error) {
	if det := matrix.Det(); det > -vecmath.SingularDetLimit && det < vecmath.SingularDetLimit {
		return nil, fmt.Errorf("shape: transform matrix is singular (det=%g): %w", det, ErrConstruction)
	}
	return &TransformedShape{base: newBase(), Child: child, Matrix: matrix}, nil
}

// Compile precomputes the inverse matrix exactly once, converting a later
// singular-matrix panic (the matrix could in principle be mutated after
// construction) into ErrSingularTransform rather than crashing the render.
func (t *TransformedShape) Compile() (err error) {
	if t.ready {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("shape: %v: %w", r, ErrSingularTransform)
		}
	}()
	t.inverse = vecmath.Inverse(t.Matrix)
	t.ready = true
	return t.Child.Compile()
}

func (t *TransformedShape) BoundingBox() vecmath.AABB {
	return vecmath.TransformBox(t.Matrix, t.Child.BoundingBox())
}

func (t *TransformedShape) Contains(p vecmath.Vector, eps float64) bool {
	return t.Child.Contains(vecmath.TransformPoint(t.inverse, p), eps)
}

// Intersect transforms the ray into child space, intersects there, then
// rescales t back into world distance by re-measuring the hit point's
// world-space distance from the original ray origin — correct even when
// Matrix is non-rigid (non-uniform scale).
func (t *TransformedShape) Intersect(r vecmath.Ray) vecmath.Hit {
	localRay := vecmath.TransformRay(t.inverse, r)
	hit := t.Child.Intersect(localRay)
	if !hit.Ok() {
		return vecmath.NoHit
	}
	localPoint := localRay.At(hit.T)
	worldPoint := vecmath.TransformPoint(t.Matrix, localPoint)
	worldT := worldPoint.Sub(r.Origin).Len()
	return vecmath.Hit{T: worldT, Shape: t}
}

func (t *TransformedShape) Paths() paths.Paths {
	childPaths := t.Child.Paths()
	out := paths.New()
	for _, line := range childPaths.Lines {
		transformed := make(paths.Polyline, len(line))
		for i, p := range line {
			transformed[i] = vecmath.TransformPoint(t.Matrix, p)
		}
		out.AddLine(transformed)
	}
	return out
}
