package shape

import (
	"testing"

	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestTriangleIntersectHit(t *testing.T) {
	tri := NewTriangle(vecmath.New(0, 0, 0), vecmath.New(1, 0, 0), vecmath.New(0, 1, 0))
	r := vecmath.NewRay(vecmath.New(0.2, 0.2, -5), vecmath.New(0, 0, 1))
	hit := tri.Intersect(r)
	assert.True(t, hit.Ok())
	assert.InDelta(t, 5, hit.T, 1e-9)
}

func TestTriangleIntersectMissOutsideBarycentricRange(t *testing.T) {
	tri := NewTriangle(vecmath.New(0, 0, 0), vecmath.New(1, 0, 0), vecmath.New(0, 1, 0))
	r := vecmath.NewRay(vecmath.New(5, 5, -5), vecmath.New(0, 0, 1))
	assert.False(t, tri.Intersect(r).Ok())
}

func TestTriangleIntersectAllowsBackfaceHit(t *testing.T) {
	tri := NewTriangle(vecmath.New(0, 0, 0), vecmath.New(1, 0, 0), vecmath.New(0, 1, 0))
	front := vecmath.NewRay(vecmath.New(0.2, 0.2, -5), vecmath.New(0, 0, 1))
	back := vecmath.NewRay(vecmath.New(0.2, 0.2, 5), vecmath.New(0, 0, -1))
	assert.True(t, tri.Intersect(front).Ok())
	assert.True(t, tri.Intersect(back).Ok())
}

// Triangle never participates in CSG containment, so the Intersect/Contains
// invariant the other primitives are checked against is vacuous here:
// Contains is always false regardless of what Intersect reports.
func TestTriangleContainsAlwaysFalse(t *testing.T) {
	tri := NewTriangle(vecmath.New(0, 0, 0), vecmath.New(1, 0, 0), vecmath.New(0, 1, 0))
	assert.False(t, tri.Contains(vecmath.New(0.2, 0.2, 0), 1e-6))
}

func TestTriangleDegenerateNeverHits(t *testing.T) {
	tri := NewTriangle(vecmath.New(0, 0, 0), vecmath.New(1, 0, 0), vecmath.New(2, 0, 0))
	r := vecmath.NewRay(vecmath.New(0.5, 0.5, -5), vecmath.New(0, 0, 1))
	assert.False(t, tri.Intersect(r).Ok())
}
