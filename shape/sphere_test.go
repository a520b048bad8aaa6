package shape

import (
	"testing"

	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertIntersectOnSurface is the core invariant spec.md §8 names for every
// primitive: if Intersect reports a hit at distance t, the point r.At(t)
// must satisfy the shape's own Contains within 1e-6. Shared across the
// primitive test files in this package.
func assertIntersectOnSurface(t *testing.T, s Shape, r vecmath.Ray) vecmath.Hit {
	t.Helper()
	hit := s.Intersect(r)
	if hit.Ok() {
		p := r.At(hit.T)
		assert.True(t, s.Contains(p, 1e-6), "hit point %v at t=%g must satisfy Contains", p, hit.T)
	}
	return hit
}

func TestNewSphereRejectsNonPositiveRadius(t *testing.T) {
	_, err := NewSphere(vecmath.New(0, 0, 0), 0)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = NewSphere(vecmath.New(0, 0, 0), -1)
	require.ErrorIs(t, err, ErrConstruction)
}

func TestSphereIntersectSatisfiesContainsInvariant(t *testing.T) {
	s, err := NewSphere(vecmath.New(1, 2, 3), 2.5)
	require.NoError(t, err)

	cases := []struct {
		name   string
		origin vecmath.Vector
		dir    vecmath.Vector
	}{
		{"along x", vecmath.New(-10, 2, 3), vecmath.New(1, 0, 0)},
		{"along y", vecmath.New(1, -10, 3), vecmath.New(0, 1, 0)},
		{"along z", vecmath.New(1, 2, -10), vecmath.New(0, 0, 1)},
		{"diagonal", vecmath.New(-5, -5, -5), vecmath.New(1, 1, 1)},
		{"from inside", vecmath.New(1, 2, 3), vecmath.New(0.3, 0.4, 0.5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit := assertIntersectOnSurface(t, s, vecmath.NewRay(c.origin, c.dir))
			require.True(t, hit.Ok(), "expected a hit")
		})
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	s, err := NewSphere(vecmath.New(0, 0, 0), 1)
	require.NoError(t, err)
	hit := s.Intersect(vecmath.NewRay(vecmath.New(10, 10, 10), vecmath.New(1, 0, 0)))
	assert.False(t, hit.Ok())
}

func TestSphereContains(t *testing.T) {
	s, err := NewSphere(vecmath.New(0, 0, 0), 2)
	require.NoError(t, err)
	assert.True(t, s.Contains(vecmath.New(0, 0, 0), 1e-9))
	assert.True(t, s.Contains(vecmath.New(2, 0, 0), 1e-9), "on the boundary")
	assert.False(t, s.Contains(vecmath.New(3, 0, 0), 1e-9))
}

func TestSphereBoundingBox(t *testing.T) {
	s, err := NewSphere(vecmath.New(1, 2, 3), 2)
	require.NoError(t, err)
	box := s.BoundingBox()
	assert.Equal(t, vecmath.New(-1, 0, 1), box.Min)
	assert.Equal(t, vecmath.New(3, 4, 5), box.Max)
}
