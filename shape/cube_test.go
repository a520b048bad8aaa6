package shape

import (
	"testing"

	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeRejectsInvertedBounds(t *testing.T) {
	_, err := NewCube(vecmath.New(1, 0, 0), vecmath.New(0, 1, 1))
	require.ErrorIs(t, err, ErrConstruction)
}

func TestCubeIntersectSatisfiesContainsInvariant(t *testing.T) {
	c, err := NewCube(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	require.NoError(t, err)

	cases := []struct {
		name   string
		origin vecmath.Vector
		dir    vecmath.Vector
	}{
		{"through a face along x", vecmath.New(-5, 0, 0), vecmath.New(1, 0, 0)},
		{"through a face along y", vecmath.New(0, -5, 0), vecmath.New(0, 1, 0)},
		{"through a corner diagonal", vecmath.New(-5, -5, -5), vecmath.New(1, 1, 1)},
		{"from inside outward", vecmath.New(0, 0, 0), vecmath.New(0, 0, 1)},
	}
	for _, c2 := range cases {
		t.Run(c2.name, func(t *testing.T) {
			hit := assertIntersectOnSurface(t, c, vecmath.NewRay(c2.origin, c2.dir))
			require.True(t, hit.Ok())
		})
	}
}

func TestCubeIntersectMiss(t *testing.T) {
	c, err := NewCube(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	require.NoError(t, err)
	hit := c.Intersect(vecmath.NewRay(vecmath.New(10, 10, 10), vecmath.New(0, 0, 1)))
	assert.False(t, hit.Ok())
}

func TestCubeContains(t *testing.T) {
	c, err := NewCube(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	require.NoError(t, err)
	assert.True(t, c.Contains(vecmath.New(0, 0, 0), 1e-9))
	assert.True(t, c.Contains(vecmath.New(1, 1, 1), 1e-9), "on the boundary")
	assert.False(t, c.Contains(vecmath.New(2, 0, 0), 1e-9))
}
