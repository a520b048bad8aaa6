package shape

import (
	"testing"

	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatGrid builds an (n+1)x(n+1) sample grid of constant height, so the
// resulting surface is the plane z=height over the whole domain.
func flatGrid(n int, height float64) [][]float64 {
	grid := make([][]float64, n+1)
	for i := range grid {
		grid[i] = make([]float64, n+1)
		for j := range grid[i] {
			grid[i][j] = height
		}
	}
	return grid
}

func TestNewFunctionRequiresSamplerOrGrid(t *testing.T) {
	_, err := NewFunction(nil, nil, 2, [2]float64{0, 0}, [2]float64{4, 4}, 0, 2)
	require.ErrorIs(t, err, ErrConstruction)
}

func TestFunctionIntersectSatisfiesContainsInvariant(t *testing.T) {
	fn, err := NewFunction(nil, flatGrid(4, 1), 4, [2]float64{0, 0}, [2]float64{4, 4}, 0, 2)
	require.NoError(t, err)
	require.NoError(t, fn.Compile())

	cases := []struct {
		name   string
		origin vecmath.Vector
		dir    vecmath.Vector
	}{
		{"from above, straight down", vecmath.New(2, 2, 5), vecmath.New(0, 0, -1)},
		{"from above off-center, straight down", vecmath.New(1, 3, 5), vecmath.New(0, 0, -1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := vecmath.NewRay(c.origin, c.dir)
			hit := assertIntersectOnSurface(t, fn, r)
			require.True(t, hit.Ok())
			assert.InDelta(t, 1, r.At(hit.T)[2], 1e-2)
		})
	}
}

func TestFunctionIntersectMissOutsideXYDomain(t *testing.T) {
	fn, err := NewFunction(nil, flatGrid(4, 1), 4, [2]float64{0, 0}, [2]float64{4, 4}, 0, 2)
	require.NoError(t, err)
	require.NoError(t, fn.Compile())
	hit := fn.Intersect(vecmath.NewRay(vecmath.New(10, 10, 5), vecmath.New(0, 0, -1)))
	assert.False(t, hit.Ok())
}

func TestFunctionDirectionBelowContains(t *testing.T) {
	fn, err := NewFunction(nil, flatGrid(4, 1), 4, [2]float64{0, 0}, [2]float64{4, 4}, 0, 2)
	require.NoError(t, err)
	require.NoError(t, fn.Compile())

	assert.True(t, fn.Contains(vecmath.New(2, 2, 0.5), 1e-9), "below the surface, the default solid side")
	assert.False(t, fn.Contains(vecmath.New(2, 2, 1.5), 1e-9))
}

func TestFunctionDirectionAboveContains(t *testing.T) {
	fn, err := NewFunction(nil, flatGrid(4, 1), 4, [2]float64{0, 0}, [2]float64{4, 4}, 0, 2)
	require.NoError(t, err)
	fn.Direction = FunctionAbove
	require.NoError(t, fn.Compile())

	assert.True(t, fn.Contains(vecmath.New(2, 2, 1.5), 1e-9), "above the surface, now the solid side")
	assert.False(t, fn.Contains(vecmath.New(2, 2, 0.5), 1e-9))
}
