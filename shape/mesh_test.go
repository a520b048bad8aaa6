package shape

import (
	"testing"

	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad builds two coplanar triangles sharing the diagonal edge, so the
// diagonal should be suppressed from Paths while the four outer edges
// remain.
func quad() *Mesh {
	verts := []vecmath.Vector{
		vecmath.New(0, 0, 0),
		vecmath.New(1, 0, 0),
		vecmath.New(1, 1, 0),
		vecmath.New(0, 1, 0),
	}
	faces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	m, err := NewMesh(verts, faces)
	if err != nil {
		panic(err)
	}
	return m
}

func TestMeshRejectsOutOfRangeFace(t *testing.T) {
	_, err := NewMesh([]vecmath.Vector{vecmath.New(0, 0, 0)}, [][3]int{{0, 1, 2}})
	require.ErrorIs(t, err, ErrConstruction)
}

func TestMeshSuppressesCoplanarSharedEdge(t *testing.T) {
	m := quad()
	require.NoError(t, m.Compile())

	p := m.Paths()
	total := 0
	for _, line := range p.Lines {
		total += len(line) - 1
	}
	assert.Equal(t, 4, total, "shared diagonal must be suppressed, leaving the 4 outer edges")
}

func TestMeshIntersectHitsTree(t *testing.T) {
	m := quad()
	require.NoError(t, m.Compile())

	r := vecmath.NewRay(vecmath.New(0.3, 0.3, -5), vecmath.New(0, 0, 1))
	hit := m.Intersect(r)
	require.True(t, hit.Ok())
	assert.InDelta(t, 5, hit.T, 1e-9)
	assert.Equal(t, m, hit.Shape)
}

func TestMeshIntersectMiss(t *testing.T) {
	m := quad()
	require.NoError(t, m.Compile())

	r := vecmath.NewRay(vecmath.New(10, 10, -5), vecmath.New(0, 0, 1))
	assert.False(t, m.Intersect(r).Ok())
}

func TestMeshContainsAlwaysFalse(t *testing.T) {
	m := quad()
	require.NoError(t, m.Compile())
	assert.False(t, m.Contains(vecmath.New(0.5, 0.5, 0), 1e-6))
}
