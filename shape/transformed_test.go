package shape

import (
	"testing"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cameraMatrix builds a view-projection matrix the way Scene.Render does,
// without importing the root package (which itself imports shape).
func cameraMatrix(eye, center, up vecmath.Vector) vecmath.Matrix {
	proj := vecmath.Perspective(50, 1, 0.1, 100)
	view := vecmath.LookAt(eye, center, up)
	return vecmath.Compose(proj, view)
}

func assertPathsEqual(t *testing.T, a, b paths.Paths, eps float64) {
	t.Helper()
	require.Equal(t, len(a.Lines), len(b.Lines))
	for i := range a.Lines {
		require.Equal(t, len(a.Lines[i]), len(b.Lines[i]), "line %d length", i)
		for j := range a.Lines[i] {
			assert.InDelta(t, a.Lines[i][j][0], b.Lines[i][j][0], eps, "line %d point %d x", i, j)
			assert.InDelta(t, a.Lines[i][j][1], b.Lines[i][j][1], eps, "line %d point %d y", i, j)
			assert.InDelta(t, a.Lines[i][j][2], b.Lines[i][j][2], eps, "line %d point %d z", i, j)
		}
	}
}

// TestTransformedShapeTranslationEquivariance checks that translating a
// shape in world space and rendering it from a fixed camera produces the
// same 2D path set as leaving the shape alone and shifting the camera's
// eye and center by the opposite translation: shifting both the object and
// the camera by the same vector is a passive change of coordinates, so the
// projected image does not move.
func TestTransformedShapeTranslationEquivariance(t *testing.T) {
	sphere, err := NewSphere(vecmath.New(0, 0, 0), 1)
	require.NoError(t, err)

	d := vecmath.New(2, -1, 3)
	translated, err := NewTransformedShape(sphere, vecmath.Translate(d))
	require.NoError(t, err)
	require.NoError(t, translated.Compile())

	eye := vecmath.New(0, 0, 10)
	center := vecmath.New(0, 0, 0)
	up := vecmath.New(0, 1, 0)

	vpFixed := cameraMatrix(eye, center, up)
	vpShifted := cameraMatrix(eye.Sub(d), center.Sub(d), up)

	gotTranslatedObject := translated.Paths().Project(vpFixed)
	gotShiftedCamera := sphere.Paths().Project(vpShifted)

	assertPathsEqual(t, gotTranslatedObject, gotShiftedCamera, 1e-6)
}

func TestTransformedShapeIntersectEquivariance(t *testing.T) {
	sphere, err := NewSphere(vecmath.New(0, 0, 0), 1)
	require.NoError(t, err)
	require.NoError(t, sphere.Compile())

	d := vecmath.New(5, 0, 0)
	translated, err := NewTransformedShape(sphere, vecmath.Translate(d))
	require.NoError(t, err)
	require.NoError(t, translated.Compile())

	r := vecmath.NewRay(vecmath.New(5, 0, -10), vecmath.New(0, 0, 1))
	hit := assertIntersectOnSurface(t, translated, r)
	require.True(t, hit.Ok())
	assert.InDelta(t, 9, hit.T, 1e-9)
}

func TestTransformedShapeContainsMatchesChildInLocalSpace(t *testing.T) {
	cube, err := NewCube(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	require.NoError(t, err)

	scaled, err := NewTransformedShape(cube, vecmath.Scale(vecmath.New(2, 2, 2)))
	require.NoError(t, err)
	require.NoError(t, scaled.Compile())

	assert.True(t, scaled.Contains(vecmath.New(1.9, 0, 0), 1e-9))
	assert.False(t, scaled.Contains(vecmath.New(2.1, 0, 0), 1e-9))
}

func TestNewTransformedShapeRejectsSingularMatrix(t *testing.T) {
	cube, err := NewCube(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	require.NoError(t, err)

	_, err = NewTransformedShape(cube, vecmath.Scale(vecmath.New(0, 1, 1)))
	require.ErrorIs(t, err, ErrConstruction)
}
