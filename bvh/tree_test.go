package bvh_test

import (
	"testing"

	"github.com/inkwell3d/inkwell/bvh"
	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(min, max vecmath.Vector) vecmath.AABB {
	return vecmath.NewAABB(min, max)
}

func TestEmptyTreeNoHit(t *testing.T) {
	tree := bvh.Build(nil)
	hit := tree.Query(vecmath.NewRay(vecmath.New(0, 0, 0), vecmath.New(1, 0, 0)))
	assert.False(t, hit.Ok())
}

func TestQueryFindsNearest(t *testing.T) {
	near := box(vecmath.New(1, -1, -1), vecmath.New(2, 1, 1))
	far := box(vecmath.New(5, -1, -1), vecmath.New(6, 1, 1))

	tree := bvh.Build([]bvh.Intersectable{far, near})
	hit := tree.Query(vecmath.NewRay(vecmath.New(0, 0, 0), vecmath.New(1, 0, 0)))
	require.True(t, hit.Ok())
	assert.InDelta(t, 1.0, hit.T, 1e-9)
}

func TestQueryManyItemsMedianSplit(t *testing.T) {
	var items []bvh.Intersectable
	for i := 0; i < 50; i++ {
		x := float64(i) * 3
		items = append(items, box(vecmath.New(x, -0.5, -0.5), vecmath.New(x+1, 0.5, 0.5)))
	}
	tree := bvh.Build(items)
	hit := tree.Query(vecmath.NewRay(vecmath.New(-10, 0, 0), vecmath.New(1, 0, 0)))
	require.True(t, hit.Ok())
	assert.InDelta(t, 10.0, hit.T, 1e-9)
}
