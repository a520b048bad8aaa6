// Package bvh builds a median-split bounding-volume hierarchy over any
// collection of ray-intersectable, boxed items, and answers nearest-hit
// queries against it in ordered, near-child-first traversal. It is kept
// independent of the shape package (it depends only on vecmath) so that the
// same tree implementation serves both the top-level scene tree and a
// mesh's internal per-triangle tree without an import cycle: any type that
// implements Intersectable — including shape.Shape — can be indexed.
//
// Grounded on the teacher's voxelrt/rt/bvh.TLASBuilder (median-split over
// AABB centroids, leaf size 1) and generalized from a fixed-size byte
// encoding to an in-memory tree of arbitrary items.
package bvh

import (
	"sort"

	"github.com/inkwell3d/inkwell/vecmath"
)

// Intersectable is anything that can be bounded and probed by a ray. A
// shape.Shape value satisfies this interface structurally.
type Intersectable interface {
	BoundingBox() vecmath.AABB
	Intersect(r vecmath.Ray) vecmath.Hit
}

type node struct {
	box         vecmath.AABB
	left, right *node
	item        Intersectable // non-nil only at a leaf
}

// Tree is an immutable BVH over a fixed set of items, built once and
// queried many times.
type Tree struct {
	root *node
}

// Build constructs a tree over items via median split along the axis of
// greatest centroid spread, with leaf size 1. An empty item list yields a
// tree whose Query always reports no hit.
func Build(items []Intersectable) *Tree {
	if len(items) == 0 {
		return &Tree{}
	}
	entries := make([]entry, len(items))
	for i, it := range items {
		box := it.BoundingBox()
		entries[i] = entry{item: it, box: box, centroid: box.Center()}
	}
	return &Tree{root: buildRecursive(entries)}
}

type entry struct {
	item     Intersectable
	box      vecmath.AABB
	centroid vecmath.Vector
}

func buildRecursive(entries []entry) *node {
	box := entries[0].box
	for _, e := range entries[1:] {
		box = box.Union(e.box)
	}

	if len(entries) == 1 {
		return &node{box: box, item: entries[0].item}
	}

	extent := box.Size()
	axis := 0
	if extent[1] > extent[axis] {
		axis = 1
	}
	if extent[2] > extent[axis] {
		axis = 2
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].centroid[axis] < entries[j].centroid[axis]
	})

	mid := len(entries) / 2
	return &node{
		box:   box,
		left:  buildRecursive(entries[:mid]),
		right: buildRecursive(entries[mid:]),
	}
}

// Query returns the nearest hit along r, or vecmath.NoHit if nothing in the
// tree is struck. Traversal visits the nearer child first and prunes the
// farther child once its slab entry distance exceeds the best hit found so
// far, so it never prefers a farther hit over a nearer one.
func (t *Tree) Query(r vecmath.Ray) vecmath.Hit {
	if t == nil || t.root == nil {
		return vecmath.NoHit
	}
	best := vecmath.NoHit
	queryRecursive(t.root, r, &best)
	return best
}

func queryRecursive(n *node, r vecmath.Ray, best *vecmath.Hit) {
	if n == nil {
		return
	}
	tEnter, tExit, ok := n.box.IntersectRay(r)
	if !ok || tExit < 0 {
		return
	}
	if tEnter > best.T {
		return
	}

	if n.item != nil {
		h := n.item.Intersect(r)
		if h.Ok() && h.T < best.T {
			*best = h
		}
		return
	}

	leftEnter, _, leftOk := boxEnter(n.left, r)
	rightEnter, _, rightOk := boxEnter(n.right, r)

	first, second := n.left, n.right
	firstOk, secondOk := leftOk, rightOk
	firstEnter, secondEnter := leftEnter, rightEnter
	if rightOk && (!leftOk || rightEnter < leftEnter) {
		first, second = n.right, n.left
		firstOk, secondOk = rightOk, leftOk
		firstEnter, secondEnter = rightEnter, leftEnter
	}

	if firstOk {
		queryRecursive(first, r, best)
	}
	if secondOk && secondEnter <= best.T {
		queryRecursive(second, r, best)
	}
}

func boxEnter(n *node, r vecmath.Ray) (float64, float64, bool) {
	if n == nil {
		return 0, 0, false
	}
	return n.box.IntersectRay(r)
}
