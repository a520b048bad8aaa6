// Package shape implements the uniform shape contract (compile, bounding
// box, containment, ray intersection, surface paths) and the primitives,
// CSG nodes, mesh, and affine wrapper that all satisfy it. Transparent
// composition is the point: a CSG node's children, a transform's child, and
// a scene's top-level shapes are all just Shape values.
package shape

import (
	"github.com/google/uuid"
	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
)

// Shape is the contract every primitive, transform wrapper, mesh, and CSG
// node satisfies. Compile must be idempotent; calling it twice must be
// cheap and must not rebuild internal acceleration structures.
type Shape interface {
	// ID uniquely identifies this shape node, so a Hit can carry a stable
	// reference and so scene-description tooling can cross-reference nodes.
	ID() uuid.UUID

	// Compile performs idempotent preparation (e.g. building a mesh's
	// internal AABB tree, or precomputing a transform's inverse). Most
	// primitives no-op.
	Compile() error

	// BoundingBox returns a finite enclosing box. For unbounded primitives
	// (e.g. a functional height field) this is the user-supplied clipping
	// domain.
	BoundingBox() vecmath.AABB

	// Contains reports whether p lies inside the closed solid, within eps.
	// Only meaningful for shapes that participate in CSG.
	Contains(p vecmath.Vector, eps float64) bool

	// Intersect returns the nearest surface intersection with t > eps, or
	// vecmath.NoHit.
	Intersect(r vecmath.Ray) vecmath.Hit

	// Paths returns the set of 3D polylines depicting this shape's visible
	// surface features.
	Paths() paths.Paths
}

// base supplies the ID() method and a stable UUID to every concrete shape
// via embedding, mirroring the teacher's AssetId(uuid.NewString()) identity
// pattern (mod_assets.go) generalized to shape nodes instead of assets.
type base struct {
	id uuid.UUID
}

func newBase() base {
	return base{id: uuid.New()}
}

func (b base) ID() uuid.UUID { return b.id }

// Eps is the default intersection epsilon below which a root is rejected as
// self-intersection noise.
const Eps = 1e-6

// ContainsEps is the default CSG containment tolerance (spec.md §4.F): a
// point lying exactly on a surface must not be spuriously excluded from the
// surface's own solid.
const ContainsEps = 1e-9
