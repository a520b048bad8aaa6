package shape

import (
	"fmt"

	"github.com/inkwell3d/inkwell/bvh"
	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
)

// coplanarCosine is the face-normal dot-product threshold above which two
// triangles sharing an edge are treated as coplanar and that edge is
// suppressed from Paths (roughly 1 degree of angular tolerance).
const coplanarCosine = 0.9999

// Mesh is a shared-vertex triangle collection with an internal AABB tree
// for accelerated ray queries, and coplanar-adjacent edge suppression in
// Paths so smooth silhouettes don't draw every individual triangle edge.
type Mesh struct {
	base
	Vertices []vecmath.Vector
	Faces    [][3]int

	triangles  []*Triangle
	tree       *bvh.Tree
	suppressed map[[2]int]bool
	compiled   bool
}

// NewMesh validates face indices and builds a Mesh.
func NewMesh(vertices []vecmath.Vector, faces [][3]int) (*Mesh, error) {
	for _, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("shape: mesh face references out-of-range vertex %d: %w", idx, ErrConstruction)
			}
		}
	}
	return &Mesh{base: newBase(), Vertices: vertices, Faces: faces}, nil
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func (m *Mesh) faceNormal(f [3]int) vecmath.Vector {
	v0, v1, v2 := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	return vecmath.Normalize(v1.Sub(v0).Cross(v2.Sub(v0)))
}

// Compile builds the triangle list, the per-triangle AABB tree, and the
// coplanar-edge suppression set. Idempotent.
func (m *Mesh) Compile() error {
	if m.compiled {
		return nil
	}

	m.triangles = make([]*Triangle, len(m.Faces))
	items := make([]bvh.Intersectable, len(m.Faces))
	for i, f := range m.Faces {
		tri := NewTriangle(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
		m.triangles[i] = tri
		items[i] = tri
	}
	m.tree = bvh.Build(items)

	edgeNormals := make(map[[2]int][]vecmath.Vector)
	for _, f := range m.Faces {
		n := m.faceNormal(f)
		edges := [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}}
		for _, e := range edges {
			key := edgeKey(e[0], e[1])
			edgeNormals[key] = append(edgeNormals[key], n)
		}
	}
	m.suppressed = make(map[[2]int]bool)
	for key, normals := range edgeNormals {
		if len(normals) == 2 && normals[0].Dot(normals[1]) > coplanarCosine {
			m.suppressed[key] = true
		}
	}

	m.compiled = true
	return nil
}

func (m *Mesh) BoundingBox() vecmath.AABB {
	box := vecmath.EmptyAABB()
	for _, v := range m.Vertices {
		box = box.Union(vecmath.AABB{Min: v, Max: v})
	}
	return box
}

func (m *Mesh) Contains(p vecmath.Vector, eps float64) bool { return false }

// Intersect is tree-accelerated: the minimum over every triangle's
// Intersect, reported as a hit on the mesh itself rather than on the
// individual triangle.
func (m *Mesh) Intersect(r vecmath.Ray) vecmath.Hit {
	if m.tree == nil {
		return vecmath.NoHit
	}
	hit := m.tree.Query(r)
	if !hit.Ok() {
		return vecmath.NoHit
	}
	hit.Shape = m
	return hit
}

func (m *Mesh) Paths() paths.Paths {
	out := paths.New()
	visited := make(map[[2]int]bool)
	for _, f := range m.Faces {
		edges := [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}}
		for _, e := range edges {
			key := edgeKey(e[0], e[1])
			if m.suppressed[key] || visited[key] {
				continue
			}
			visited[key] = true
			out.Add(m.Vertices[e[0]], m.Vertices[e[1]])
		}
	}
	return out
}
