// Package sceneio (de)serializes the tagged scene-description tree named
// in spec.md §6 as YAML, using gopkg.in/yaml.v3, the format the rest of
// the retrieved corpus (cogentcore-core, gazed-vu) uses for declarative
// asset manifests.
package sceneio

// Document is the top-level scene description: a flat list of top-level
// shape nodes and the default camera to render them with.
type Document struct {
	Camera CameraSpec `yaml:"camera"`
	Shapes []Node     `yaml:"shapes"`
}

// CameraSpec mirrors the camera and sampling fields of
// Scene.Render/RenderOptions (every field except Workers).
type CameraSpec struct {
	Eye     [3]float64 `yaml:"eye"`
	Center  [3]float64 `yaml:"center"`
	Up      [3]float64 `yaml:"up"`
	FovyDeg float64    `yaml:"fovy_deg"`
	ZNear   float64    `yaml:"znear"`
	ZFar    float64    `yaml:"zfar"`
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Step    float64    `yaml:"step"`
}

// Node is a tagged union over every shape kind named in spec.md §4.C-4.F,
// flattened into one struct (rather than a Go-level interface per kind)
// so yaml.v3 can unmarshal it without a custom UnmarshalYAML hook: Kind
// selects which of the other fields build.go consults.
type Node struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name,omitempty"`

	// Sphere, Cube
	Center [3]float64 `yaml:"center,omitempty"`
	Radius float64    `yaml:"radius,omitempty"`
	Min    [3]float64 `yaml:"min,omitempty"`
	Max    [3]float64 `yaml:"max,omitempty"`
	Striped     bool  `yaml:"striped,omitempty"`
	StripeCount int   `yaml:"stripe_count,omitempty"`

	// Cylinder, Cone: axis endpoints
	V0 [3]float64 `yaml:"v0,omitempty"`
	V1 [3]float64 `yaml:"v1,omitempty"`

	// Triangle: the three vertices. V1 is shared with Cylinder/Cone's
	// second axis endpoint field (a node is only ever one kind), but V0
	// is not reused here so a triangle node never silently drops a vertex.
	V2 [3]float64 `yaml:"v2,omitempty"`
	V3 [3]float64 `yaml:"v3,omitempty"`

	// Shared texture knobs (sphere/cylinder/cone)
	Texture string `yaml:"texture,omitempty"`
	Lines   int    `yaml:"lines,omitempty"`
	Samples int    `yaml:"samples,omitempty"`
	Seed    uint64 `yaml:"seed,omitempty"`

	// Mesh: either an external OBJ file or inline vertex/face data
	Obj      string       `yaml:"obj,omitempty"`
	Vertices [][3]float64 `yaml:"vertices,omitempty"`
	Faces    [][3]int     `yaml:"faces,omitempty"`

	// Function
	Grid      [][]float64 `yaml:"grid,omitempty"`
	N         int         `yaml:"n,omitempty"`
	MinXY     [2]float64  `yaml:"min_xy,omitempty"`
	MaxXY     [2]float64  `yaml:"max_xy,omitempty"`
	MinZ      float64     `yaml:"min_z,omitempty"`
	MaxZ      float64     `yaml:"max_z,omitempty"`
	Direction string      `yaml:"direction,omitempty"`
	Step      float64     `yaml:"step,omitempty"`

	// Transformation
	Matrix []MatrixOp `yaml:"matrix,omitempty"`
	Child  *Node      `yaml:"child,omitempty"`

	// Difference, Intersection
	Children []Node `yaml:"children,omitempty"`
}

// MatrixOp is one step of a transform node's composition chain, applied in
// list order (the first op is applied to the child first).
type MatrixOp struct {
	Op       string     `yaml:"op"`
	V        [3]float64 `yaml:"v,omitempty"`
	Axis     [3]float64 `yaml:"axis,omitempty"`
	AngleDeg float64    `yaml:"angle_deg,omitempty"`
}
