package sceneio

import (
	"fmt"
	"math"

	"github.com/inkwell3d/inkwell"
	"github.com/inkwell3d/inkwell/meshio"
	"github.com/inkwell3d/inkwell/shape"
	"github.com/inkwell3d/inkwell/vecmath"
)

func vec(a [3]float64) vecmath.Vector { return vecmath.New(a[0], a[1], a[2]) }

// BuildScene constructs a *inkwell.Scene from a parsed Document.
func BuildScene(doc Document) (*inkwell.Scene, error) {
	s := inkwell.NewScene()
	for i, n := range doc.Shapes {
		sh, err := BuildShape(n)
		if err != nil {
			return nil, fmt.Errorf("sceneio: shapes[%d]: %w", i, err)
		}
		s.Add(sh)
	}
	return s, nil
}

// RenderOptions converts a Document's camera block into inkwell.RenderOptions.
func (d Document) RenderOptions() inkwell.RenderOptions {
	return inkwell.RenderOptions{
		Eye: vec(d.Camera.Eye), Center: vec(d.Camera.Center), Up: vec(d.Camera.Up),
		Width: d.Camera.Width, Height: d.Camera.Height,
		FovyDeg: d.Camera.FovyDeg, ZNear: d.Camera.ZNear, ZFar: d.Camera.ZFar,
		Step: d.Camera.Step,
	}
}

// BuildShape recursively constructs one shape.Shape from a Node.
func BuildShape(n Node) (shape.Shape, error) {
	switch n.Kind {
	case "sphere":
		return buildSphere(n)
	case "cube":
		return buildCube(n)
	case "cylinder":
		return buildCylinder(n)
	case "cone":
		return buildCone(n)
	case "triangle":
		return shape.NewTriangle(vec(n.V1), vec(n.V2), vec(n.V3)), nil
	case "mesh":
		return buildMesh(n)
	case "function":
		return buildFunction(n)
	case "transform":
		return buildTransform(n)
	case "difference":
		return buildCSG(n, func(cs ...shape.Shape) (shape.Shape, error) { return shape.NewDifference(cs...) })
	case "intersection":
		return buildCSG(n, func(cs ...shape.Shape) (shape.Shape, error) { return shape.NewIntersection(cs...) })
	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
}

func buildSphere(n Node) (shape.Shape, error) {
	s, err := shape.NewSphere(vec(n.Center), n.Radius)
	if err != nil {
		return nil, err
	}
	switch n.Texture {
	case "great_circles":
		s.Texture = shape.SphereTextureGreatCircles
	case "small_circles":
		s.Texture = shape.SphereTextureSmallCircles
	case "dots":
		s.Texture = shape.SphereTextureDots
	}
	if n.Lines > 0 {
		s.Lines = n.Lines
	}
	if n.Samples > 0 {
		s.Samples = n.Samples
	}
	s.TextureSeed = n.Seed
	return s, nil
}

func buildCube(n Node) (shape.Shape, error) {
	c, err := shape.NewCube(vec(n.Min), vec(n.Max))
	if err != nil {
		return nil, err
	}
	c.Striped = n.Striped
	if n.StripeCount > 0 {
		c.StripeCount = n.StripeCount
	}
	return c, nil
}

func buildCylinder(n Node) (shape.Shape, error) {
	c, err := shape.NewCylinder(n.Radius, vec(n.V0), vec(n.V1))
	if err != nil {
		return nil, err
	}
	if n.Lines > 0 {
		c.LineCount = n.Lines
	}
	if n.Samples > 0 {
		c.Samples = n.Samples
	}
	return c, nil
}

func buildCone(n Node) (shape.Shape, error) {
	c, err := shape.NewCone(n.Radius, vec(n.V0), vec(n.V1))
	if err != nil {
		return nil, err
	}
	if n.Lines > 0 {
		c.LineCount = n.Lines
	}
	if n.Samples > 0 {
		c.Samples = n.Samples
	}
	return c, nil
}

func buildMesh(n Node) (shape.Shape, error) {
	if n.Obj != "" {
		return meshio.Load(n.Obj)
	}
	verts := make([]vecmath.Vector, len(n.Vertices))
	for i, v := range n.Vertices {
		verts[i] = vec(v)
	}
	return shape.NewMesh(verts, n.Faces)
}

func buildFunction(n Node) (shape.Shape, error) {
	n2 := n.N
	if n2 == 0 {
		n2 = len(n.Grid) - 1
	}
	fn, err := shape.NewFunction(nil, n.Grid, n2, n.MinXY, n.MaxXY, n.MinZ, n.MaxZ)
	if err != nil {
		return nil, err
	}
	if n.Direction == "above" {
		fn.Direction = shape.FunctionAbove
	}
	fn.Step = n.Step
	return fn, nil
}

func buildTransform(n Node) (shape.Shape, error) {
	if n.Child == nil {
		return nil, fmt.Errorf("transform node needs a child")
	}
	child, err := BuildShape(*n.Child)
	if err != nil {
		return nil, err
	}
	m := vecmath.Identity()
	for _, op := range n.Matrix {
		var step vecmath.Matrix
		switch op.Op {
		case "translate":
			step = vecmath.Translate(vec(op.V))
		case "scale":
			step = vecmath.Scale(vec(op.V))
		case "rotate":
			step = vecmath.Rotate(vec(op.Axis), op.AngleDeg*math.Pi/180)
		default:
			return nil, fmt.Errorf("unknown matrix op %q", op.Op)
		}
		m = vecmath.Compose(step, m)
	}
	return shape.NewTransformedShape(child, m)
}

func buildCSG(n Node, ctor func(...shape.Shape) (shape.Shape, error)) (shape.Shape, error) {
	if len(n.Children) < 2 {
		return nil, fmt.Errorf("%s node needs at least 2 children, got %d", n.Kind, len(n.Children))
	}
	children := make([]shape.Shape, len(n.Children))
	for i, c := range n.Children {
		sh, err := BuildShape(c)
		if err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}
		children[i] = sh
	}
	return ctor(children...)
}
