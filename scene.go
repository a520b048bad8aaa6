package inkwell

import (
	"runtime"
	"sync"

	"github.com/inkwell3d/inkwell/bvh"
	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/shape"
	"github.com/inkwell3d/inkwell/vecmath"
)

// visibilityEps guards against self-occlusion: a hit this close to the
// camera along the shadow ray is not treated as an occluder.
const visibilityEps = 1e-9

// Scene owns a list of top-level shapes, a lazily-built acceleration tree
// over them, and a compiled flag. Add after a Render invalidates both.
type Scene struct {
	shapes   []shape.Shape
	tree     *bvh.Tree
	compiled bool
	logger   Logger
}

// NewScene returns an empty Scene.
func NewScene() *Scene {
	return &Scene{logger: NewNopLogger()}
}

// SetLogger installs l as the scene's diagnostic sink. A nil l restores the
// no-op logger.
func (s *Scene) SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	s.logger = l
}

// Add appends shapes to the scene and invalidates the compiled flag, so the
// next Render recompiles every shape and rebuilds the tree from scratch.
func (s *Scene) Add(shapes ...shape.Shape) {
	s.shapes = append(s.shapes, shapes...)
	s.compiled = false
	s.tree = nil
}

func (s *Scene) compile() error {
	if s.compiled {
		return nil
	}
	s.logger.Debugf("compiling %d shapes", len(s.shapes))
	for _, sh := range s.shapes {
		if err := sh.Compile(); err != nil {
			return err
		}
	}
	items := make([]bvh.Intersectable, len(s.shapes))
	for i, sh := range s.shapes {
		items[i] = sh
	}
	s.tree = bvh.Build(items)
	s.compiled = true
	s.logger.Debugf("rebuilt scene tree over %d shapes", len(s.shapes))
	return nil
}

// RenderOptions carries the render pipeline's camera and sampling
// parameters. The nine parameters spec.md names directly (Eye, Center, Up,
// Width, Height, FovyDeg, ZNear, ZFar, Step) are all here as named fields;
// Workers lets a caller bound parallelism for the visibility pass (0 means
// GOMAXPROCS).
type RenderOptions struct {
	Eye, Center, Up vecmath.Vector
	Width, Height   int
	FovyDeg         float64
	ZNear, ZFar     float64
	Step            float64
	Workers         int
}

func (o RenderOptions) matrix() vecmath.Matrix {
	aspect := float64(o.Width) / float64(o.Height)
	proj := vecmath.Perspective(o.FovyDeg, aspect, o.ZNear, o.ZFar)
	view := vecmath.LookAt(o.Eye, o.Center, o.Up)
	return vecmath.Compose(proj, view)
}

// Render runs the full pipeline of spec.md §4.H: compile, gather paths,
// chop, cull occluded samples, project, clip, and map to the viewport.
// Calling Render twice with identical Scene state and RenderOptions
// produces identical output, since compile/build only happen once and the
// rest of the pipeline is pure.
func (s *Scene) Render(opts RenderOptions) (paths.Paths, error) {
	if len(s.shapes) == 0 {
		return paths.New(), nil
	}
	if err := s.compile(); err != nil {
		return paths.New(), err
	}

	gathered := paths.New()
	for _, sh := range s.shapes {
		gathered.Append(sh.Paths())
	}

	chopped := gathered.Chop(opts.Step)
	visible := s.visibilityPass(chopped, opts)

	m := opts.matrix()
	projected := visible.Project(m)
	depthFiltered := projected.FilterDepth()
	clipped := depthFiltered.FilterToUnitRect()
	return clipped.Viewport(float64(opts.Width), float64(opts.Height)), nil
}

// visibilityPass splits each chopped polyline into maximal runs of points
// visible from opts.Eye, processing disjoint slices of the polyline slice
// concurrently. Each worker writes only into its own pre-sized output
// slot, so the fan-in needs no lock.
func (s *Scene) visibilityPass(p paths.Paths, opts RenderOptions) paths.Paths {
	lines := p.Lines
	results := make([]paths.Paths, len(lines))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers < 1 {
		return paths.New()
	}

	chunk := (len(lines) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(lines) {
			break
		}
		if end > len(lines) {
			end = len(lines)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = s.visibleRuns(lines[i], opts.Eye)
			}
		}(start, end)
	}
	wg.Wait()

	out := paths.New()
	for _, r := range results {
		out.Append(r)
	}
	return out
}

// visibleRuns splits a single polyline into maximal sub-polylines whose
// points are all visible from eye.
func (s *Scene) visibleRuns(line paths.Polyline, eye vecmath.Vector) paths.Paths {
	out := paths.New()
	var run paths.Polyline
	for _, p := range line {
		if s.pointVisible(p, eye) {
			run = append(run, p)
		} else {
			out.AddLine(run)
			run = nil
		}
	}
	out.AddLine(run)
	return out
}

// pointVisible reports whether nothing lies strictly between p and eye.
func (s *Scene) pointVisible(p, eye vecmath.Vector) bool {
	toEye := eye.Sub(p)
	dist := toEye.Len()
	if dist < visibilityEps {
		return true
	}
	r := vecmath.NewRay(p, toEye)
	hit := s.tree.Query(r)
	if !hit.Ok() {
		return true
	}
	return !(hit.T+visibilityEps < dist)
}
