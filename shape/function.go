package shape

import (
	"fmt"
	"math"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/texture"
	"github.com/inkwell3d/inkwell/vecmath"
)

// FunctionDirection selects which side of the height-field surface is
// solid. Below fills z <= f(x,y) within the bounding box; Above is its
// complement inside the box (spec.md §9's Open Question, resolved this
// way — see DESIGN.md).
type FunctionDirection int

const (
	FunctionBelow FunctionDirection = iota
	FunctionAbove
)

// Function is a bilinear-interpolated height field over a regular
// (N+1)x(N+1) sample grid, clipped to [MinZ,MaxZ] and to the XY rectangle
// [MinXY,MaxXY].
type Function struct {
	base
	F     func(x, y float64) float64 // may be nil if Grid is supplied directly
	Grid  [][]float64                // (N+1)x(N+1), row-major in x then y; built by Compile if F != nil
	N     int
	MinXY [2]float64
	MaxXY [2]float64
	MinZ  float64
	MaxZ  float64

	Direction FunctionDirection
	Step      float64 // ray-march step; defaults to bbox diagonal / 200
	LineCount int      // isoparametric grid density for Paths; defaults to N
}

// NewFunction validates and builds a Function. Exactly one of f or grid
// must be non-nil.
func NewFunction(f func(x, y float64) float64, grid [][]float64, n int, minXY, maxXY [2]float64, minZ, maxZ float64) (*Function, error) {
	if f == nil && grid == nil {
		return nil, fmt.Errorf("shape: function surface needs either a sampling function or a precomputed grid: %w", ErrConstruction)
	}
	if n < 1 {
		return nil, fmt.Errorf("shape: function surface grid resolution must be >= 1, got %d: %w", n, ErrConstruction)
	}
	if minXY[0] >= maxXY[0] || minXY[1] >= maxXY[1] {
		return nil, fmt.Errorf("shape: function surface XY domain must be non-degenerate: %w", ErrConstruction)
	}
	if minZ > maxZ {
		return nil, fmt.Errorf("shape: function surface z-range min must be <= max: %w", ErrConstruction)
	}
	return &Function{
		base: newBase(), F: f, Grid: grid, N: n, MinXY: minXY, MaxXY: maxXY, MinZ: minZ, MaxZ: maxZ,
	}, nil
}

// Compile precomputes the sample grid from F if one was not supplied
// directly. Idempotent: a second call is a no-op once Grid is populated.
func (fn *Function) Compile() error {
	if fn.Grid != nil {
		return nil
	}
	grid := make([][]float64, fn.N+1)
	for i := 0; i <= fn.N; i++ {
		grid[i] = make([]float64, fn.N+1)
		x := fn.MinXY[0] + (fn.MaxXY[0]-fn.MinXY[0])*float64(i)/float64(fn.N)
		for j := 0; j <= fn.N; j++ {
			y := fn.MinXY[1] + (fn.MaxXY[1]-fn.MinXY[1])*float64(j)/float64(fn.N)
			grid[i][j] = fn.F(x, y)
		}
	}
	fn.Grid = grid
	return nil
}

func (fn *Function) BoundingBox() vecmath.AABB {
	return vecmath.AABB{
		Min: vecmath.New(fn.MinXY[0], fn.MinXY[1], fn.MinZ),
		Max: vecmath.New(fn.MaxXY[0], fn.MaxXY[1], fn.MaxZ),
	}
}

// heightAt returns the bilinear-interpolated surface height at (x,y),
// clamping to the sample domain.
func (fn *Function) heightAt(x, y float64) float64 {
	u := (x - fn.MinXY[0]) / (fn.MaxXY[0] - fn.MinXY[0]) * float64(fn.N)
	v := (y - fn.MinXY[1]) / (fn.MaxXY[1] - fn.MinXY[1]) * float64(fn.N)
	u = math.Max(0, math.Min(float64(fn.N), u))
	v = math.Max(0, math.Min(float64(fn.N), v))

	i0 := int(u)
	j0 := int(v)
	i1 := i0 + 1
	if i1 > fn.N {
		i1 = fn.N
	}
	j1 := j0 + 1
	if j1 > fn.N {
		j1 = fn.N
	}
	fu := u - float64(i0)
	fv := v - float64(j0)

	h00 := fn.Grid[i0][j0]
	h10 := fn.Grid[i1][j0]
	h01 := fn.Grid[i0][j1]
	h11 := fn.Grid[i1][j1]

	h0 := h00*(1-fu) + h10*fu
	h1 := h01*(1-fu) + h11*fu
	return h0*(1-fv) + h1*fv
}

func (fn *Function) Contains(p vecmath.Vector, eps float64) bool {
	if p[0] < fn.MinXY[0]-eps || p[0] > fn.MaxXY[0]+eps ||
		p[1] < fn.MinXY[1]-eps || p[1] > fn.MaxXY[1]+eps ||
		p[2] < fn.MinZ-eps || p[2] > fn.MaxZ+eps {
		return false
	}
	h := fn.heightAt(p[0], p[1])
	if fn.Direction == FunctionAbove {
		return p[2] >= h-eps
	}
	return p[2] <= h+eps
}

// signed returns z-h(x,y) at ray parameter t, and whether (x,y) lies inside
// the XY rectangle.
func (fn *Function) signed(r vecmath.Ray, t float64) (float64, bool) {
	p := r.At(t)
	if p[0] < fn.MinXY[0] || p[0] > fn.MaxXY[0] || p[1] < fn.MinXY[1] || p[1] > fn.MaxXY[1] {
		return 0, false
	}
	return p[2] - fn.heightAt(p[0], p[1]), true
}

// Intersect marches the ray in Step-sized increments across the bounding
// box, refines the first sign change of z-f(x,y) with a single bisection
// step, and reports the end of the halved bracket that lies on the solid
// side (per Direction), so the hit point satisfies Contains. Hits outside
// the box or the XY rectangle are discarded. Iterations
// are capped at bbox.diagonal/step so pathological rays never loop forever.
func (fn *Function) Intersect(r vecmath.Ray) vecmath.Hit {
	box := fn.BoundingBox()
	tEnter, tExit, ok := box.IntersectRay(r)
	if !ok {
		return vecmath.NoHit
	}
	if tEnter < Eps {
		tEnter = Eps
	}
	if tEnter >= tExit {
		return vecmath.NoHit
	}

	step := fn.Step
	if step <= 0 {
		step = box.Diagonal() / 200
		if step <= 0 {
			step = 1e-3
		}
	}
	maxIter := int(math.Ceil(box.Diagonal()/step)) + 2

	prevT := tEnter
	prevVal, prevIn := fn.signed(r, prevT)

	for i := 1; i <= maxIter; i++ {
		t := tEnter + step*float64(i)
		reachedEnd := t >= tExit
		if reachedEnd {
			t = tExit
		}
		val, in := fn.signed(r, t)

		if prevIn && in && sameSide(prevVal, val) == false {
			mid := (prevT + t) / 2
			midVal, midIn := fn.signed(r, mid)
			loT, loVal, hiT := prevT, prevVal, mid
			if midIn && sameSide(prevVal, midVal) {
				loT, loVal, hiT = mid, midVal, t
			}
			loSolid := loVal <= 0
			if fn.Direction == FunctionAbove {
				loSolid = loVal >= 0
			}
			resT := hiT
			if loSolid {
				resT = loT
			}
			if resT > Eps {
				return vecmath.Hit{T: resT, Shape: fn}
			}
		}

		prevT, prevVal, prevIn = t, val, in
		if reachedEnd {
			break
		}
	}
	return vecmath.NoHit
}

func sameSide(a, b float64) bool {
	if a == 0 || b == 0 {
		return true
	}
	return (a < 0) == (b < 0)
}

func (fn *Function) Paths() paths.Paths {
	n := fn.LineCount
	if n < 1 {
		n = fn.N
	}
	return texture.FunctionGrid(fn.heightAt, fn.MinXY, fn.MaxXY, n)
}
