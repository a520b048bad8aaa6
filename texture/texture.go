// Package texture provides deterministic default-path generators for the
// primitive shapes: purely geometric rules for what "ink" a bare primitive
// draws, never pixel-level rendering. Every stochastic generator accepts an
// explicit seed so renders stay reproducible regardless of goroutine
// scheduling, per spec.md §5's shared-resource policy.
package texture

import (
	"math"
	"math/rand/v2"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
)

func rng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func spherePoint(center vecmath.Vector, radius, lat, lon float64) vecmath.Vector {
	x := radius * math.Cos(lat) * math.Cos(lon)
	y := radius * math.Cos(lat) * math.Sin(lon)
	z := radius * math.Sin(lat)
	return center.Add(vecmath.New(x, y, z))
}

// SphereLatLng draws nLat-1 latitude circles (the parallels strictly between
// the poles, pi/nLat apart) and nLon pole-to-pole meridians, each sampled at
// samples points.
func SphereLatLng(center vecmath.Vector, radius float64, nLat, nLon, samples int) paths.Paths {
	out := paths.New()
	for i := 1; i < nLat; i++ {
		lat := -math.Pi/2 + math.Pi*float64(i)/float64(nLat)
		line := make(paths.Polyline, 0, samples+1)
		for j := 0; j <= samples; j++ {
			lon := 2 * math.Pi * float64(j) / float64(samples)
			line = append(line, spherePoint(center, radius, lat, lon))
		}
		out.AddLine(line)
	}
	for i := 0; i < nLon; i++ {
		lon := 2 * math.Pi * float64(i) / float64(nLon)
		line := make(paths.Polyline, 0, samples+1)
		for j := 0; j <= samples; j++ {
			lat := -math.Pi/2 + math.Pi*float64(j)/float64(samples)
			line = append(line, spherePoint(center, radius, lat, lon))
		}
		out.AddLine(line)
	}
	return out
}

// SphereGreatCircles draws n great circles through random orientations,
// each sampled at samples points, seeded for reproducibility.
func SphereGreatCircles(center vecmath.Vector, radius float64, n, samples int, seed uint64) paths.Paths {
	r := rng(seed)
	out := paths.New()
	for i := 0; i < n; i++ {
		axis := vecmath.Normalize(vecmath.New(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1))
		u, v := orthonormalBasis(axis)
		line := make(paths.Polyline, 0, samples+1)
		for j := 0; j <= samples; j++ {
			t := 2 * math.Pi * float64(j) / float64(samples)
			p := u.Mul(math.Cos(t)).Add(v.Mul(math.Sin(t))).Mul(radius)
			line = append(line, center.Add(p))
		}
		out.AddLine(line)
	}
	return out
}

// SphereSmallCircles draws n circles at random latitude offset from a
// random axis with random angular radius, seeded for reproducibility.
func SphereSmallCircles(center vecmath.Vector, radius float64, n, samples int, seed uint64) paths.Paths {
	r := rng(seed)
	out := paths.New()
	for i := 0; i < n; i++ {
		axis := vecmath.Normalize(vecmath.New(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1))
		u, v := orthonormalBasis(axis)
		coneAngle := r.Float64() * math.Pi / 2
		ringRadius := radius * math.Sin(coneAngle)
		ringHeight := radius * math.Cos(coneAngle)
		line := make(paths.Polyline, 0, samples+1)
		for j := 0; j <= samples; j++ {
			t := 2 * math.Pi * float64(j) / float64(samples)
			p := axis.Mul(ringHeight).Add(u.Mul(math.Cos(t) * ringRadius)).Add(v.Mul(math.Sin(t) * ringRadius))
			line = append(line, center.Add(p))
		}
		out.AddLine(line)
	}
	return out
}

// SphereDots scatters n random points on the sphere's surface as
// degenerate zero-length polylines ("dots"), seeded for reproducibility.
func SphereDots(center vecmath.Vector, radius float64, n int, seed uint64) paths.Paths {
	r := rng(seed)
	out := paths.New()
	for i := 0; i < n; i++ {
		p := vecmath.Normalize(vecmath.New(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1)).Mul(radius)
		pt := center.Add(p)
		out.Add(pt, pt)
	}
	return out
}

func orthonormalBasis(n vecmath.Vector) (vecmath.Vector, vecmath.Vector) {
	up := vecmath.New(0, 0, 1)
	if math.Abs(n.Dot(up)) > 0.99 {
		up = vecmath.New(1, 0, 0)
	}
	u := vecmath.Normalize(n.Cross(up))
	v := n.Cross(u)
	return u, v
}

// CubeEdges draws the 12 edges of the box [min,max].
func CubeEdges(min, max vecmath.Vector) paths.Paths {
	out := paths.New()
	corner := func(ix, iy, iz int) vecmath.Vector {
		c := min
		if ix == 1 {
			c[0] = max[0]
		}
		if iy == 1 {
			c[1] = max[1]
		}
		if iz == 1 {
			c[2] = max[2]
		}
		return c
	}
	idx := [8][3]int{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
	edges := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along x
		{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along y
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along z
	}
	corners := make([]vecmath.Vector, 8)
	for i, c := range idx {
		corners[i] = corner(c[0], c[1], c[2])
	}
	for _, e := range edges {
		out.Add(corners[e[0]], corners[e[1]])
	}
	return out
}

// CubeStripes draws n evenly spaced vertical lines on each of the four side
// faces (the faces parallel to the Z axis), one at the middle of each of n
// equal-width strips of the face.
func CubeStripes(min, max vecmath.Vector, n int) paths.Paths {
	out := paths.New()
	if n < 1 {
		return out
	}
	zLo, zHi := min[2], max[2]
	addFace := func(fixedIsX bool, fixedVal, loOther, hiOther float64) {
		for i := 0; i < n; i++ {
			t := loOther + (hiOther-loOther)*(float64(i)+0.5)/float64(n)
			var a, b vecmath.Vector
			if fixedIsX {
				a = vecmath.New(fixedVal, t, zLo)
				b = vecmath.New(fixedVal, t, zHi)
			} else {
				a = vecmath.New(t, fixedVal, zLo)
				b = vecmath.New(t, fixedVal, zHi)
			}
			out.Add(a, b)
		}
	}
	addFace(true, min[0], min[1], max[1])
	addFace(true, max[0], min[1], max[1])
	addFace(false, min[1], min[0], max[0])
	addFace(false, max[1], min[0], max[0])
	return out
}

// CylinderDefault draws the two cap circles plus n longitudinal lines along
// the axis v0->v1.
func CylinderDefault(radius float64, v0, v1 vecmath.Vector, n, samples int) paths.Paths {
	axis := vecmath.Normalize(v1.Sub(v0))
	u, v := orthonormalBasis(axis)
	ring := func(center vecmath.Vector) paths.Polyline {
		line := make(paths.Polyline, 0, samples+1)
		for j := 0; j <= samples; j++ {
			t := 2 * math.Pi * float64(j) / float64(samples)
			p := u.Mul(math.Cos(t) * radius).Add(v.Mul(math.Sin(t) * radius))
			line = append(line, center.Add(p))
		}
		return line
	}
	out := paths.New()
	out.AddLine(ring(v0))
	out.AddLine(ring(v1))
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		offset := u.Mul(math.Cos(t) * radius).Add(v.Mul(math.Sin(t) * radius))
		out.Add(v0.Add(offset), v1.Add(offset))
	}
	return out
}

// ConeDefault draws the base circle at v0 plus n slant lines to the apex v1.
func ConeDefault(radius float64, v0, v1 vecmath.Vector, n, samples int) paths.Paths {
	axis := vecmath.Normalize(v1.Sub(v0))
	u, v := orthonormalBasis(axis)
	out := paths.New()
	line := make(paths.Polyline, 0, samples+1)
	for j := 0; j <= samples; j++ {
		t := 2 * math.Pi * float64(j) / float64(samples)
		p := u.Mul(math.Cos(t) * radius).Add(v.Mul(math.Sin(t) * radius))
		line = append(line, v0.Add(p))
	}
	out.AddLine(line)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		offset := u.Mul(math.Cos(t) * radius).Add(v.Mul(math.Sin(t) * radius))
		out.Add(v0.Add(offset), v1)
	}
	return out
}

// FunctionGrid draws isoparametric lines in x and y across the sample grid
// at the given density, evaluating f at each grid node.
func FunctionGrid(f func(x, y float64) float64, minXY, maxXY [2]float64, n int) paths.Paths {
	out := paths.New()
	if n < 1 {
		return out
	}
	point := func(i, j int) vecmath.Vector {
		x := minXY[0] + (maxXY[0]-minXY[0])*float64(i)/float64(n)
		y := minXY[1] + (maxXY[1]-minXY[1])*float64(j)/float64(n)
		return vecmath.New(x, y, f(x, y))
	}
	for i := 0; i <= n; i++ {
		line := make(paths.Polyline, 0, n+1)
		for j := 0; j <= n; j++ {
			line = append(line, point(i, j))
		}
		out.AddLine(line)
	}
	for j := 0; j <= n; j++ {
		line := make(paths.Polyline, 0, n+1)
		for i := 0; i <= n; i++ {
			line = append(line, point(i, j))
		}
		out.AddLine(line)
	}
	return out
}
