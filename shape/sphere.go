package shape

import (
	"fmt"
	"math"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/texture"
	"github.com/inkwell3d/inkwell/vecmath"
)

// SphereTexture selects one of the configurable default-path variants a
// Sphere can draw.
type SphereTexture int

const (
	// SphereTextureLatLng draws a latitude/longitude grid (the default).
	SphereTextureLatLng SphereTexture = iota
	// SphereTextureGreatCircles draws randomly oriented great circles.
	SphereTextureGreatCircles
	// SphereTextureSmallCircles draws randomly placed small circles.
	SphereTextureSmallCircles
	// SphereTextureDots scatters random surface points as degenerate
	// zero-length segments.
	SphereTextureDots
)

// Sphere is a solid ball of the given radius centered at Center.
type Sphere struct {
	base
	Center vecmath.Vector
	Radius float64

	Texture     SphereTexture
	Lines       int // latitude/longitude line count, or circle/dot count
	Samples     int // points per circle
	TextureSeed uint64
}

// NewSphere validates and builds a Sphere with default latitude/longitude
// texture.
func NewSphere(center vecmath.Vector, radius float64) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("shape: sphere radius must be positive, got %g: %w", radius, ErrConstruction)
	}
	return &Sphere{
		base:    newBase(),
		Center:  center,
		Radius:  radius,
		Texture: SphereTextureLatLng,
		Lines:   12,
		Samples: 48,
	}, nil
}

func (s *Sphere) Compile() error { return nil }

func (s *Sphere) BoundingBox() vecmath.AABB {
	r := vecmath.New(s.Radius, s.Radius, s.Radius)
	return vecmath.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

func (s *Sphere) Contains(p vecmath.Vector, eps float64) bool {
	return p.Sub(s.Center).Len() <= s.Radius+eps
}

// Intersect substitutes the ray into |O+tD-C|^2 = r^2 and returns the
// smallest positive root larger than Eps.
func (s *Sphere) Intersect(r vecmath.Ray) vecmath.Hit {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	if a < 1e-15 {
		return vecmath.NoHit
	}
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - a*c
	if disc < 0 {
		return vecmath.NoHit
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / a
	if t <= Eps {
		t = (-b + sq) / a
	}
	if t <= Eps {
		return vecmath.NoHit
	}
	return vecmath.Hit{T: t, Shape: s}
}

func (s *Sphere) Paths() paths.Paths {
	samples := s.Samples
	if samples < 4 {
		samples = 48
	}
	lines := s.Lines
	if lines < 1 {
		lines = 12
	}
	switch s.Texture {
	case SphereTextureGreatCircles:
		return texture.SphereGreatCircles(s.Center, s.Radius, lines, samples, s.TextureSeed)
	case SphereTextureSmallCircles:
		return texture.SphereSmallCircles(s.Center, s.Radius, lines, samples, s.TextureSeed)
	case SphereTextureDots:
		return texture.SphereDots(s.Center, s.Radius, lines, s.TextureSeed)
	default:
		return texture.SphereLatLng(s.Center, s.Radius, lines, lines, samples)
	}
}
