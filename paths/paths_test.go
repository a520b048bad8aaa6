package paths_test

import (
	"testing"

	"github.com/inkwell3d/inkwell/paths"
	"github.com/inkwell3d/inkwell/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChopBoundsSegmentLength(t *testing.T) {
	p := paths.New()
	p.Add(vecmath.New(0, 0, 0), vecmath.New(10, 0, 0))

	chopped := p.Chop(0.5)
	require.Len(t, chopped.Lines, 1)
	line := chopped.Lines[0]
	for i := 1; i < len(line); i++ {
		d := line[i].Sub(line[i-1]).Len()
		assert.LessOrEqual(t, d, 0.5+1e-9)
	}
	assert.InDelta(t, 10.0, line.Len(), 1e-9)
}

func TestFilterToUnitRectClipsOutside(t *testing.T) {
	p := paths.New()
	p.Add(vecmath.New(-2, 0, 0), vecmath.New(2, 0, 0))

	clipped := p.FilterToUnitRect()
	require.Len(t, clipped.Lines, 1)
	line := clipped.Lines[0]
	for _, pt := range line {
		assert.GreaterOrEqual(t, pt[0], -1.0-1e-9)
		assert.LessOrEqual(t, pt[0], 1.0+1e-9)
	}
}

func TestFilterToUnitRectDropsFullyOutside(t *testing.T) {
	p := paths.New()
	p.Add(vecmath.New(2, 2, 0), vecmath.New(3, 3, 0))

	clipped := p.FilterToUnitRect()
	assert.Len(t, clipped.Lines, 0)
}

func TestViewportFlipsY(t *testing.T) {
	p := paths.New()
	p.Add(vecmath.New(-1, 1, 0), vecmath.New(1, -1, 0))

	mapped := p.Viewport(100, 200)
	line := mapped.Lines[0]
	assert.InDelta(t, 0.0, line[0][0], 1e-9)
	assert.InDelta(t, 0.0, line[0][1], 1e-9)
	assert.InDelta(t, 100.0, line[1][0], 1e-9)
	assert.InDelta(t, 200.0, line[1][1], 1e-9)
}
