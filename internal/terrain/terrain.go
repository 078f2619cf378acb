// Package terrain implements the destructible height field of the duel.
//
// Heights are measured downward from the top of the field: a sample holds the
// y coordinate of the ground surface for one column. Deformation adds to the
// sample, so craters push the surface down and the field never gains ground.
package terrain

import (
	"fmt"
	"math"

	"github.com/vovakirdan/artillery-duel/internal/core"
)

// Rand is the random source used for control point generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Params shapes terrain generation and deformation.
type Params struct {
	ControlPoints    int     // Number of Catmull-Rom control points
	BaseFraction     float64 // Mean control point height as a fraction of field height
	VarianceFraction float64 // Max deviation from the mean as a fraction of field height
	SmoothingPasses  int     // Number of 3-tap smoothing passes
	SmoothingFactor  float64 // Weight given to each neighbour; self gets 1-2*factor
	DeformDepth      float64 // Height added at the centre of a crater
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		ControlPoints:    8,
		BaseFraction:     0.5,
		VarianceFraction: 0.2,
		SmoothingPasses:  3,
		SmoothingFactor:  0.2,
		DeformDepth:      20,
	}
}

// Terrain is a height field with one sample per column.
type Terrain struct {
	width   int
	height  int
	params  Params
	rng     Rand
	heights []float64
}

// New creates a flat terrain of the given field size. Call Generate to shape it.
// Panics if width or height is not positive or fewer than 2 control points
// are requested.
func New(width, height int, params Params, rng Rand) *Terrain {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("terrain: invalid field size %dx%d", width, height))
	}
	if params.ControlPoints < 2 {
		panic(fmt.Sprintf("terrain: need at least 2 control points, got %d", params.ControlPoints))
	}
	t := &Terrain{
		width:   width,
		height:  height,
		params:  params,
		rng:     rng,
		heights: make([]float64, width),
	}
	for i := range t.heights {
		t.heights[i] = float64(height) * params.BaseFraction
	}
	return t
}

// Width returns the number of columns.
func (t *Terrain) Width() int {
	return t.width
}

// Height returns the field height the terrain was generated for.
func (t *Terrain) Height() int {
	return t.height
}

// Generate replaces every sample with a fresh landscape: random control
// points, Catmull-Rom interpolation across them, then smoothing.
func (t *Terrain) Generate() {
	n := t.params.ControlPoints
	base := float64(t.height) * t.params.BaseFraction
	spread := float64(t.height) * t.params.VarianceFraction

	points := make([]float64, n)
	for i := range points {
		u := t.rng.Float64()*2 - 1
		points[i] = base + u*spread
	}

	for x := 0; x < t.width; x++ {
		t.heights[x] = sampleSpline(points, float64(x)/float64(t.width))
	}

	for pass := 0; pass < t.params.SmoothingPasses; pass++ {
		t.smooth()
	}
}

// sampleSpline evaluates the control point curve at progress in [0,1).
// Missing neighbours at either end repeat the nearest control point.
func sampleSpline(points []float64, progress float64) float64 {
	n := len(points)
	scaled := progress * float64(n-1)
	index := int(scaled)
	if index >= n-1 {
		return points[n-1]
	}
	frac := scaled - float64(index)

	h1 := points[index]
	h2 := points[index+1]
	h0 := points[0]
	if index > 0 {
		h0 = points[index-1]
	}
	h3 := h2
	if index < n-2 {
		h3 = points[index+2]
	}
	return catmullRom(h0, h1, h2, h3, frac)
}

func catmullRom(h0, h1, h2, h3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return (-0.5*h0+1.5*h1-1.5*h2+0.5*h3)*t3 +
		(h0-2.5*h1+2*h2-0.5*h3)*t2 +
		(-0.5*h0+0.5*h2)*t +
		h1
}

// smooth runs one 3-tap pass over interior samples, reading from a copy of
// the previous pass. Edge columns are left untouched.
func (t *Terrain) smooth() {
	if t.width < 3 {
		return
	}
	k := t.params.SmoothingFactor
	prev := make([]float64, t.width)
	copy(prev, t.heights)
	for i := 1; i < t.width-1; i++ {
		t.heights[i] = prev[i-1]*k + prev[i]*(1-2*k) + prev[i+1]*k
	}
}

// Deform carves a crater centred on the column under impact. Heights within
// radius columns grow linearly toward the centre by up to DeformDepth.
// Panics if radius is not positive.
func (t *Terrain) Deform(impact core.Vec2, radius float64) {
	if radius <= 0 {
		panic(fmt.Sprintf("terrain: invalid deform radius %v", radius))
	}
	center := int(impact.X)
	r := int(radius)
	start := max(0, center-r)
	end := min(t.width-1, center+r)

	for i := start; i <= end; i++ {
		dist := math.Abs(float64(i - center))
		factor := 1 - dist/radius
		if factor > 0 {
			t.heights[i] += t.params.DeformDepth * factor
		}
	}
}

// HeightAt returns the surface height of the column containing x.
// Positions left of the field read the first column, positions at or past
// the right edge read the last column.
func (t *Terrain) HeightAt(x float64) float64 {
	if x < 0 {
		return t.heights[0]
	}
	i := int(x)
	if i >= t.width {
		return t.heights[t.width-1]
	}
	return t.heights[i]
}

// IsCollision reports whether p lies on or below the surface inside the field.
func (t *Terrain) IsCollision(p core.Vec2) bool {
	if p.X < 0 || p.X >= float64(t.width) {
		return false
	}
	return p.Y >= t.HeightAt(p.X)
}

// Heights returns a copy of the samples, one per column.
func (t *Terrain) Heights() []float64 {
	out := make([]float64, len(t.heights))
	copy(out, t.heights)
	return out
}

// Bounds returns the smallest and largest sample.
func (t *Terrain) Bounds() (lo, hi float64) {
	lo, hi = t.heights[0], t.heights[0]
	for _, h := range t.heights[1:] {
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}
	return lo, hi
}
