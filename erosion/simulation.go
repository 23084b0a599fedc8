package erosion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightGetter reads the externally owned terrain height at (x, y), in
// meters.
type HeightGetter func(x, y int) float32

// WaterGetter reads the externally owned water column depth at (x, y), in
// meters.
type WaterGetter func(x, y int) float32

// WaterAdder accumulates delta into the externally owned water column at
// (x, y). Implementations must clamp the stored value to >= 0 and return the
// new value.
type WaterAdder func(x, y int, delta float32) float32

// HeightAdder accumulates delta into the externally owned terrain height at
// (x, y), unconditionally.
type HeightAdder func(x, y int, delta float32)

// ParamField reads a spatially varying per-cell parameter at (x, y), such as
// carry capacity or erosion rate. Callers may close over a precomputed
// array, a constant, or a procedural function.
type ParamField func(x, y int) float32

// flux component indices into the per-cell mgl32.Vec4: outflow through the
// virtual pipe toward the +x, -x, +y and -y neighbor, respectively.
const (
	fluxPosX = 0
	fluxNegX = 1
	fluxPosY = 2
	fluxNegY = 3
)

// velocityEpsilon guards the velocity computation against division by a
// near-zero water column on dry cells.
const velocityEpsilon = 1e-6

// Simulation is an embeddable virtual-pipe shallow-water erosion engine for
// a fixed w x h grid. It owns pipe flux, velocity, tilt and suspended
// sediment; height and water columns are owned by the caller and reached
// through accessor callbacks passed to each pipeline stage.
//
// A Simulation is not safe for concurrent use by multiple goroutines calling
// its methods; each pipeline stage parallelizes its own per-cell work
// internally and returns only once that work is complete.
type Simulation struct {
	width, height int

	p           params
	debugChecks bool

	flux         []mgl32.Vec4
	velocity     []mgl32.Vec2
	tilt         []float32
	sediment     []float32
	sedimentSwap []float32
	heightDelta  []float32
}

// NewSimulation constructs a Simulation over a w x h grid. Internal fields
// are initialized to zero. w and h must both be >= 2; violating this is a
// programmer error and panics, matching the precondition-assert style of
// TinyErode::Resize.
func NewSimulation(w, h int) *Simulation {
	if w < 2 || h < 2 {
		panic(fmt.Sprintf("erosion: grid dimensions must be >= 2, got %dx%d", w, h))
	}
	s := &Simulation{
		width:  w,
		height: h,
		p:      defaultParams(),
	}
	s.resize(w, h)
	return s
}

// resize allocates the engine-owned buffers. It is only ever called once,
// from NewSimulation; the public contract forbids changing w, h after
// construction, so there is no public Resize.
func (s *Simulation) resize(w, h int) {
	n := w * h
	s.flux = make([]mgl32.Vec4, n)
	s.velocity = make([]mgl32.Vec2, n)
	s.tilt = make([]float32, n)
	s.sediment = make([]float32, n)
	s.sedimentSwap = make([]float32, n)
	s.heightDelta = make([]float32, n)
}

// Width returns the grid's cell count along x.
func (s *Simulation) Width() int { return s.width }

// Height returns the grid's cell count along y.
func (s *Simulation) Height() int { return s.height }

func (s *Simulation) index(x, y int) int { return y*s.width + x }

func (s *Simulation) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Sediment returns a copy of the engine's current per-cell suspended
// sediment field, indexed by y*width+x. Primarily useful for debugging and
// tests, the same role TinyErode::GetSediment plays.
func (s *Simulation) Sediment() []float32 {
	out := make([]float32, len(s.sediment))
	copy(out, s.sediment)
	return out
}

// Velocity returns a copy of the engine's current per-cell velocity field.
func (s *Simulation) Velocity() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(s.velocity))
	copy(out, s.velocity)
	return out
}

// Tilt returns a copy of the engine's current per-cell tilt field.
func (s *Simulation) Tilt() []float32 {
	out := make([]float32, len(s.tilt))
	copy(out, s.tilt)
	return out
}
