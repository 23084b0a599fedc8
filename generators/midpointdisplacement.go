// Package generators produces height maps for callers of the erosion
// engine. It is strictly a caller of erosion.Simulation, never the other
// way around — height-map generation is an external collaborator per the
// engine's own design, not part of its core.
package generators

import (
	"math"
	"math/rand"

	"github.com/ob6160/hydroerode/utils"
)

// TerrainGenerator is satisfied by anything that can hand the demo harness
// a width x height heightmap.
type TerrainGenerator interface {
	Generate(spread, reduce float32)
	Heightmap() []float32
	Dimensions() (int, int)
}

// MidpointDisplacement builds a fractal height map with the classic
// diamond-square / midpoint-displacement algorithm. width-1 and height-1
// must be powers of two for the recursive subdivision to land exactly on
// grid points; NewMidpointDisplacement does not enforce this, matching the
// reference generator's trust in its caller.
type MidpointDisplacement struct {
	width, height int
	heightmap     []float32
}

// NewMidpointDisplacement allocates a width x height generator with a zeroed
// heightmap.
func NewMidpointDisplacement(width, height int) *MidpointDisplacement {
	return &MidpointDisplacement{
		width:     width,
		height:    height,
		heightmap: make([]float32, width*height),
	}
}

// Heightmap returns the generator's current height buffer, row-major.
func (m *MidpointDisplacement) Heightmap() []float32 {
	return m.heightmap
}

// Dimensions returns the generator's width and height.
func (m *MidpointDisplacement) Dimensions() (int, int) {
	return m.width, m.height
}

func (m *MidpointDisplacement) set(p utils.Point, value float32) {
	m.heightmap[p.ToIndex(m.width)] = value
}

func (m *MidpointDisplacement) normalize() {
	maxValue := float32(math.Inf(-1))
	minValue := float32(math.Inf(1))
	for _, v := range m.heightmap {
		if v > maxValue {
			maxValue = v
		}
		if v < minValue {
			minValue = v
		}
	}
	diff := maxValue - minValue
	if diff == 0 {
		return
	}
	for i := range m.heightmap {
		m.heightmap[i] = (m.heightmap[i] - minValue) / diff
	}
}

// Generate fills the heightmap via recursive midpoint displacement, then
// normalizes it to [0, 1]. spread controls the initial roughness of the
// corner-to-corner jitter; reduce controls how quickly that roughness
// decays with each level of subdivision.
func (m *MidpointDisplacement) Generate(spread, reduce float32) {
	for i := range m.heightmap {
		m.heightmap[i] = 0
	}

	topLeft := utils.Point{X: 0, Y: 0}
	topRight := utils.Point{X: m.width - 1, Y: 0}
	bottomLeft := utils.Point{X: 0, Y: m.height - 1}
	bottomRight := utils.Point{X: m.width - 1, Y: m.height - 1}

	m.set(topLeft, rand.Float32())
	m.set(topRight, rand.Float32())
	m.set(bottomLeft, rand.Float32())
	m.set(bottomRight, rand.Float32())

	m.displace(
		topLeft.ToIndex(m.width), topRight.ToIndex(m.width),
		bottomLeft.ToIndex(m.width), bottomRight.ToIndex(m.width),
		spread, reduce,
	)
	m.normalize()
}

func (m *MidpointDisplacement) displace(tl, tr, bl, br int, spread, reduce float32) {
	if tr-tl <= 1 {
		return
	}

	topMid := utils.Midpoint(tl, tr)
	leftMid := utils.Midpoint(tl, bl)
	rightMid := utils.Midpoint(tr, br)
	bottomMid := utils.Midpoint(bl, br)
	centre := utils.Midpoint(leftMid, rightMid)

	if m.heightmap[topMid] == 0 {
		avg := utils.Average(m.heightmap[tl], m.heightmap[tr])
		m.heightmap[topMid] = utils.Jitter(avg, spread)
	}
	if m.heightmap[leftMid] == 0 {
		avg := utils.Average(m.heightmap[tl], m.heightmap[bl])
		m.heightmap[leftMid] = utils.Jitter(avg, spread)
	}
	if m.heightmap[rightMid] == 0 {
		avg := utils.Average(m.heightmap[tr], m.heightmap[br])
		m.heightmap[rightMid] = utils.Jitter(avg, spread)
	}
	if m.heightmap[bottomMid] == 0 {
		avg := utils.Average(m.heightmap[bl], m.heightmap[br])
		m.heightmap[bottomMid] = utils.Jitter(avg, spread)
	}
	if m.heightmap[centre] == 0 {
		avg := utils.Average(m.heightmap[topMid], m.heightmap[leftMid], m.heightmap[rightMid], m.heightmap[bottomMid])
		m.heightmap[centre] = utils.Jitter(avg, spread)
	}

	next := spread * reduce
	m.displace(tl, topMid, leftMid, centre, next, reduce)
	m.displace(topMid, tr, centre, rightMid, next, reduce)
	m.displace(leftMid, centre, bl, bottomMid, next, reduce)
	m.displace(centre, rightMid, bottomMid, br, next, reduce)
}
