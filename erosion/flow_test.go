package erosion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFlowAndTiltFlatGroundFloorsAtMinTilt(t *testing.T) {
	const w, h = 4, 4
	sim := NewSimulation(w, h)
	sim.SetMinTilt(0.02)

	flat := func(_, _ int) float32 { return 5 }
	sim.ComputeFlowAndTilt(flat, zeroField)

	for _, tilt := range sim.tilt {
		assert.Equal(t, float32(0.02), tilt)
	}
}

func TestComputeFlowAndTiltFlowsDownhill(t *testing.T) {
	const w, h = 3, 2
	sim := NewSimulation(w, h)

	height := func(x, y int) float32 {
		return []float32{10, 5, 0}[x]
	}
	water := func(_, _ int) float32 { return 1 }

	sim.ComputeFlowAndTilt(height, water)

	// Cell 0 (highest) should push flux toward cell 1 (+x), never pull from it.
	f0 := sim.flux[sim.index(0, 0)]
	assert.Greater(t, f0[fluxPosX], float32(0))
	assert.Zero(t, f0[fluxNegX], "x=0 has no -x neighbor")

	// Cell 2 (lowest, rightmost) has no +x neighbor.
	f2 := sim.flux[sim.index(2, 0)]
	assert.Zero(t, f2[fluxPosX])
}

func TestComputeFlowAndTiltScalesToAvailableWater(t *testing.T) {
	const w, h = 2, 2
	sim := NewSimulation(w, h)
	sim.SetTimeStep(1)
	sim.SetGravity(100) // force a large tentative outflow

	height := func(x, _ int) float32 {
		if x == 0 {
			return 100
		}
		return 0
	}
	water := func(x, _ int) float32 {
		if x == 0 {
			return 0.01 // very little water available to push out
		}
		return 0
	}

	sim.ComputeFlowAndTilt(height, water)

	f0 := sim.flux[sim.index(0, 0)]
	outflow := f0[fluxPosX] + f0[fluxNegX] + f0[fluxPosY] + f0[fluxNegY]
	assert.LessOrEqual(t, outflow*sim.p.timeStep, water(0, 0)*sim.p.metersPerX*sim.p.metersPerY+1e-5)
}
