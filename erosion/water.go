package erosion

import "github.com/go-gl/mathgl/mgl32"

// TransportWater applies the net flow computed by ComputeFlowAndTilt to the
// externally owned water column, and derives the per-cell velocity field
// that TransportSediment will read.
//
// Each cell only ever pushes a delta through addWater for its own (x, y),
// and only ever writes its own velocity slot, so this stage is safe to
// parallelize over cells even though it reads every neighbor's flux.
func (s *Simulation) TransportWater(addWater WaterAdder) {
	parallelRows(s.height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < s.width; x++ {
				s.transportWaterAt(x, y, addWater)
			}
		}
	})
}

func (s *Simulation) transportWaterAt(x, y int, addWater WaterAdder) {
	i := s.index(x, y)
	f := s.flux[i]

	outflow := f[fluxPosX] + f[fluxNegX] + f[fluxPosY] + f[fluxNegY]
	inflow := s.inflow(x, y)

	volumeDelta := s.p.timeStep * (inflow - outflow)
	waterDelta := volumeDelta / (s.p.metersPerX * s.p.metersPerY)

	newWater := addWater(x, y, waterDelta)
	if s.debugChecks {
		debugAssertNonNegative(newWater, "water", x, y)
	}

	wbar := newWater - waterDelta*0.5
	s.velocity[i] = s.computeVelocity(x, y, wbar)
}

// inflow sums the contribution each present neighbor makes into (x, y): the
// neighbor's outflow through the pipe that points back at this cell.
func (s *Simulation) inflow(x, y int) float32 {
	var total float32
	if x-1 >= 0 {
		total += s.flux[s.index(x-1, y)][fluxPosX]
	}
	if x+1 < s.width {
		total += s.flux[s.index(x+1, y)][fluxNegX]
	}
	if y-1 >= 0 {
		total += s.flux[s.index(x, y-1)][fluxPosY]
	}
	if y+1 < s.height {
		total += s.flux[s.index(x, y+1)][fluxNegY]
	}
	return total
}

func (s *Simulation) computeVelocity(x, y int, wbar float32) mgl32.Vec2 {
	if wbar <= velocityEpsilon {
		return mgl32.Vec2{0, 0}
	}

	i := s.index(x, y)
	center := s.flux[i]

	var leftIn, rightIn, upIn, downIn float32
	if x-1 >= 0 {
		leftIn = s.flux[s.index(x-1, y)][fluxPosX]
	}
	if x+1 < s.width {
		rightIn = s.flux[s.index(x+1, y)][fluxNegX]
	}
	if y-1 >= 0 {
		upIn = s.flux[s.index(x, y-1)][fluxPosY]
	}
	if y+1 < s.height {
		downIn = s.flux[s.index(x, y+1)][fluxNegY]
	}

	denomX := s.p.metersPerY * max32(wbar, velocityEpsilon)
	denomY := s.p.metersPerX * max32(wbar, velocityEpsilon)

	vx := 0.5 * (leftIn - center[fluxNegX] + center[fluxPosX] - rightIn) / denomX
	vy := 0.5 * (upIn - center[fluxNegY] + center[fluxPosY] - downIn) / denomY

	return mgl32.Vec2{vx, vy}
}
