package erosion

import "github.com/go-gl/mathgl/mgl32"

// ComputeFlowAndTilt updates the pipe flux for the current time step and
// recomputes per-cell tilt from the height field.
//
// For each cell and each of its four axis-aligned neighbors, the tentative
// outflow is advanced by the head-difference term and clamped to be
// non-negative; pipes crossing the grid boundary are held at zero. Once
// every cell's tentative flux is known, a second pass scales each cell's
// four outflows down so that, over one time step, they never draw more
// water than the cell currently holds. The two passes run in that order
// (tentative update, then scale) so that the scale factor for a cell only
// ever depends on that cell's own flux, never a neighbor's.
func (s *Simulation) ComputeFlowAndTilt(getHeight HeightGetter, getWater WaterGetter) {
	parallelRows(s.height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < s.width; x++ {
				s.computeTentativeFlux(x, y, getHeight, getWater)
			}
		}
	})

	parallelRows(s.height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < s.width; x++ {
				s.scaleFlux(x, y, getWater)
			}
		}
	})

	parallelRows(s.height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < s.width; x++ {
				s.computeTilt(x, y, getHeight)
			}
		}
	})
}

func (s *Simulation) computeTentativeFlux(x, y int, getHeight HeightGetter, getWater WaterGetter) {
	i := s.index(x, y)
	old := s.flux[i]

	centerHead := getHeight(x, y) + getWater(x, y)
	pressure := s.p.timeStep * s.p.gravity * s.p.pipeCrossSection

	next := mgl32.Vec4{}

	if x+1 < s.width {
		diff := centerHead - (getHeight(x+1, y) + getWater(x+1, y))
		next[fluxPosX] = max32(0, old[fluxPosX]+pressure*diff/s.p.metersPerX)
	}
	if x-1 >= 0 {
		diff := centerHead - (getHeight(x-1, y) + getWater(x-1, y))
		next[fluxNegX] = max32(0, old[fluxNegX]+pressure*diff/s.p.metersPerX)
	}
	if y+1 < s.height {
		diff := centerHead - (getHeight(x, y+1) + getWater(x, y+1))
		next[fluxPosY] = max32(0, old[fluxPosY]+pressure*diff/s.p.metersPerY)
	}
	if y-1 >= 0 {
		diff := centerHead - (getHeight(x, y-1) + getWater(x, y-1))
		next[fluxNegY] = max32(0, old[fluxNegY]+pressure*diff/s.p.metersPerY)
	}

	s.flux[i] = next
}

func (s *Simulation) scaleFlux(x, y int, getWater WaterGetter) {
	i := s.index(x, y)
	f := s.flux[i]

	fOut := f[fluxPosX] + f[fluxNegX] + f[fluxPosY] + f[fluxNegY]
	if fOut <= 0 {
		return
	}

	available := getWater(x, y) * s.p.metersPerX * s.p.metersPerY
	if fOut*s.p.timeStep > available {
		k := available / (fOut * s.p.timeStep)
		f[fluxPosX] *= k
		f[fluxNegX] *= k
		f[fluxPosY] *= k
		f[fluxNegY] *= k
		s.flux[i] = f
	}

	if s.debugChecks {
		debugAssertNonNegativeFlux(s.flux[i], x, y)
	}
}

// computeTilt derives sin(atan(|∇H|)) from a gradient of the height field,
// using central differences at interior cells and one-sided differences at
// the grid boundary, and floors it at minTilt so flat ground never yields a
// degenerate zero sediment capacity.
func (s *Simulation) computeTilt(x, y int, getHeight HeightGetter) {
	center := getHeight(x, y)

	left, right := center, center
	if x-1 >= 0 {
		left = getHeight(x-1, y)
	}
	if x+1 < s.width {
		right = getHeight(x+1, y)
	}

	up, down := center, center
	if y-1 >= 0 {
		up = getHeight(x, y-1)
	}
	if y+1 < s.height {
		down = getHeight(x, y+1)
	}

	var dx, dy float32
	switch {
	case x-1 >= 0 && x+1 < s.width:
		dx = (right - left) * 0.5
	case x+1 < s.width:
		dx = right - center
	case x-1 >= 0:
		dx = center - left
	}
	switch {
	case y-1 >= 0 && y+1 < s.height:
		dy = (down - up) * 0.5
	case y+1 < s.height:
		dy = down - center
	case y-1 >= 0:
		dy = center - up
	}

	gradMagSq := dx*dx + dy*dy
	tilt := sqrt32(gradMagSq) / sqrt32(1+gradMagSq)
	if tilt < s.p.minTilt {
		tilt = s.p.minTilt
	}
	s.tilt[s.index(x, y)] = tilt
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
