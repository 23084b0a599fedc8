package erosion

// TransportSediment compares each cell's sediment-carrying capacity against
// its current suspended load, eroding the terrain into the water where
// capacity exceeds load and depositing sediment back onto the terrain where
// load exceeds capacity, then advects the resulting sediment field along
// the velocity computed by TransportWater.
//
// The erosion/deposition sub-step accumulates height deltas into a scratch
// buffer rather than calling addHeight immediately, so that the result is
// deterministic and order-independent regardless of how the per-cell work
// is partitioned; deltas are flushed through addHeight only once every cell
// has been visited.
func (s *Simulation) TransportSediment(carryCapacityK, depositionK, erosionK ParamField, addHeight HeightAdder) {
	parallelRows(s.height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < s.width; x++ {
				s.erodeOrDepositAt(x, y, carryCapacityK, depositionK, erosionK)
			}
		}
	})

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			i := s.index(x, y)
			if s.heightDelta[i] != 0 {
				addHeight(x, y, s.heightDelta[i])
				s.heightDelta[i] = 0
			}
		}
	}

	if s.debugChecks {
		for i := range s.sediment {
			debugAssertNonNegative(s.sediment[i], "sediment", i%s.width, i/s.width)
		}
	}

	s.advectSediment()
}

func (s *Simulation) erodeOrDepositAt(x, y int, carryCapacityK, depositionK, erosionK ParamField) {
	i := s.index(x, y)

	capacity := carryCapacityK(x, y) * s.tilt[i] * s.velocity[i].Len()
	sediment := s.sediment[i]

	switch {
	case capacity > sediment:
		eroded := erosionK(x, y) * (capacity - sediment)
		s.heightDelta[i] -= eroded
		s.sediment[i] += eroded
	case capacity < sediment:
		deposited := depositionK(x, y) * (sediment - capacity)
		s.heightDelta[i] += deposited
		s.sediment[i] -= deposited
	}
}

// advectSediment traces each cell backward along its velocity and samples
// the pre-advection sediment field there with bilinear interpolation,
// clamping out-of-range samples to the nearest edge. The result is written
// into a second buffer and then swapped into place, so that no cell's
// advection reads a value another cell in the same pass has already
// overwritten.
func (s *Simulation) advectSediment() {
	parallelRows(s.height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < s.width; x++ {
				i := s.index(x, y)
				vel := s.velocity[i]

				px := float32(x) - vel.X()*s.p.timeStep/s.p.metersPerX
				py := float32(y) - vel.Y()*s.p.timeStep/s.p.metersPerY

				s.sedimentSwap[i] = s.sampleSedimentBilinear(px, py)
			}
		}
	})

	s.sediment, s.sedimentSwap = s.sedimentSwap, s.sediment
}

func (s *Simulation) sampleSedimentBilinear(px, py float32) float32 {
	maxX := float32(s.width - 1)
	maxY := float32(s.height - 1)
	px = clamp32(px, 0, maxX)
	py = clamp32(py, 0, maxY)

	x0 := int(px)
	y0 := int(py)
	x1 := clampInt(x0+1, 0, s.width-1)
	y1 := clampInt(y0+1, 0, s.height-1)

	u := px - float32(x0)
	v := py - float32(y0)

	s00 := s.sediment[s.index(x0, y0)]
	s10 := s.sediment[s.index(x1, y0)]
	s01 := s.sediment[s.index(x0, y1)]
	s11 := s.sediment[s.index(x1, y1)]

	top := s00 + u*(s10-s00)
	bottom := s01 + u*(s11-s01)
	return top + v*(bottom-top)
}
