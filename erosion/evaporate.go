package erosion

import "github.com/go-gl/mathgl/mgl32"

// Evaporate removes a fraction of each cell's water column proportional to
// its evaporation rate and the time step. Clamping at zero is the
// accessor's responsibility; this stage only ever pushes a negative delta.
func (s *Simulation) Evaporate(getWater WaterGetter, addWater WaterAdder, evaporationK ParamField) {
	parallelRows(s.height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < s.width; x++ {
				delta := -evaporationK(x, y) * getWater(x, y) * s.p.timeStep
				newWater := addWater(x, y, delta)
				if s.debugChecks {
					debugAssertNonNegative(newWater, "water", x, y)
				}
			}
		}
	})
}

// TerminateRainfall deposits any still-suspended sediment back onto the
// terrain in place and resets pipe flux and velocity to zero, so that a new
// rainfall episode starts from a quiescent state. S is guaranteed to be
// identically zero immediately afterward.
func (s *Simulation) TerminateRainfall(addHeight HeightAdder) {
	parallelRows(s.height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < s.width; x++ {
				i := s.index(x, y)
				if s.sediment[i] != 0 {
					addHeight(x, y, s.sediment[i])
					s.sediment[i] = 0
				}
				s.flux[i] = mgl32.Vec4{}
				s.velocity[i] = mgl32.Vec2{}
			}
		}
	})
}
