package erosion

// params holds the physical constants used by a Simulation's integrator.
// Grouped the way ob6160-Terrain's erosion.State grouped its tunables, but
// private and reached only through setters so that defaults are always
// filled in at construction.
type params struct {
	timeStep         float32
	metersPerX       float32
	metersPerY       float32
	pipeCrossSection float32
	gravity          float32
	minTilt          float32
}

func defaultParams() params {
	return params{
		timeStep:         0.1,
		metersPerX:       1.0,
		metersPerY:       1.0,
		pipeCrossSection: 1.0,
		gravity:          9.81,
		minTilt:          0.001,
	}
}

// SetTimeStep sets Δt used by the integrator, in seconds.
func (s *Simulation) SetTimeStep(v float32) { s.p.timeStep = v }

// SetMetersPerX sets the horizontal cell size along x, in meters.
func (s *Simulation) SetMetersPerX(v float32) { s.p.metersPerX = v }

// SetMetersPerY sets the horizontal cell size along y, in meters.
func (s *Simulation) SetMetersPerY(v float32) { s.p.metersPerY = v }

// SetPipeCrossSection sets the effective virtual-pipe area, in square meters.
func (s *Simulation) SetPipeCrossSection(v float32) { s.p.pipeCrossSection = v }

// SetGravity sets the acceleration used in the flux update, in m/s².
func (s *Simulation) SetGravity(v float32) { s.p.gravity = v }

// SetMinTilt sets the floor on the sin-angle used in sediment capacity. It
// prevents a degenerate zero capacity on perfectly flat ground.
func (s *Simulation) SetMinTilt(v float32) { s.p.minTilt = v }

// SetDebugChecks enables invariant assertions (W >= 0, S >= 0, flux >= 0)
// after each pipeline stage. Disabled by default; intended for tests and
// development, not hot-loop production ticking.
func (s *Simulation) SetDebugChecks(enabled bool) { s.debugChecks = enabled }
