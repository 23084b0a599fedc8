package erosion

// Grid is the convenience capability a caller can implement once to drive a
// full tick through a single value, instead of assembling the accessor
// callbacks by hand every time. Implementations are typically a thin
// wrapper around a flat []float32 height buffer and a flat []float32 water
// buffer; FlatGrid is the common case. Callers on a hot path are free to
// skip this interface entirely and call the pipeline stages directly with
// their own accessors instead of going through Tick.
type Grid interface {
	GetHeight(x, y int) float32
	GetWater(x, y int) float32
	AddWater(x, y int, delta float32) float32
	AddHeight(x, y int, delta float32)
}

// Parameters bundles the four per-cell parameter fields a tick needs beyond
// the grid itself.
type Parameters struct {
	CarryCapacityK ParamField
	DepositionK    ParamField
	ErosionK       ParamField
	EvaporationK   ParamField
}

// Tick runs one full pipeline pass — ComputeFlowAndTilt, TransportWater,
// TransportSediment, Evaporate, in that order — against a Grid and its
// Parameters. It does not call TerminateRainfall; that remains the caller's
// explicit decision at the end of a rainfall episode.
func (s *Simulation) Tick(g Grid, params Parameters) {
	s.ComputeFlowAndTilt(g.GetHeight, g.GetWater)
	s.TransportWater(g.AddWater)
	s.TransportSediment(params.CarryCapacityK, params.DepositionK, params.ErosionK, g.AddHeight)
	s.Evaporate(g.GetWater, g.AddWater, params.EvaporationK)
}
