// Package erosion implements a virtual-pipe shallow-water hydraulic erosion
// model over a rectangular height field.
//
// Simulation owns the per-cell internal state (pipe flux, velocity, tilt and
// suspended sediment) for a fixed w x h grid. It never owns height or water:
// those live with the caller and are reached through accessor callbacks, so
// a caller can store them in whatever layout its generator, renderer or file
// format prefers.
package erosion
