// Command erode is a minimal harness demonstrating erosion.Simulation: it
// generates a fractal height map, rains on it for a while, lets it drain
// and settle, then reports what eroded and writes out a couple of PNG
// snapshots. It is a caller of the engine, not part of it — exactly the
// kind of external collaborator the engine's design assumes.
package main

import (
	"flag"
	"log"

	"github.com/xlab/closer"

	"github.com/ob6160/hydroerode/erosion"
	"github.com/ob6160/hydroerode/generators"
)

func main() {
	var (
		size         = flag.Int("size", 129, "grid size in cells (width and height); size-1 should be a power of two")
		maxHeight    = flag.Float64("max-height", 40, "peak terrain elevation in meters before erosion")
		rainTicks    = flag.Int("rain-ticks", 400, "number of ticks water is added during the rainfall episode")
		settleTicks  = flag.Int("settle-ticks", 200, "number of ticks to run after rainfall stops, before termination")
		rainRate     = flag.Float64("rain-rate", 0.01, "peak meters of water added per tick at the storm center during rainfall")
		rainRadius   = flag.Float64("rain-radius", 0, "radius in cells of the rain falloff; 0 uses half the grid's shorter side")
		carryK       = flag.Float64("carry-capacity", 0.01, "sediment carry-capacity multiplier")
		depositK     = flag.Float64("deposition", 0.1, "fraction of excess sediment deposited per tick")
		erosionRateK = flag.Float64("erosion", 0.1, "fraction of capacity shortfall eroded per tick")
		evaporationK = flag.Float64("evaporation", 0.01, "evaporation rate per second of simulated time; each tick removes this fraction times the time step")
		outPrefix    = flag.String("out", "erosion", "filename prefix for the PNG snapshots")
	)
	flag.Parse()

	w, h := *size, *size

	gen := generators.NewMidpointDisplacement(w, h)
	gen.Generate(1.0, 0.55)

	grid := erosion.NewFlatGrid(w, h)
	for i, v := range gen.Heightmap() {
		grid.HeightBuf[i] = v * float32(*maxHeight)
	}

	sim := erosion.NewSimulation(w, h)
	params := erosion.Parameters{
		CarryCapacityK: constField(float32(*carryK)),
		DepositionK:    constField(float32(*depositK)),
		ErosionK:       constField(float32(*erosionRateK)),
		EvaporationK:   constField(0), // evaporation applied separately during settling below
	}

	report := newReport(w, h)

	closer.Bind(func() {
		report.heightAfter = sumFloat32(grid.HeightBuf)
		log.Printf("interrupted after %d ticks", report.ticks)
		report.log()
		mustWriteSnapshots(*outPrefix, grid, sim)
	})

	log.Printf("raining for %d ticks over a %dx%d grid", *rainTicks, w, h)
	report.heightBefore = sumFloat32(grid.HeightBuf)

	rain := newRainField(w, h, float32(*rainRate), float32(*rainRadius))
	for t := 0; t < *rainTicks; t++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				grid.AddWater(x, y, rain(x, y))
			}
		}
		sim.Tick(grid, params)
		report.ticks++
	}

	log.Printf("settling for %d ticks", *settleTicks)
	settleParams := params
	settleParams.EvaporationK = constField(float32(*evaporationK))
	for t := 0; t < *settleTicks; t++ {
		sim.Tick(grid, settleParams)
		report.ticks++
	}

	report.sedimentBeforeTermination = sumFloat32(sim.Sediment())
	sim.TerminateRainfall(grid.AddHeight)
	report.heightAfter = sumFloat32(grid.HeightBuf)

	report.log()
	mustWriteSnapshots(*outPrefix, grid, sim)

	closer.Close()
}

func constField(v float32) erosion.ParamField {
	return func(_, _ int) float32 { return v }
}

func sumFloat32(vs []float32) float32 {
	var total float32
	for _, v := range vs {
		total += v
	}
	return total
}
