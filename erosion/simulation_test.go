package erosion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSimulationRejectsTinyGrids(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 8},
		{"zero height", 8, 0},
		{"width one", 1, 8},
		{"height one", 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() {
				NewSimulation(tt.w, tt.h)
			})
		})
	}
}

func TestNewSimulationDefaults(t *testing.T) {
	sim := NewSimulation(4, 4)
	assert.Equal(t, 4, sim.Width())
	assert.Equal(t, 4, sim.Height())
	assert.Equal(t, float32(0.1), sim.p.timeStep)
	assert.Equal(t, float32(9.81), sim.p.gravity)
	assert.Equal(t, float32(1.0), sim.p.pipeCrossSection)

	for _, v := range sim.Sediment() {
		assert.Zero(t, v)
	}
}

func TestSettersApply(t *testing.T) {
	sim := NewSimulation(3, 3)
	sim.SetTimeStep(0.05)
	sim.SetMetersPerX(2)
	sim.SetMetersPerY(2)
	sim.SetPipeCrossSection(0.5)
	sim.SetGravity(1.0)
	sim.SetMinTilt(0.01)

	assert.Equal(t, float32(0.05), sim.p.timeStep)
	assert.Equal(t, float32(2), sim.p.metersPerX)
	assert.Equal(t, float32(2), sim.p.metersPerY)
	assert.Equal(t, float32(0.5), sim.p.pipeCrossSection)
	assert.Equal(t, float32(1.0), sim.p.gravity)
	assert.Equal(t, float32(0.01), sim.p.minTilt)
}
