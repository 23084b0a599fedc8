package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidpointDisplacementProducesNormalizedHeightmap(t *testing.T) {
	gen := NewMidpointDisplacement(9, 9)
	gen.Generate(0.5, 0.5)

	w, h := gen.Dimensions()
	assert.Equal(t, 9, w)
	assert.Equal(t, 9, h)

	hm := gen.Heightmap()
	assert.Len(t, hm, 81)

	var min, max float32 = 1, 0
	for _, v := range hm {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
	assert.InDelta(t, 0.0, float64(min), 1e-5)
	assert.InDelta(t, 1.0, float64(max), 1e-5)
}
