package erosion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// debugAssertNonNegative panics if v is negative. It is only ever called
// when debugChecks is enabled, keeping these invariant checks out of the
// hot path by default.
func debugAssertNonNegative(v float32, field string, x, y int) {
	if v < 0 {
		panic(fmt.Sprintf("erosion: %s(%d,%d) went negative: %v", field, x, y, v))
	}
}

func debugAssertNonNegativeFlux(f mgl32.Vec4, x, y int) {
	for i := 0; i < 4; i++ {
		if f[i] < 0 {
			panic(fmt.Sprintf("erosion: flux(%d,%d)[%d] went negative: %v", x, y, i, f[i]))
		}
	}
}
