package loader

import (
	"github.com/go-sod/qtree/pkg/geom"
	"github.com/google/uuid"
	"github.com/valyala/fastrand"
)

// Random returns n points spread uniformly over bounds, each tagged with a
// fresh uuid.UUID payload. A zero seed draws one from the runtime.
func Random(n int, bounds geom.AABB, seed uint32) []geom.Point {
	var rng fastrand.RNG
	if seed != 0 {
		rng.Seed(seed)
	}
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{
			X:    bounds.Left + unit(&rng)*bounds.W,
			Y:    bounds.Top + unit(&rng)*bounds.H,
			Data: uuid.New(),
		}
	}
	return points
}

// unit returns a float in [0, 1).
func unit(rng *fastrand.RNG) float64 {
	return float64(rng.Uint32()) / (1 << 32)
}
