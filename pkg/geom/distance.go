package geom

import (
	"math"
)

// axisDistance is the distance from k to the closed interval [min, max].
func axisDistance(k, min, max float64) float64 {
	if k < min {
		return min - k
	}
	if k <= max {
		return 0
	}
	return k - max
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(v, max))
}
