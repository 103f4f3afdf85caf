package geom

import (
	"math"
	"strconv"
)

// Point is a location on the plane. Z and Data are carried along for callers
// and never take part in any geometric computation.
type Point struct {
	X    float64
	Y    float64
	Z    float64
	Data interface{}
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) WithZ(z float64) Point {
	p.Z = z
	return p
}

func (p Point) WithData(data interface{}) Point {
	p.Data = data
	return p
}

func (p Point) SquaredDistanceTo(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return dx*dx + dy*dy
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Sqrt(p.SquaredDistanceTo(other))
}

// Equal compares coordinates only.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y && p.Z == other.Z
}

func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "]"
}
