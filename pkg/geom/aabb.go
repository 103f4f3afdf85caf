package geom

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidExtent = errors.New("width and height must be positive")

// AABB is an axis-aligned rectangle described by its center and full extents.
type AABB struct {
	X, Y   float64
	W, H   float64
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

func NewAABB(x, y, w, h float64) (AABB, error) {
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return AABB{}, fmt.Errorf("aabb %vx%v: %w", w, h, ErrInvalidExtent)
	}
	return newAABB(x, y, w, h), nil
}

// MustAABB is like NewAABB but panics on invalid extents.
func MustAABB(x, y, w, h float64) AABB {
	b, err := NewAABB(x, y, w, h)
	if err != nil {
		panic(err)
	}
	return b
}

func newAABB(x, y, w, h float64) AABB {
	return AABB{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Left:   x - w/2,
		Right:  x + w/2,
		Top:    y - h/2,
		Bottom: y + h/2,
	}
}

// Contains reports whether p lies inside b. All four edges are inclusive.
func (b AABB) Contains(p Point) bool {
	return b.Left <= p.X && p.X <= b.Right && b.Top <= p.Y && p.Y <= b.Bottom
}

// Intersects reports whether b and other overlap or touch.
func (b AABB) Intersects(other AABB) bool {
	return !(b.Right < other.Left ||
		other.Right < b.Left ||
		b.Bottom < other.Top ||
		other.Bottom < b.Top)
}

// Quadrant returns the child rectangle covering quadrant q of b.
func (b AABB) Quadrant(q Quadrant) AABB {
	sx, sy := q.offset()
	return newAABB(b.X+sx*b.W/4, b.Y+sy*b.H/4, b.W/2, b.H/2)
}

// SquaredDistanceTo returns the squared distance from p to the closest point of b,
// zero when p is inside.
func (b AABB) SquaredDistanceTo(p Point) float64 {
	dx := axisDistance(p.X, b.Left, b.Right)
	dy := axisDistance(p.Y, b.Top, b.Bottom)
	return dx*dx + dy*dy
}

func (b AABB) String() string {
	return fmt.Sprintf("{x=%g y=%g w=%g h=%g}", b.X, b.Y, b.W, b.H)
}
