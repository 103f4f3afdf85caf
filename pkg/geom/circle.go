package geom

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidRadius = errors.New("radius must be positive")

type Circle struct {
	X, Y float64
	R    float64
	rSq  float64
}

func NewCircle(x, y, r float64) (Circle, error) {
	if !(r > 0) || math.IsInf(r, 0) {
		return Circle{}, fmt.Errorf("circle r=%v: %w", r, ErrInvalidRadius)
	}
	return Circle{X: x, Y: y, R: r, rSq: r * r}, nil
}

func MustCircle(x, y, r float64) Circle {
	c, err := NewCircle(x, y, r)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Circle) Center() Point {
	return Point{X: c.X, Y: c.Y}
}

func (c Circle) Contains(p Point) bool {
	return c.Center().SquaredDistanceTo(p) <= c.rSq
}

// Intersects clamps the center of c onto b and compares the distance to that
// closest point against the radius.
func (c Circle) Intersects(b AABB) bool {
	closest := Point{
		X: clamp(c.X, b.Left, b.Right),
		Y: clamp(c.Y, b.Top, b.Bottom),
	}
	return c.Center().SquaredDistanceTo(closest) <= c.rSq
}
