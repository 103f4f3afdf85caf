package geom

import (
	"math"
	"testing"
)

func TestPoint_SquaredDistanceTo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected float64
	}{
		{name: "same", p: NewPoint(1, 1), p1: NewPoint(1, 1), expected: 0},
		{name: "pythagorean", p: NewPoint(0, 0), p1: NewPoint(3, 4), expected: 25},
		{name: "negative", p: NewPoint(-1, -2), p1: NewPoint(2, 2), expected: 25},
		{name: "z_ignored", p: NewPoint(0, 0).WithZ(100), p1: NewPoint(3, 4), expected: 25},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.p.SquaredDistanceTo(test.p1); got != test.expected {
				t.Errorf("squared distance got: %v, expected: %v", got, test.expected)
			}
			if got := test.p.DistanceTo(test.p1); got != math.Sqrt(test.expected) {
				t.Errorf("distance got: %v, expected: %v", got, math.Sqrt(test.expected))
			}
		})
	}
}

func TestPoint_Equal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected bool
	}{
		{name: "positive", p: NewPoint(10, 10), p1: NewPoint(10, 10), expected: true},
		{name: "payload_ignored", p: NewPoint(10, 10).WithData("a"), p1: NewPoint(10, 10).WithData("b"), expected: true},
		{name: "negative", p: NewPoint(10, 10), p1: NewPoint(11, 10), expected: false},
	}
	for _, test := range tests {
		if test.p.Equal(test.p1) != test.expected {
			t.Errorf("the comparison of points, got: %v, expected: %v", test.p.Equal(test.p1), test.expected)
		}
	}
}

func TestPoint_String(t *testing.T) {
	t.Parallel()
	if got := NewPoint(1.5, -2).String(); got != "[1.5,-2]" {
		t.Errorf("string form got: %s, expected: [1.5,-2]", got)
	}
}
