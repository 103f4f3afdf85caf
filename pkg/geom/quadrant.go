package geom

import "fmt"

// Quadrant names one of the four children of a subdivided rectangle.
// The y axis grows downwards, so "north" is the half with the smaller y.
type Quadrant uint8

const (
	NE Quadrant = iota
	NW
	SE
	SW
)

// Quadrants lists every quadrant in the fixed order used for insertion and traversal.
var Quadrants = [4]Quadrant{NE, NW, SE, SW}

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "ne"
	case NW:
		return "nw"
	case SE:
		return "se"
	case SW:
		return "sw"
	default:
		return fmt.Sprintf("quadrant(%d)", uint8(q))
	}
}

// offset returns the sign of the center shift along x and y for q.
func (q Quadrant) offset() (float64, float64) {
	switch q {
	case NE:
		return 1, -1
	case NW:
		return -1, -1
	case SE:
		return 1, 1
	case SW:
		return -1, 1
	default:
		panic(fmt.Sprintf("geom: unknown quadrant %d", uint8(q)))
	}
}
