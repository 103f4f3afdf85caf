package quadtree

import (
	"github.com/go-sod/qtree/pkg/geom"
)

// Node is a single cell of the tree. A leaf holds points directly, an internal
// node holds none and owns exactly four children.
type Node struct {
	boundary geom.AABB
	capacity int
	depth    int
	points   []geom.Point
	// points past capacity, only ever set on a leaf at max depth
	overflow []geom.Point
	children *[4]*Node
	class    Classification
}

func newNode(boundary geom.AABB, capacity, depth int) *Node {
	return &Node{
		boundary: boundary,
		capacity: capacity,
		depth:    depth,
		points:   make([]geom.Point, 0, capacity),
	}
}

func (n *Node) Boundary() geom.AABB {
	return n.boundary
}

func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Points returns a copy of the points held by n, overflow included.
func (n *Node) Points() []geom.Point {
	points := make([]geom.Point, 0, len(n.points)+len(n.overflow))
	points = append(points, n.points...)
	return append(points, n.overflow...)
}

// Overflow returns a copy of the points stored past capacity.
func (n *Node) Overflow() []geom.Point {
	return append([]geom.Point(nil), n.overflow...)
}

// Children returns the four children in NE, NW, SE, SW order, or nil for a leaf.
func (n *Node) Children() []*Node {
	if n.children == nil {
		return nil
	}
	return n.children[:]
}

func (n *Node) Child(q geom.Quadrant) *Node {
	if n.children == nil {
		return nil
	}
	return n.children[q]
}

func (n *Node) Classification() Classification {
	return n.class
}

func (n *Node) size() int {
	return len(n.points) + len(n.overflow)
}

// add stores p below n. The caller has already checked that n.boundary holds
// p, except when subdivision had to displace a point no child accepted.
func (n *Node) add(t *Tree, p geom.Point) bool {
	if n.children == nil {
		if len(n.points) < n.capacity {
			n.points = append(n.points, p)
			return true
		}
		if n.depth >= t.maxDepth {
			if len(n.overflow) == 0 {
				t.logger.Debugw("leaf at max depth is overflowing",
					"boundary", n.boundary.String(),
					"depth", n.depth,
				)
			}
			n.overflow = append(n.overflow, p)
			t.stats.Overflowed++
			return true
		}
		n.subdivide(t)
	}
	child, ok := n.childFor(p)
	if !ok && n.boundary.Contains(p) {
		t.inconsistent(n, p)
		return false
	}
	return child.add(t, p)
}

// subdivide creates the four children and moves every point of n into them.
func (n *Node) subdivide(t *Tree) {
	var children [4]*Node
	for i, q := range geom.Quadrants {
		children[i] = newNode(n.boundary.Quadrant(q), n.capacity, n.depth+1)
	}
	n.children = &children
	t.stats.Nodes += 4
	t.stats.Leaves += 3
	if n.depth+1 > t.stats.Depth {
		t.stats.Depth = n.depth + 1
	}

	points := n.points
	n.points = nil
	for _, p := range points {
		child, ok := n.childFor(p)
		if !ok && n.boundary.Contains(p) {
			t.inconsistent(n, p)
		}
		child.add(t, p)
	}
}

// childFor returns the first child, in quadrant order, containing p. When no
// child does it returns the child closest to p and false.
func (n *Node) childFor(p geom.Point) (*Node, bool) {
	for _, child := range n.children {
		if child.boundary.Contains(p) {
			return child, true
		}
	}
	closest := n.children[0]
	best := closest.boundary.SquaredDistanceTo(p)
	for _, child := range n.children[1:] {
		if d := child.boundary.SquaredDistanceTo(p); d < best {
			closest, best = child, d
		}
	}
	return closest, false
}

func (n *Node) query(shape Shape, found []geom.Point) []geom.Point {
	if !shape.Intersects(n.boundary) {
		return found
	}
	for _, p := range n.points {
		if shape.Contains(p) {
			found = append(found, p)
		}
	}
	for _, p := range n.overflow {
		if shape.Contains(p) {
			found = append(found, p)
		}
	}
	if n.children != nil {
		for _, child := range n.children {
			found = child.query(shape, found)
		}
	}
	return found
}

func (n *Node) walk(fn func(*Node) bool) {
	if !fn(n) || n.children == nil {
		return
	}
	for _, child := range n.children {
		child.walk(fn)
	}
}
