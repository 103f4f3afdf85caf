package quadtree

import (
	"math"

	"github.com/go-sod/qtree/pkg/geom"
	"github.com/go-sod/qtree/pkg/pqueue"
)

// Neighbor is a point found by a nearest-neighbor search and its distance to
// the target.
type Neighbor struct {
	Point    geom.Point
	Distance float64
}

// NearestNeighbors returns up to k points closest to target, nearest first,
// none farther than maxDistance. Pass math.Inf(1) for an unbounded search.
// Points at equal distance keep traversal order.
func (t *Tree) NearestNeighbors(target geom.Point, k int, maxDistance float64) []Neighbor {
	if k <= 0 || math.IsNaN(maxDistance) || maxDistance < 0 {
		return []Neighbor{}
	}
	s := &search{
		target: target,
		limit:  maxDistance * maxDistance,
		queue:  pqueue.New(pqueue.WithCap(uint(k))),
	}
	s.visit(t.root, t.root.boundary.SquaredDistanceTo(target))

	neighbors := make([]Neighbor, s.queue.Len())
	for i := range neighbors {
		value, d := s.queue.Seek(i)
		neighbors[i] = Neighbor{Point: value.(geom.Point), Distance: math.Sqrt(d)}
	}
	return neighbors
}

// Nearest returns the single closest point to target.
func (t *Tree) Nearest(target geom.Point) (Neighbor, bool) {
	nn := t.NearestNeighbors(target, 1, math.Inf(1))
	if len(nn) == 0 {
		return Neighbor{}, false
	}
	return nn[0], true
}

type search struct {
	target geom.Point
	// squared maxDistance
	limit float64
	queue *pqueue.Queue
}

// worst is the largest squared distance a point may have and still be kept.
func (s *search) worst() float64 {
	if s.queue.Full() {
		return s.queue.Worst()
	}
	return s.limit
}

func (s *search) offer(p geom.Point) {
	d := s.target.SquaredDistanceTo(p)
	if s.queue.Full() {
		if d < s.queue.Worst() {
			s.queue.Push(p, d)
		}
		return
	}
	if d <= s.limit {
		s.queue.Push(p, d)
	}
}

func (s *search) visit(n *Node, lowerBound float64) {
	if lowerBound > s.worst() {
		return
	}
	for _, p := range n.points {
		s.offer(p)
	}
	for _, p := range n.overflow {
		s.offer(p)
	}
	if n.children == nil {
		return
	}

	var (
		order  [4]int
		bounds [4]float64
	)
	for i, child := range n.children {
		bounds[i] = child.boundary.SquaredDistanceTo(s.target)
		order[i] = i
		for j := i; j > 0 && bounds[order[j]] < bounds[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	for _, i := range order {
		s.visit(n.children[i], bounds[i])
	}
}
