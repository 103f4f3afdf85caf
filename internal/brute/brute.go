// Package brute answers the same queries as the quadtree by scanning every
// point. It is the reference the tree is checked against.
package brute

import (
	"math"

	"github.com/go-sod/qtree/pkg/container/quadtree"
	"github.com/go-sod/qtree/pkg/geom"
	"github.com/go-sod/qtree/pkg/pqueue"
)

func New(points ...geom.Point) *Index {
	b := &Index{}
	b.Append(points...)
	return b
}

type Index struct {
	points []geom.Point
}

func (b *Index) Append(points ...geom.Point) {
	b.points = append(b.points, points...)
}

func (b *Index) Len() int {
	return len(b.points)
}

func (b *Index) Points() []geom.Point {
	return append([]geom.Point(nil), b.points...)
}

func (b *Index) Query(shape quadtree.Shape) []geom.Point {
	var found []geom.Point
	for _, p := range b.points {
		if shape.Contains(p) {
			found = append(found, p)
		}
	}
	return found
}

// KNN returns up to k points nearest to target within maxDistance. Points at
// the same distance keep the order they were appended in.
func (b *Index) KNN(target geom.Point, k int, maxDistance float64) []quadtree.Neighbor {
	if k <= 0 || math.IsNaN(maxDistance) || maxDistance < 0 {
		return []quadtree.Neighbor{}
	}
	limit := maxDistance * maxDistance
	pq := pqueue.New(pqueue.WithCap(uint(k)))
	for _, p := range b.points {
		d := target.SquaredDistanceTo(p)
		if d <= limit {
			pq.Push(p, d)
		}
	}
	knn := make([]quadtree.Neighbor, pq.Len())
	for i := range knn {
		value, d := pq.Seek(i)
		knn[i] = quadtree.Neighbor{Point: value.(geom.Point), Distance: math.Sqrt(d)}
	}
	return knn
}
