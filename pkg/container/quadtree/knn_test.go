package quadtree_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-sod/qtree/internal/brute"
	"github.com/go-sod/qtree/pkg/container/quadtree"
	"github.com/go-sod/qtree/pkg/geom"
)

func build(t testing.TB, boundary geom.AABB, capacity int, points []geom.Point) *quadtree.Tree {
	t.Helper()
	tree, err := quadtree.New(boundary, capacity)
	if err != nil {
		t.Fatalf("unable to create tree: %v", err)
	}
	for _, p := range points {
		if !tree.Insert(p) {
			t.Fatalf("point %v was rejected", p)
		}
	}
	return tree
}

func TestTree_NearestNeighborsExample(t *testing.T) {
	t.Parallel()
	tree := build(t, geom.MustAABB(0, 0, 40, 40), 1, []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(3, 4),
	})
	got := tree.NearestNeighbors(geom.NewPoint(0, 0), 1, math.Inf(1))
	if len(got) != 1 || !got[0].Point.Equal(geom.NewPoint(0, 0)) || got[0].Distance != 0 {
		t.Fatalf("nearest neighbor got: %s, expected [0,0] at distance 0", spew.Sdump(got))
	}
	got = tree.NearestNeighbors(geom.NewPoint(0, 0), 3, math.Inf(1))
	expected := []float64{0, 5, math.Sqrt(200)}
	for i := range expected {
		if got[i].Distance != expected[i] {
			t.Errorf("distance at %d got: %v, expected: %v", i, got[i].Distance, expected[i])
		}
	}
	nearest, ok := tree.Nearest(geom.NewPoint(9, 9))
	if !ok || !nearest.Point.Equal(geom.NewPoint(10, 10)) {
		t.Errorf("nearest to [9,9] got: %v, expected: [10,10]", nearest)
	}
}

func TestTree_NearestNeighborsEdgeCases(t *testing.T) {
	t.Parallel()
	empty := build(t, geom.MustAABB(0, 0, 10, 10), 4, nil)
	if _, ok := empty.Nearest(geom.NewPoint(0, 0)); ok {
		t.Errorf("empty tree must not return a neighbor")
	}
	tree := build(t, geom.MustAABB(0, 0, 10, 10), 2, []geom.Point{
		geom.NewPoint(1, 0),
		geom.NewPoint(4, 0),
		geom.NewPoint(-2, 0),
	})
	tests := []struct {
		name        string
		target      geom.Point
		k           int
		maxDistance float64
		expected    []float64
	}{
		{name: "k_above_len", target: geom.NewPoint(0, 0), k: 10, maxDistance: math.Inf(1), expected: []float64{1, 2, 4}},
		{name: "bounded", target: geom.NewPoint(0, 0), k: 10, maxDistance: 2, expected: []float64{1, 2}},
		{name: "nothing_in_range", target: geom.NewPoint(0, 0), k: 10, maxDistance: 0.5, expected: []float64{}},
		{name: "zero_k", target: geom.NewPoint(0, 0), k: 0, maxDistance: math.Inf(1), expected: []float64{}},
		{name: "negative_distance", target: geom.NewPoint(0, 0), k: 1, maxDistance: -1, expected: []float64{}},
		{name: "nan_distance", target: geom.NewPoint(0, 0), k: 1, maxDistance: math.NaN(), expected: []float64{}},
		{name: "target_outside", target: geom.NewPoint(100, 0), k: 1, maxDistance: math.Inf(1), expected: []float64{96}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := tree.NearestNeighbors(test.target, test.k, test.maxDistance)
			if len(got) != len(test.expected) {
				t.Fatalf("neighbors got: %s, expected distances %v", spew.Sdump(got), test.expected)
			}
			for i := range got {
				if got[i].Distance != test.expected[i] {
					t.Errorf("distance at %d got: %v, expected: %v", i, got[i].Distance, test.expected[i])
				}
			}
		})
	}
}

func TestTree_NearestNeighborsMatchBaseline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		n           int
		capacity    int
		k           int
		maxDistance float64
	}{
		{name: "k1_unbounded", n: 2000, capacity: 4, k: 1, maxDistance: math.Inf(1)},
		{name: "k10_unbounded", n: 2000, capacity: 4, k: 10, maxDistance: math.Inf(1)},
		{name: "k50_capacity1", n: 1000, capacity: 1, k: 50, maxDistance: math.Inf(1)},
		{name: "k25_bounded", n: 3000, capacity: 8, k: 25, maxDistance: 40},
		{name: "k_all", n: 100, capacity: 2, k: 100, maxDistance: math.Inf(1)},
	}
	for i, test := range tests {
		test, seed := test, int64(100+i)
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			rnd := rand.New(rand.NewSource(seed))
			boundary := geom.MustAABB(500, 500, 1000, 1000)
			points := make([]geom.Point, test.n)
			for i := range points {
				points[i] = geom.NewPoint(rnd.Float64()*1000, rnd.Float64()*1000)
			}
			tree := build(t, boundary, test.capacity, points)
			baseline := brute.New(points...)
			for q := 0; q < 50; q++ {
				// targets outside the boundary too
				target := geom.NewPoint(rnd.Float64()*1400-200, rnd.Float64()*1400-200)
				got := tree.NearestNeighbors(target, test.k, test.maxDistance)
				expected := baseline.KNN(target, test.k, test.maxDistance)
				if len(got) != len(expected) {
					t.Fatalf("target %v: neighbors got: %d, expected: %d", target, len(got), len(expected))
				}
				for i := range got {
					if got[i].Distance != expected[i].Distance {
						t.Fatalf("target %v: distance at %d got: %v, expected: %v", target, i, got[i].Distance, expected[i].Distance)
					}
					if i > 0 && got[i].Distance < got[i-1].Distance {
						t.Fatalf("target %v: neighbors are not ascending at %d", target, i)
					}
					if got[i].Distance > test.maxDistance {
						t.Fatalf("target %v: neighbor %v beyond max distance", target, got[i])
					}
				}
			}
		})
	}
}

func TestTree_QueryMatchesBaseline(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(42))
	boundary := geom.MustAABB(0, 0, 200, 200)
	points := make([]geom.Point, 3000)
	for i := range points {
		points[i] = geom.NewPoint(rnd.Float64()*200-100, rnd.Float64()*200-100).WithData(i)
	}
	tree := build(t, boundary, 6, points)
	baseline := brute.New(points...)
	shapes := []quadtree.Shape{
		geom.MustAABB(0, 0, 10, 10),
		geom.MustAABB(-90, 90, 30, 5),
		geom.MustAABB(300, 300, 10, 10),
		geom.MustCircle(10, -20, 35),
		geom.MustCircle(-100, -100, 15),
		geom.MustCircle(0, 0, 1000),
	}
	for _, shape := range shapes {
		got := tree.Query(shape)
		expected := baseline.Query(shape)
		if len(got) != len(expected) {
			t.Errorf("query %v got: %d points, expected: %d", shape, len(got), len(expected))
			continue
		}
		ids := make(map[int]bool, len(got))
		for _, p := range got {
			ids[p.Data.(int)] = true
		}
		for _, p := range expected {
			if !ids[p.Data.(int)] {
				t.Errorf("query %v is missing point %v", shape, p)
			}
		}
	}
}
