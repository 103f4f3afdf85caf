package scenario

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-sod/qtree/internal/brute"
	"github.com/go-sod/qtree/internal/logging"
	"github.com/go-sod/qtree/internal/metric"
	"github.com/go-sod/qtree/pkg/container/quadtree"
	"github.com/go-sod/qtree/pkg/geom"
	"golang.org/x/sync/errgroup"
)

var ErrMismatch = errors.New("result differs from the linear scan")

type Result struct {
	Query     Query
	Points    []geom.Point
	Neighbors []quadtree.Neighbor
	Elapsed   time.Duration
}

func (r Result) Len() int {
	if r.Query.Kind == KindNearest {
		return len(r.Neighbors)
	}
	return len(r.Points)
}

type Option func(*runner)

// WithBaseline checks every answer against a linear scan over the same points.
func WithBaseline(b *brute.Index) Option {
	return func(r *runner) {
		r.baseline = b
	}
}

func WithConcurrency(n int) Option {
	return func(r *runner) {
		r.concurrency = n
	}
}

type runner struct {
	baseline    *brute.Index
	concurrency int
}

// Run executes queries in parallel and returns their results in input order.
// The tree must not be modified while Run is in progress.
func Run(ctx context.Context, tree *quadtree.Tree, queries []Query, opts ...Option) ([]Result, error) {
	r := &runner{}
	for _, f := range opts {
		f(r)
	}

	results := make([]Result, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i := range queries {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.run(ctx, tree, queries[i])
			if err != nil {
				return fmt.Errorf("query %d (%s): %w", i, queries[i].Name, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *runner) run(ctx context.Context, tree *quadtree.Tree, q Query) (Result, error) {
	logger := logging.FromContext(ctx)
	result := Result{Query: q}
	start := time.Now()
	switch q.Kind {
	case KindRect, KindCircle:
		shape, err := q.Shape()
		if err != nil {
			return result, err
		}
		result.Points = tree.Query(shape)
		result.Elapsed = time.Since(start)
		if r.baseline != nil && !samePoints(result.Points, r.baseline.Query(shape)) {
			return result, ErrMismatch
		}
	case KindNearest:
		result.Neighbors = tree.NearestNeighbors(q.Target(), q.K, q.Limit())
		result.Elapsed = time.Since(start)
		if r.baseline != nil && !sameDistances(result.Neighbors, r.baseline.KNN(q.Target(), q.K, q.Limit())) {
			return result, ErrMismatch
		}
	default:
		return result, fmt.Errorf("%w: %q", ErrUnknownKind, q.Kind)
	}
	metric.RecordQuery(ctx, string(q.Kind), result.Elapsed)
	logger.Debugw("query done",
		"name", q.Name,
		"kind", q.Kind,
		"found", result.Len(),
		"elapsed", result.Elapsed,
	)
	return result, nil
}

func samePoints(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	a = sorted(a)
	b = sorted(b)
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func sorted(points []geom.Point) []geom.Point {
	points = append([]geom.Point(nil), points...)
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
	return points
}

// sameDistances ignores which of several equidistant points was picked.
func sameDistances(a, b []quadtree.Neighbor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Distance != b[i].Distance {
			return false
		}
	}
	return true
}
