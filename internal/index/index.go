// Package index builds a quadtree from a point set and keeps it usable when
// degenerate input piles points up at max depth.
package index

import (
	"context"
	"fmt"

	"github.com/go-sod/qtree/internal/logging"
	"github.com/go-sod/qtree/pkg/container/quadtree"
	"github.com/go-sod/qtree/pkg/geom"
)

// how many inserts run between two context checks
const checkEvery = 1024

type ProvideFn func(ctx context.Context, points []geom.Point) (*quadtree.Tree, error)

func BuilderFor(cfg *Config) (ProvideFn, error) {
	if _, err := cfg.Boundary(); err != nil {
		return nil, fmt.Errorf("index boundary: %w", err)
	}
	if cfg.Capacity < 1 {
		return nil, fmt.Errorf("capacity %d: %w", cfg.Capacity, quadtree.ErrInvalidCapacity)
	}
	return func(ctx context.Context, points []geom.Point) (*quadtree.Tree, error) {
		return Build(ctx, points, *cfg)
	}, nil
}

// Build inserts points into a new tree. When RebuildOnOverflow is set and more
// than OverflowLimit points ended up in overflow lists, the tree is rebuilt
// with capacity + 1 until the overflow fits or MaxCapacity is reached.
func Build(ctx context.Context, points []geom.Point, cfg Config) (*quadtree.Tree, error) {
	logger := logging.FromContext(ctx)
	boundary, err := cfg.Boundary()
	if err != nil {
		return nil, fmt.Errorf("index boundary: %w", err)
	}

	capacity := cfg.Capacity
	for {
		tree, err := build(ctx, boundary, capacity, cfg.MaxDepth, points)
		if err != nil {
			return nil, err
		}
		stats := tree.Stats()
		if stats.Rejected > 0 {
			logger.Warnw("points outside the boundary were dropped", "rejected", stats.Rejected, "boundary", boundary.String())
		}
		if stats.Inconsistent > 0 {
			logger.Errorw("points lost to boundary rounding", "inconsistent", stats.Inconsistent)
		}
		if !cfg.RebuildOnOverflow || stats.Overflowed <= cfg.OverflowLimit {
			return tree, nil
		}
		if capacity >= cfg.MaxCapacity {
			logger.Warnw("overflow persists at max capacity",
				"capacity", capacity,
				"overflowed", stats.Overflowed,
			)
			return tree, nil
		}
		logger.Infow("rebuilding tree with larger capacity",
			"from", capacity,
			"to", capacity+1,
			"overflowed", stats.Overflowed,
		)
		capacity++
	}
}

func build(ctx context.Context, boundary geom.AABB, capacity, maxDepth int, points []geom.Point) (*quadtree.Tree, error) {
	logger := logging.FromContext(ctx)
	tree, err := quadtree.New(boundary, capacity,
		quadtree.WithMaxDepth(maxDepth),
		quadtree.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("quadtree.New: %w", err)
	}
	for i, p := range points {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("building index: %w", err)
			}
		}
		if !tree.Insert(p) {
			logger.Debugw("point not inserted", "point", p.String())
		}
	}
	return tree, nil
}

// Summary describes a classified tree.
type Summary struct {
	Points   int
	Leaves   int
	Occupied int
	Empty    int
	Depth    int
	Stats    quadtree.Stats
}

// Classify runs the classification pass and counts the result.
func Classify(tree *quadtree.Tree) Summary {
	tree.Classify()
	s := Summary{Points: tree.Len(), Stats: tree.Stats(), Depth: tree.Stats().Depth}
	tree.Walk(func(n *quadtree.Node) bool {
		switch n.Classification() {
		case quadtree.Occupied:
			s.Occupied++
		case quadtree.Empty:
			s.Empty++
		}
		if n.IsLeaf() {
			s.Leaves++
		}
		return true
	})
	return s
}
