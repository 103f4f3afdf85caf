/*
 * Copyright 2020 Dennis Kuhnert
 * Copyright 2020 Ivanov Nikita
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package quadtree implements a two-dimensional point quadtree with bounded
// leaves, range queries and k-nearest-neighbor search.
//
// A Tree is not safe for concurrent use. Queries never mutate the tree, so any
// number of them may run in parallel once all inserts are done.
package quadtree

import (
	"errors"
	"fmt"

	"github.com/go-sod/qtree/pkg/geom"
	"go.uber.org/zap"
)

const DefaultMaxDepth = 32

var (
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrInvalidMaxDepth = errors.New("max depth must not be negative")
)

// Shape is anything a range query can be run with. geom.AABB and geom.Circle
// both satisfy it.
type Shape interface {
	Intersects(geom.AABB) bool
	Contains(geom.Point) bool
}

type Option func(*Tree)

func WithMaxDepth(n int) Option {
	return func(t *Tree) {
		t.maxDepth = n
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// Stats counts what happened to the points handed to Insert.
type Stats struct {
	// Points stored in the tree.
	Inserted int
	// Points outside the root boundary.
	Rejected int
	// Points stored past capacity in a leaf at max depth.
	Overflowed int
	// Points a node accepted but none of its children did.
	Inconsistent int
	Nodes        int
	Leaves       int
	// Depth of the deepest node, the root is at depth 0.
	Depth int
}

func New(boundary geom.AABB, capacity int, opts ...Option) (*Tree, error) {
	if !(boundary.W > 0) || !(boundary.H > 0) {
		return nil, fmt.Errorf("root boundary %v: %w", boundary, geom.ErrInvalidExtent)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrInvalidCapacity)
	}
	t := &Tree{
		maxDepth: DefaultMaxDepth,
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.maxDepth < 0 {
		return nil, fmt.Errorf("max depth %d: %w", t.maxDepth, ErrInvalidMaxDepth)
	}
	t.root = newNode(boundary, capacity, 0)
	t.stats.Nodes = 1
	t.stats.Leaves = 1
	return t, nil
}

type Tree struct {
	root     *Node
	maxDepth int
	stats    Stats
	logger   *zap.SugaredLogger
}

// Insert stores p and reports whether it was accepted. A point outside the
// root boundary is rejected without touching the tree.
func (t *Tree) Insert(p geom.Point) bool {
	if !t.root.boundary.Contains(p) {
		t.stats.Rejected++
		return false
	}
	if !t.root.add(t, p) {
		return false
	}
	t.stats.Inserted++
	return true
}

// Query returns every point contained in shape, in traversal order.
func (t *Tree) Query(shape Shape) []geom.Point {
	return t.root.query(shape, nil)
}

// QueryAppend is like Query but appends the matches to dst.
func (t *Tree) QueryAppend(shape Shape, dst []geom.Point) []geom.Point {
	return t.root.query(shape, dst)
}

// Walk visits nodes in pre-order, NE, NW, SE, SW. Returning false from fn skips
// the children of that node.
func (t *Tree) Walk(fn func(n *Node) bool) {
	t.root.walk(fn)
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Boundary() geom.AABB {
	return t.root.boundary
}

func (t *Tree) Len() int {
	return t.stats.Inserted
}

func (t *Tree) Capacity() int {
	return t.root.capacity
}

func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

func (t *Tree) Stats() Stats {
	return t.stats
}

func (t *Tree) inconsistent(n *Node, p geom.Point) {
	t.stats.Inconsistent++
	t.logger.Warnw("point accepted by node but rejected by every child",
		"point", p.String(),
		"boundary", n.boundary.String(),
		"depth", n.depth,
	)
}
