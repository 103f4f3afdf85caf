// Package scenario runs a batch of range and nearest-neighbor queries, read
// from a TOML file, against a built tree.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/go-sod/qtree/pkg/container/quadtree"
	"github.com/go-sod/qtree/pkg/geom"
)

var (
	ErrUnknownKind = errors.New("unknown query kind")
	ErrInvalidK    = errors.New("k must be positive")
)

type Kind string

const (
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindNearest Kind = "nearest"
)

// Query is one [[query]] table. For nearest queries a zero MaxDistance means
// no distance limit.
type Query struct {
	Name        string  `toml:"name"`
	Kind        Kind    `toml:"kind"`
	X           float64 `toml:"x"`
	Y           float64 `toml:"y"`
	W           float64 `toml:"w"`
	H           float64 `toml:"h"`
	R           float64 `toml:"r"`
	K           int     `toml:"k"`
	MaxDistance float64 `toml:"max_distance"`
}

type file struct {
	Query []Query `toml:"query"`
}

func Parse(data string) ([]Query, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return validate(f.Query)
}

func Load(path string) ([]Query, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	return validate(f.Query)
}

func validate(queries []Query) ([]Query, error) {
	for i, q := range queries {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("query %d (%s): %w", i, q.Name, err)
		}
	}
	return queries, nil
}

func (q Query) Validate() error {
	switch q.Kind {
	case KindRect, KindCircle:
		_, err := q.Shape()
		return err
	case KindNearest:
		if q.K < 1 {
			return fmt.Errorf("%w, got %d", ErrInvalidK, q.K)
		}
		if q.MaxDistance < 0 || math.IsNaN(q.MaxDistance) {
			return fmt.Errorf("max distance must not be negative, got %v", q.MaxDistance)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, q.Kind)
	}
}

// Shape builds the range of a rect or circle query.
func (q Query) Shape() (quadtree.Shape, error) {
	switch q.Kind {
	case KindRect:
		return geom.NewAABB(q.X, q.Y, q.W, q.H)
	case KindCircle:
		return geom.NewCircle(q.X, q.Y, q.R)
	default:
		return nil, fmt.Errorf("%w: %q has no shape", ErrUnknownKind, q.Kind)
	}
}

func (q Query) Target() geom.Point {
	return geom.NewPoint(q.X, q.Y)
}

func (q Query) Limit() float64 {
	if q.MaxDistance == 0 {
		return math.Inf(1)
	}
	return q.MaxDistance
}
