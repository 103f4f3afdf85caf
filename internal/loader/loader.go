// Package loader feeds points to the index from an OBJ model or a random
// generator.
package loader

import (
	"context"
	"fmt"

	"github.com/go-sod/qtree/internal/logging"
	"github.com/go-sod/qtree/pkg/geom"
)

// Source produces the points to index.
type Source func(ctx context.Context) ([]geom.Point, error)

type ProvideFn func(bounds geom.AABB) (Source, error)

// SourceFor picks the OBJ reader when an input file is configured and the
// random generator otherwise.
func SourceFor(cfg *Config) ProvideFn {
	return func(bounds geom.AABB) (Source, error) {
		if cfg.InputFile != "" {
			if cfg.Scale == 0 {
				return nil, fmt.Errorf("obj scale must not be zero")
			}
			return func(ctx context.Context) ([]geom.Point, error) {
				logging.FromContext(ctx).Infow("reading obj model", "file", cfg.InputFile, "scale", cfg.Scale)
				return ReadOBJFile(cfg.InputFile, WithScale(cfg.Scale), WithOffset(cfg.OffsetX, cfg.OffsetY))
			}, nil
		}
		if cfg.RandomPoints < 0 {
			return nil, fmt.Errorf("random points must not be negative, got %d", cfg.RandomPoints)
		}
		return func(ctx context.Context) ([]geom.Point, error) {
			logging.FromContext(ctx).Infow("generating random points", "count", cfg.RandomPoints, "bounds", bounds.String())
			return Random(cfg.RandomPoints, bounds, cfg.RandomSeed), nil
		}, nil
	}
}
