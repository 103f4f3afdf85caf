package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-sod/qtree/internal/brute"
	"github.com/go-sod/qtree/internal/buildinfo"
	"github.com/go-sod/qtree/internal/config"
	"github.com/go-sod/qtree/internal/index"
	"github.com/go-sod/qtree/internal/logging"
	"github.com/go-sod/qtree/internal/metric"
	"github.com/go-sod/qtree/internal/scenario"
	"github.com/go-sod/qtree/internal/server"
	"github.com/go-sod/qtree/internal/setup"
	"github.com/go-sod/qtree/internal/shutdown"
	"github.com/go-sod/qtree/internal/srvenv"
	"github.com/go-sod/qtree/pkg/container/quadtree"
	"github.com/go-sod/qtree/pkg/geom"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintln(os.Stdout, buildinfo.Info.String())

	ctx, done := shutdown.New()
	defer done()
	logger := logging.FromContext(ctx)
	if err := run(ctx); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	cfg := config.Config{}
	env, err := setup.Setup(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}

	points, err := env.ProvideSource()(ctx)
	if err != nil {
		return fmt.Errorf("point source: %w", err)
	}
	tree, err := env.ProvideBuilder()(ctx, points)
	if err != nil {
		return fmt.Errorf("index build: %w", err)
	}

	summary := index.Classify(tree)
	metric.Record(ctx, summary.Stats)
	logger.Infow("tree built",
		"points", summary.Points,
		"capacity", tree.Capacity(),
		"leaves", summary.Leaves,
		"occupied", summary.Occupied,
		"empty", summary.Empty,
		"depth", summary.Depth,
		"nodes", summary.Stats.Nodes,
		"rejected", summary.Stats.Rejected,
		"overflowed", summary.Stats.Overflowed,
	)

	if err := runScenario(ctx, env, tree, points); err != nil {
		return err
	}

	exporter := env.Exporter()
	if exporter == nil {
		return nil
	}
	srv, err := server.New(cfg.Metrics.Addr)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}
	return srv.ServeHTTPHandler(ctx, server.Routes(ctx, exporter))
}

func runScenario(ctx context.Context, env *srvenv.SrvEnv, tree *quadtree.Tree, points []geom.Point) error {
	logger := logging.FromContext(ctx)
	queries, cfg := env.Scenario()
	if len(queries) == 0 {
		return nil
	}
	opts := []scenario.Option{scenario.WithConcurrency(cfg.Concurrency)}
	if cfg.Verify {
		opts = append(opts, scenario.WithBaseline(baselineFor(tree, points)))
	}
	results, err := scenario.Run(ctx, tree, queries, opts...)
	if err != nil {
		return fmt.Errorf("scenario.Run: %w", err)
	}
	for _, result := range results {
		logger.Infow("query",
			"name", result.Query.Name,
			"kind", result.Query.Kind,
			"found", result.Len(),
			"elapsed", result.Elapsed,
		)
	}
	return nil
}

// baselineFor scans only the points the tree could accept, so rejected
// out-of-bounds points never show up as expected answers.
func baselineFor(tree *quadtree.Tree, points []geom.Point) *brute.Index {
	boundary := tree.Boundary()
	b := brute.New()
	for _, p := range points {
		if boundary.Contains(p) {
			b.Append(p)
		}
	}
	return b
}
