// Package metric exposes tree statistics and query latencies as opencensus
// views.
package metric

import (
	"context"
	"fmt"
	"time"

	"contrib.go.opencensus.io/exporter/prometheus"
	"github.com/go-sod/qtree/internal/logging"
	"github.com/go-sod/qtree/pkg/container/quadtree"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	Inserted     = stats.Int64("qtree/inserted", "Points stored in the tree", stats.UnitDimensionless)
	Rejected     = stats.Int64("qtree/rejected", "Points outside the root boundary", stats.UnitDimensionless)
	Overflowed   = stats.Int64("qtree/overflowed", "Points stored past capacity at max depth", stats.UnitDimensionless)
	Inconsistent = stats.Int64("qtree/inconsistent", "Points a node accepted but none of its children did", stats.UnitDimensionless)
	Nodes        = stats.Int64("qtree/nodes", "Nodes in the tree", stats.UnitDimensionless)
	Depth        = stats.Int64("qtree/depth", "Depth of the deepest node", stats.UnitDimensionless)
	QueryLatency = stats.Float64("qtree/query_latency", "Query latency", stats.UnitMilliseconds)

	KeyKind = tag.MustNewKey("kind")
)

var Views = []*view.View{
	lastValue(Inserted),
	lastValue(Rejected),
	lastValue(Overflowed),
	lastValue(Inconsistent),
	lastValue(Nodes),
	lastValue(Depth),
	{
		Name:        QueryLatency.Name(),
		Description: QueryLatency.Description(),
		Measure:     QueryLatency,
		TagKeys:     []tag.Key{KeyKind},
		Aggregation: view.Distribution(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100),
	},
	{
		Name:        "qtree/query_count",
		Description: "Queries run",
		Measure:     QueryLatency,
		TagKeys:     []tag.Key{KeyKind},
		Aggregation: view.Count(),
	},
}

func lastValue(m stats.Measure) *view.View {
	return &view.View{
		Name:        m.Name(),
		Description: m.Description(),
		Measure:     m,
		Aggregation: view.LastValue(),
	}
}

func Register() error {
	if err := view.Register(Views...); err != nil {
		return fmt.Errorf("register views: %w", err)
	}
	return nil
}

// Record publishes a snapshot of the tree statistics.
func Record(ctx context.Context, s quadtree.Stats) {
	stats.Record(ctx,
		Inserted.M(int64(s.Inserted)),
		Rejected.M(int64(s.Rejected)),
		Overflowed.M(int64(s.Overflowed)),
		Inconsistent.M(int64(s.Inconsistent)),
		Nodes.M(int64(s.Nodes)),
		Depth.M(int64(s.Depth)),
	)
}

func RecordQuery(ctx context.Context, kind string, elapsed time.Duration) {
	err := stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyKind, kind)},
		QueryLatency.M(float64(elapsed)/float64(time.Millisecond)),
	)
	if err != nil {
		logging.FromContext(ctx).Warnw("query latency not recorded", "kind", kind, "error", err)
	}
}

// NewExporter returns a Prometheus exporter serving every registered view.
func NewExporter(namespace string) (*prometheus.Exporter, error) {
	exporter, err := prometheus.NewExporter(prometheus.Options{Namespace: namespace})
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	view.RegisterExporter(exporter)
	return exporter, nil
}
