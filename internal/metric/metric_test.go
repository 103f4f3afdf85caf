package metric

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-sod/qtree/internal/logging"
	"github.com/go-sod/qtree/pkg/container/quadtree"
	"go.opencensus.io/stats/view"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecord(t *testing.T) {
	if err := Register(); err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	defer view.Unregister(Views...)

	Record(context.Background(), quadtree.Stats{Inserted: 42, Overflowed: 3, Depth: 7})
	tests := []struct {
		name     string
		expected float64
	}{
		{name: "qtree/inserted", expected: 42},
		{name: "qtree/overflowed", expected: 3},
		{name: "qtree/depth", expected: 7},
		{name: "qtree/rejected", expected: 0},
	}
	for _, test := range tests {
		rows, err := view.RetrieveData(test.name)
		if err != nil {
			t.Fatalf("retrieve %s: %v", test.name, err)
		}
		if len(rows) != 1 {
			t.Fatalf("%s rows got: %d, expected: 1", test.name, len(rows))
		}
		got := rows[0].Data.(*view.LastValueData).Value
		if got != test.expected {
			t.Errorf("%s got: %v, expected: %v", test.name, got, test.expected)
		}
	}
}

func TestRecordQuery(t *testing.T) {
	if err := Register(); err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	defer view.Unregister(Views...)

	RecordQuery(context.Background(), "rect", 2*time.Millisecond)
	RecordQuery(context.Background(), "rect", time.Millisecond)
	RecordQuery(context.Background(), "nearest", time.Millisecond)

	rows, err := view.RetrieveData("qtree/query_count")
	if err != nil {
		t.Fatalf("retrieve query count: %v", err)
	}
	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Tags[0].Value] = row.Data.(*view.CountData).Value
	}
	if counts["rect"] != 2 || counts["nearest"] != 1 {
		t.Errorf("query counts got: %v, expected rect=2 nearest=1", counts)
	}
}

func TestNewExporter(t *testing.T) {
	exporter, err := NewExporter("qtree_test")
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	defer view.UnregisterExporter(exporter)

	rec := httptest.NewRecorder()
	exporter.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status got: %d, expected: %d", rec.Code, http.StatusOK)
	}
}

func TestRecordQuery_InvalidKind(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logging.WithLogger(context.Background(), zap.New(core).Sugar())

	// tag values must be printable ASCII
	RecordQuery(ctx, "rect\x01", time.Millisecond)

	entries := logs.FilterMessage("query latency not recorded").All()
	if len(entries) != 1 {
		t.Fatalf("warnings got: %d, expected: 1", len(entries))
	}
	if _, ok := entries[0].ContextMap()["error"]; !ok {
		t.Errorf("warning must carry the error, fields got: %v", entries[0].ContextMap())
	}
}
