package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"catalog-manager/pkg/metrics"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewPrometheus(reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.ItemCreated()
	m.ItemCreated()
	m.ItemRemoved()
	m.OrderCountAdjusted(1)
	m.OrderCountAdjusted(-1)
	m.OrderCountAdjusted(-3)
	m.ValidationFailed("name")
	m.CatalogSize(7)
	m.Projected(3, 6)
	m.Projected(0, 0)

	count, err := testutil.GatherAndCount(reg,
		"catalog_items_created_total",
		"catalog_items_removed_total",
		"catalog_order_count_adjustments_total",
		"catalog_validation_failures_total",
		"catalog_items",
		"catalog_projection_shown_ratio",
	)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	// up, down and name labels produce one series each.
	if count != 7 {
		t.Errorf("expected 7 series, got %d", count)
	}

	if _, err := metrics.NewPrometheus(reg); err == nil {
		t.Errorf("expected duplicate registration to fail")
	}
}

func TestNop(t *testing.T) {
	r := metrics.NewNop()
	r.ItemCreated()
	r.Projected(1, 2)
}
