package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "catalog"

// Prometheus is a Recorder backed by Prometheus collectors.
type Prometheus struct {
	created     prometheus.Counter
	removed     prometheus.Counter
	adjustments *prometheus.CounterVec
	validation  *prometheus.CounterVec
	size        prometheus.Gauge
	shownRatio  prometheus.Histogram
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus creates the catalog collectors and registers them on reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_created_total",
			Help:      "Items added to the catalog.",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_removed_total",
			Help:      "Remove requests that deleted an item.",
		}),
		adjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_count_adjustments_total",
			Help:      "Order count adjustments by direction.",
		}, []string{"direction"}),
		validation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Rejected create requests by missing field.",
		}, []string{"field"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items",
			Help:      "Items currently in the catalog.",
		}),
		shownRatio: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "projection_shown_ratio",
			Help:      "Fraction of the catalog shown by each projection.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
	}

	for _, c := range []prometheus.Collector{p.created, p.removed, p.adjustments, p.validation, p.size, p.shownRatio} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) ItemCreated() { p.created.Inc() }
func (p *Prometheus) ItemRemoved() { p.removed.Inc() }

func (p *Prometheus) OrderCountAdjusted(delta int) {
	switch {
	case delta > 0:
		p.adjustments.WithLabelValues("up").Inc()
	case delta < 0:
		p.adjustments.WithLabelValues("down").Inc()
	default:
		p.adjustments.WithLabelValues("none").Inc()
	}
}

func (p *Prometheus) ValidationFailed(field string) {
	p.validation.WithLabelValues(field).Inc()
}

func (p *Prometheus) CatalogSize(n int) { p.size.Set(float64(n)) }

// Projected observes shown/total; empty catalogs are not observed.
func (p *Prometheus) Projected(shown, total int) {
	if total == 0 {
		return
	}
	p.shownRatio.Observe(float64(shown) / float64(total))
}
