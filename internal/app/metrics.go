package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact submission results recorded by Metrics.
const (
	resultAccepted  = "accepted"
	resultRejected  = "rejected"
	resultConflict  = "conflict"
	resultFailed    = "failed"
	resultCancelled = "cancelled"
)

// View eviction reasons recorded by Metrics.
const (
	evictExpired = "expired"
	evictDeleted = "deleted"
)

// Metrics holds the Prometheus collectors for the portfolio use cases.
type Metrics struct {
	FilterEvaluations *prometheus.CounterVec
	FilterResults     *prometheus.HistogramVec
	ViewsActive       prometheus.Gauge
	ViewEvictions     *prometheus.CounterVec
	ContactTotal      *prometheus.CounterVec
	ContactDuration   prometheus.Histogram
}

// NewMetrics registers the collectors on reg. A nil reg gets a private
// registry, which keeps tests from colliding on the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	f := promauto.With(reg)

	return &Metrics{
		FilterEvaluations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "filter_evaluations_total",
			Help:      "Number of filter evaluations by collection.",
		}, []string{"kind"}),
		FilterResults: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Name:      "filter_results",
			Help:      "Number of items left visible after filtering.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}, []string{"kind"}),
		ViewsActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "portfolio",
			Name:      "views_active",
			Help:      "Number of live view states.",
		}),
		ViewEvictions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "view_evictions_total",
			Help:      "View states removed, by reason.",
		}, []string{"reason"}),
		ContactTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by result.",
		}, []string{"result"}),
		ContactDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Name:      "contact_submission_duration_seconds",
			Help:      "Time spent delivering a contact submission.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
