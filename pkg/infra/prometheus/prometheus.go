package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; classifier calls are slow compared to
	// ordinary request handling.
	latencyBuckets = []float64{
		25, 50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	ModerationDecisionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mycircle_moderation_decisions_total",
			Help: "Moderation decisions by entry point and outcome",
		},
		[]string{"entry", "outcome"},
	)

	LexicalHitsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mycircle_moderation_lexical_hits_total",
			Help: "Submissions rejected by the local profanity filter",
		},
		[]string{"field", "source"},
	)

	ClassifierCallsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mycircle_classifier_calls_total",
			Help: "AI classifier operations by result",
		},
		[]string{"operation", "result"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mycircle_classifier_latency_ms",
			Help:    "AI classifier provider latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"operation"},
	)

	HTTPRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mycircle_http_requests_total",
			Help: "HTTP requests served by the moderation service",
		},
		[]string{"method", "route", "status"},
	)
)

var initOnce sync.Once

// Initialize adds the process and runtime collectors. Safe to call more than once.
func Initialize() {
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	})
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func Gatherer() prometheus.Gatherer {
	return registry
}
