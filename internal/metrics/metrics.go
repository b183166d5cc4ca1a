package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets covers the expected latency range of the API, from
// sub-millisecond cache hits to multi-second database stalls.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// RollPowerBuckets spans the full attainable power range (50-1000).
var RollPowerBuckets = []float64{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CharactersRolled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCharactersRolled,
			Help: HelpTextCharactersRolled,
		},
		[]string{LabelRarity},
	)

	RollPower = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRollPower,
			Help:    HelpTextRollPower,
			Buckets: RollPowerBuckets,
		},
	)

	RollPriceUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRollPriceUpdates,
			Help: HelpTextRollPriceUpdates,
		},
	)
)
