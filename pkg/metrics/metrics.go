package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection
type Collector struct {
	// Provider metrics
	FetchDuration *prometheus.HistogramVec
	FetchTotal    *prometheus.CounterVec

	// Forecast window metrics
	DroppedRecordsTotal *prometheus.CounterVec

	// Cache metrics
	CacheRequestsTotal *prometheus.CounterVec

	// State metrics
	StateTransitionsTotal *prometheus.CounterVec
	StateGeneration       prometheus.Gauge

	// API metrics
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
}

// NewCollector creates a collector registered with the default registry
func NewCollector(namespace string) *Collector {
	return NewCollectorWith(namespace, prometheus.DefaultRegisterer)
}

// NewCollectorWith creates a collector registered with reg
func NewCollectorWith(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_fetch_duration_seconds",
				Help:      "Weather provider request duration in seconds by resource",
				Buckets:   []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"resource"},
		),

		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_fetch_total",
				Help:      "Total number of weather provider requests by resource and outcome",
			},
			[]string{"resource", "outcome"},
		),

		DroppedRecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "window_dropped_records_total",
				Help:      "Forecast records left out of the display window because their date could not be parsed",
			},
			[]string{"kind"}, // "hour", "day"
		),

		CacheRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "Forecast cache lookups by result",
			},
			[]string{"result"}, // "hit", "miss", "error"
		),

		StateTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "state_transitions_total",
				Help:      "Weather state transitions by status, stale results included",
			},
			[]string{"status"},
		),

		StateGeneration: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "state_generation",
				Help:      "Newest fetch generation started",
			},
		),

		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by route, method, and status",
			},
			[]string{"route", "method", "status"},
		),

		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"route"},
		),
	}
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer. A nil observer only measures.
func NewTimer(observer prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: observer,
	}
}

// FetchTimer starts timing one provider request for resource
func (c *Collector) FetchTimer(resource string) *Timer {
	if c == nil {
		return NewTimer(nil)
	}
	return NewTimer(c.FetchDuration.WithLabelValues(resource))
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordFetch counts one provider request by outcome, its duration comes from FetchTimer
func (c *Collector) RecordFetch(resource string, err error) {
	if c == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.FetchTotal.WithLabelValues(resource, outcome).Inc()
}

// RecordDropped adds n dropped window records of the given kind
func (c *Collector) RecordDropped(kind string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.DroppedRecordsTotal.WithLabelValues(kind).Add(float64(n))
}

// RecordCache increments the cache counter for result
func (c *Collector) RecordCache(result string) {
	if c == nil {
		return
	}
	c.CacheRequestsTotal.WithLabelValues(result).Inc()
}

// RecordTransition increments the state transition counter
func (c *Collector) RecordTransition(status string) {
	if c == nil {
		return
	}
	c.StateTransitionsTotal.WithLabelValues(status).Inc()
}

// SetGeneration publishes the newest fetch generation
func (c *Collector) SetGeneration(generation uint64) {
	if c == nil {
		return
	}
	c.StateGeneration.Set(float64(generation))
}

// RecordAPIRequest records one served HTTP request
func (c *Collector) RecordAPIRequest(route, method, status string, duration time.Duration) {
	if c == nil {
		return
	}
	c.APIRequestsTotal.WithLabelValues(route, method, status).Inc()
	c.APIRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}
