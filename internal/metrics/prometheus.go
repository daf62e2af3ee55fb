package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/santa/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a collector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Resolver metrics
	attempts           *prometheus.CounterVec
	resolutions        *prometheus.CounterVec
	attemptsPerResolve prometheus.Histogram
	resolveDuration    prometheus.Histogram

	// Publisher metrics
	publishOps  *prometheus.CounterVec
	kvLatencies *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "santa" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "santa"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.attempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "resolver",
			Name:      "attempts_total",
			Help:      "Total draw attempts by result (success, conflict).",
		}, []string{"result"})

		p.resolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Total Assign calls by result (success, exhausted, rejected).",
		}, []string{"result"})

		p.attemptsPerResolve = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "resolver",
			Name:      "attempts_per_resolution",
			Help:      "Number of attempts used per Assign call.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		})

		p.resolveDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "resolver",
			Name:      "duration_seconds",
			Help:      "Duration of Assign calls in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		})

		p.publishOps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "operations_total",
			Help:      "Total publisher operations by operation and result.",
		}, []string{"op", "result"})

		p.kvLatencies = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "kv_operation_seconds",
			Help:      "NATS KV operation latency in seconds by operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms .. ~1s
		}, []string{"op"})

		p.reg.MustRegister(p.attempts)
		p.reg.MustRegister(p.resolutions)
		p.reg.MustRegister(p.attemptsPerResolve)
		p.reg.MustRegister(p.resolveDuration)
		p.reg.MustRegister(p.publishOps)
		p.reg.MustRegister(p.kvLatencies)
	})
}

// ResolverMetrics implementation

// RecordAttempt counts one draw attempt by outcome.
func (p *PrometheusCollector) RecordAttempt(success bool) {
	p.ensureRegistered()
	if success {
		p.attempts.WithLabelValues("success").Inc()
	} else {
		p.attempts.WithLabelValues("conflict").Inc()
	}
}

// RecordResolution records the result, attempt count and duration of an Assign call.
func (p *PrometheusCollector) RecordResolution(result string, attempts int, duration float64) {
	p.ensureRegistered()
	p.resolutions.WithLabelValues(result).Inc()
	if attempts > 0 {
		p.attemptsPerResolve.Observe(float64(attempts))
	}
	p.resolveDuration.Observe(duration)
}

// PublisherMetrics implementation

// RecordPublishOperation counts a publisher operation by outcome.
func (p *PrometheusCollector) RecordPublishOperation(operation string, success bool) {
	p.ensureRegistered()
	p.publishOps.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

// RecordKVOperationDuration observes KV operation latency.
func (p *PrometheusCollector) RecordKVOperationDuration(operation string, duration float64) {
	p.ensureRegistered()
	p.kvLatencies.WithLabelValues(operation).Observe(duration)
}
