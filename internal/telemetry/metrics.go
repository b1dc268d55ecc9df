package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "boco"

// Metrics owns a private Prometheus registry for the server.
// It satisfies content.Observer and services.LoadObserver.
type Metrics struct {
	registry      *prometheus.Registry
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	pageLoads     *prometheus.CounterVec
	loadDuration  prometheus.Histogram
	requests      *prometheus.CounterVec
	reqDuration   *prometheus.HistogramVec
}

// NewMetrics registers every collector on a fresh registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "fetches_total",
			Help:      "Content API requests by collection path and outcome.",
		}, []string{"path", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "fetch_duration_seconds",
			Help:      "Content API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		pageLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "page",
			Name:      "loads_total",
			Help:      "Finished page loads by resulting view state.",
		}, []string{"state"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "page",
			Name:      "load_duration_seconds",
			Help:      "Time from page load start until every fetch chain resolved.",
			Buckets:   prometheus.DefBuckets,
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.fetches,
		m.fetchDuration,
		m.pageLoads,
		m.loadDuration,
		m.requests,
		m.reqDuration,
	)
	return m
}

// ObserveFetch records one content API request
func (m *Metrics) ObserveFetch(path string, outcome string, elapsed time.Duration) {
	m.fetches.WithLabelValues(path, outcome).Inc()
	m.fetchDuration.WithLabelValues(path).Observe(elapsed.Seconds())
}

// ObservePageLoad records one finished page load
func (m *Metrics) ObservePageLoad(state string, elapsed time.Duration) {
	m.pageLoads.WithLabelValues(state).Inc()
	m.loadDuration.Observe(elapsed.Seconds())
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method string, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.reqDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
