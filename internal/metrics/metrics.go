package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "techbucket"

// Registry holds every collector exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	backendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Backend API calls by endpoint, method and outcome.",
	}, []string{"endpoint", "method", "outcome"})

	backendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Backend API call latency.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"endpoint", "method"})

	leadSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "leads",
		Name:      "submissions_total",
		Help:      "Public lead form submissions by kind and outcome.",
	}, []string{"kind", "outcome"})

	workspaces = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "admin",
		Name:      "workspaces",
		Help:      "Live admin workspaces.",
	})
)

func init() {
	Registry.MustRegister(
		backendRequests,
		backendLatency,
		leadSubmissions,
		workspaces,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func CountBackendRequest(endpoint, method, outcome string) {
	backendRequests.WithLabelValues(endpoint, method, outcome).Inc()
}

func ObserveBackendLatency(endpoint, method string, d time.Duration) {
	backendLatency.WithLabelValues(endpoint, method).Observe(d.Seconds())
}

func CountLeadSubmission(kind, outcome string) {
	leadSubmissions.WithLabelValues(kind, outcome).Inc()
}

func SetWorkspaces(n int) {
	workspaces.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
