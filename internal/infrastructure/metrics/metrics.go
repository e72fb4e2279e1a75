package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saradorri/backoffice/internal/domain"
)

const namespace = "backoffice"

// Metrics owns the service collectors and the registry they are exposed from
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	accountsCreated prometheus.Counter
	itemsSkipped    *prometheus.CounterVec
	batchesFailed   prometheus.Counter
}

// New registers the collectors on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		accountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_accounts_created_total",
			Help:      "Game accounts created by committed provisioning batches",
		}),
		itemsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_accounts_skipped_total",
			Help:      "Requested games that produced no account, by reason",
		}, []string{"reason"}),
		batchesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provisioning_batches_failed_total",
			Help:      "Provisioning batches rolled back as a whole",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.accountsCreated,
		m.itemsSkipped,
		m.batchesFailed,
	)
	return m
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveProvisioning records the outcome of a committed batch
func (m *Metrics) ObserveProvisioning(result *domain.ProvisioningResult) {
	m.accountsCreated.Add(float64(len(result.Created)))
	for _, s := range result.Skipped {
		m.itemsSkipped.WithLabelValues(string(s.Reason)).Inc()
	}
}

// ObserveProvisioningFailure records a rolled back batch
func (m *Metrics) ObserveProvisioningFailure() {
	m.batchesFailed.Inc()
}
