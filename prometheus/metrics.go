// Package prometheus implements crawl metrics on Prometheus collectors.
package prometheus

import (
	"time"

	"github.com/fwojciec/storecrawl"
	"github.com/prometheus/client_golang/prometheus"
)

// Ensure Metrics implements storecrawl.Metrics at compile time.
var _ storecrawl.Metrics = (*Metrics)(nil)

// Metrics bundles Prometheus collectors for a crawl run. All collectors are
// registered on a dedicated registry so the caller controls exposure.
type Metrics struct {
	Registry         *prometheus.Registry
	FetchesTotal     *prometheus.CounterVec
	FetchErrorsTotal *prometheus.CounterVec
	RecordsTotal     prometheus.Counter
	FetchDuration    prometheus.Histogram
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	fetches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storecrawl_fetches_total",
			Help: "Total page fetches issued, by request scope.",
		},
		[]string{"scope"},
	)
	fetchErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storecrawl_fetch_errors_total",
			Help: "Total failed fetches, by error code.",
		},
		[]string{"code"},
	)
	records := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storecrawl_records_total",
			Help: "Total product records extracted.",
		},
	)
	fetchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storecrawl_fetch_duration_seconds",
			Help:    "Fetch latency, including retries.",
			Buckets: prometheus.DefBuckets,
		},
	)

	registry.MustRegister(fetches, fetchErrors, records, fetchDuration)

	return &Metrics{
		Registry:         registry,
		FetchesTotal:     fetches,
		FetchErrorsTotal: fetchErrors,
		RecordsTotal:     records,
		FetchDuration:    fetchDuration,
	}
}

// IncFetch increments the fetch counter for a request scope.
func (m *Metrics) IncFetch(scope storecrawl.RequestScope) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(string(scope)).Inc()
}

// IncFetchError increments the fetch error counter for an error code.
func (m *Metrics) IncFetchError(code string) {
	if m == nil {
		return
	}
	m.FetchErrorsTotal.WithLabelValues(code).Inc()
}

// IncRecords adds n to the extracted record counter.
func (m *Metrics) IncRecords(n int) {
	if m == nil {
		return
	}
	m.RecordsTotal.Add(float64(n))
}

// ObserveFetchDuration records a fetch duration.
func (m *Metrics) ObserveFetchDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(d.Seconds())
}
