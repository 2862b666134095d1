// Package metrics exposes Prometheus metrics for stock loads, searches and
// HTTP traffic.
//
// Each Metrics owns its registry, so tests and multiple servers in one
// process never collide on the global default registerer.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/core"
)

const namespace = "pipestock"

// Load results reported on pipestock_loads_total.
const (
	LoadOK             = "ok"
	LoadNoDataFile     = "no_data_file"
	LoadParseError     = "parse_error"
	LoadSchemaMismatch = "schema_mismatch"
	LoadOther          = "error"
)

// Metrics holds every collector the application reports.
type Metrics struct {
	registry *prometheus.Registry

	loads         *prometheus.CounterVec
	inventoryRows prometheus.Gauge
	lastLoad      prometheus.Gauge
	searches      prometheus.Counter
	searchMatches prometheus.Histogram
	availability  *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// New creates a Metrics with its own registry, including the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Stock workbook loads by result.",
		}, []string{"result"}),
		inventoryRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_rows",
			Help:      "Records in the current session, 0 when halted.",
		}),
		lastLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_load_timestamp_seconds",
			Help:      "Unix time of the last successful load.",
		}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Filter operations run against the inventory.",
		}),
		searchMatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_matches",
			Help:      "Records matched per filter operation.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),
		availability: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_results_total",
			Help:      "Availability answers by outcome.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.loads,
		m.inventoryRows,
		m.lastLoad,
		m.searches,
		m.searchMatches,
		m.availability,
		m.httpRequests,
		m.httpDurations,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveLoad records the outcome of a session load. On success the
// inventory gauges are updated from s; on failure the inventory is zeroed
// because a halted session serves nothing.
func (m *Metrics) ObserveLoad(s *core.Session, err error) {
	result := LoadResult(err)
	m.loads.WithLabelValues(result).Inc()

	if err != nil || s == nil {
		m.inventoryRows.Set(0)
		return
	}
	m.inventoryRows.Set(float64(s.Table.Len()))
	m.lastLoad.Set(float64(s.LoadedAt.Unix()))
}

// LoadResult classifies a load error into a result label.
func LoadResult(err error) string {
	switch {
	case err == nil:
		return LoadOK
	case errors.Is(err, core.ErrNoDataFileFound):
		return LoadNoDataFile
	case errors.Is(err, core.ErrParse):
		return LoadParseError
	case errors.Is(err, core.ErrSchemaMismatch):
		return LoadSchemaMismatch
	default:
		return LoadOther
	}
}

// ObserveSearch records one filter operation and how many records it matched.
func (m *Metrics) ObserveSearch(matches int) {
	m.searches.Inc()
	m.searchMatches.Observe(float64(matches))
}

// ObserveAvailability counts each result as available or unavailable.
func (m *Metrics) ObserveAvailability(results []core.AvailabilityResult) {
	for _, r := range results {
		outcome := "unavailable"
		if r.Available {
			outcome = "available"
		}
		m.availability.WithLabelValues(outcome).Inc()
	}
}

// ObserveRequest records a served HTTP request. route should be the router
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDurations.WithLabelValues(route).Observe(d.Seconds())
}
