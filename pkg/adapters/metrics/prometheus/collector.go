package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements MetricsCollector using Prometheus
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	reportRuns     *prometheus.CounterVec
	reportRows     prometheus.Counter
	databaseChecks *prometheus.CounterVec
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcrsim_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lcrsim_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "path"},
		),
		reportRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcrsim_report_runs_total",
				Help: "Total number of report runs",
			},
			[]string{"status"},
		),
		reportRows: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lcrsim_report_rows_generated_total",
				Help: "Total number of report rows generated",
			},
		),
		databaseChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcrsim_database_checks_total",
				Help: "Total number of database connectivity checks",
			},
			[]string{"status"},
		),
	}
}

// ObserveRequest records a completed HTTP request (ports.MetricsCollector interface)
func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRun records a report run and the rows it produced (ports.MetricsCollector interface)
func (c *Collector) RecordRun(status string, rows int) {
	c.reportRuns.WithLabelValues(status).Inc()
	if rows > 0 {
		c.reportRows.Add(float64(rows))
	}
}

// RecordDatabaseCheck records a database connectivity check (ports.MetricsCollector interface)
func (c *Collector) RecordDatabaseCheck(status string) {
	c.databaseChecks.WithLabelValues(status).Inc()
}
