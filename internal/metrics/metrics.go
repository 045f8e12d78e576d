package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of the analysis runs.
type Metrics struct {
	RunsTotal        prometheus.Counter
	SheetsTotal      *prometheus.CounterVec // labels: status
	DecisionsTotal   *prometheus.CounterVec // labels: indicator, decision
	RunDuration      prometheus.Histogram
	LastRunTimestamp prometheus.Gauge
}

// New registers and returns the application metrics.
func New() *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boursesignal_runs_total",
			Help: "Completed analysis runs",
		}),
		SheetsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boursesignal_sheets_total",
			Help: "Sheets processed, by outcome status",
		}, []string{"status"}),
		DecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boursesignal_decisions_total",
			Help: "Latest-row decisions emitted, by indicator and label",
		}, []string{"indicator", "decision"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "boursesignal_run_duration_seconds",
			Help:    "Duration of a full run over all sheets",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "boursesignal_last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		}),
	}
	prometheus.MustRegister(
		m.RunsTotal,
		m.SheetsTotal,
		m.DecisionsTotal,
		m.RunDuration,
		m.LastRunTimestamp,
	)
	return m
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
