package dashboard

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records report runs. A nil *Metrics records nothing.
type Metrics struct {
	reportRuns    *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	rowsReturned  *prometheus.CounterVec
}

// NewMetrics registers the dashboard collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		reportRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamestats",
			Subsystem: "dashboard",
			Name:      "report_runs_total",
			Help:      "Report runs by report and outcome status",
		}, []string{"report", "status"}),
		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gamestats",
			Subsystem: "dashboard",
			Name:      "query_duration_seconds",
			Help:      "Aggregate store query latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"report"}),
		rowsReturned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamestats",
			Subsystem: "dashboard",
			Name:      "rows_returned_total",
			Help:      "Ranked rows returned to the rendering layer",
		}, []string{"report"}),
	}
}

func (m *Metrics) observeQuery(reportName string, d time.Duration) {
	if m == nil {
		return
	}
	m.queryDuration.WithLabelValues(reportName).Observe(d.Seconds())
}

func (m *Metrics) observeRun(reportName string, status Status, rows int) {
	if m == nil {
		return
	}
	m.reportRuns.WithLabelValues(reportName, string(status)).Inc()
	m.rowsReturned.WithLabelValues(reportName).Add(float64(rows))
}
