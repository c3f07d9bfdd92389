package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queriesTotal counts query executions by table and outcome.
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flatquery_queries_total",
			Help: "Total number of executed queries",
		},
		[]string{"table", "status"},
	)
	// queryDuration is the end-to-end latency of query executions.
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flatquery_query_duration_seconds",
			Help:    "Query execution latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)
)

// MetricsObserver exports query lifecycle events as Prometheus metrics
type MetricsObserver struct{}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

// OnEvent implements the Observer interface
func (mo *MetricsObserver) OnEvent(event Event) {
	switch event.Type {
	case EventExecEnd:
		queriesTotal.WithLabelValues(event.Table, "ok").Inc()
		if stats, ok := event.Data.(map[string]interface{}); ok {
			if d, ok := stats["duration"].(time.Duration); ok {
				queryDuration.WithLabelValues(event.Table).Observe(d.Seconds())
			}
		}
	case EventQueryError:
		queriesTotal.WithLabelValues(event.Table, "error").Inc()
	}
}
