// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_queries_total",
			Help: "Total number of queries processed, by terminal state",
		},
		[]string{"outcome"},
	)

	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_provider_lookups_total",
			Help: "Total number of provider lookups, by provider and status",
		},
		[]string{"provider", "status"},
	)

	LookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "agent_provider_lookup_duration_seconds",
			Help: "Duration of provider lookups in seconds",
		},
		[]string{"provider"},
	)
)
