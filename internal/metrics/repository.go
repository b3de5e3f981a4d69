// Package metrics holds the Prometheus collectors of the status service.
package metrics

import (
	"time"

	"github.com/ashelwen77/zksync/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zksync",
		Subsystem: "status_repository",
		Name:      "operations_total",
		Help:      "Count of status repository operations.",
	}, []string{"backend", "operation", "network", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zksync",
		Subsystem: "status_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of status repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"backend", "operation", "network", "status"})
)

// Repository tracks metrics for storage operations of one backend.
type Repository struct {
	backend string
}

// NewRepository creates a Repository metrics collector labelled with backend.
func NewRepository(backend string) *Repository {
	if backend == "" {
		backend = "unknown"
	}
	return &Repository{backend: backend}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, network model.Network, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if network == "" {
		network = "unknown"
	}

	repositoryRequestsTotal.WithLabelValues(m.backend, operation, string(network), status).Inc()
	repositoryRequestDuration.WithLabelValues(m.backend, operation, string(network), status).Observe(time.Since(started).Seconds())
}
