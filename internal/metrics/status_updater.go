package metrics

import (
	"time"

	"github.com/ashelwen77/zksync/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	updaterRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zksync",
		Subsystem: "status_updater",
		Name:      "refresh_total",
		Help:      "Count of network status refresh attempts.",
	}, []string{"network", "status"})

	updaterRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zksync",
		Subsystem: "status_updater",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of a network status refresh.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	updaterFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zksync",
		Subsystem: "status_updater",
		Name:      "fallback_total",
		Help:      "Count of sub-queries replaced by zero after a failure.",
	}, []string{"network", "query"})

	updaterCommitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zksync",
		Subsystem: "status_updater",
		Name:      "commit_total",
		Help:      "Count of status transaction commits.",
	}, []string{"network", "status"})

	updaterLastRefresh = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "zksync",
		Subsystem: "status_updater",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last published snapshot.",
	}, []string{"network"})

	networkStatusGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "zksync",
		Subsystem: "network_status",
		Name:      "value",
		Help:      "Fields of the last published network status snapshot.",
	}, []string{"network", "field"})
)

// StatusUpdater tracks metrics for the network status refresh loop.
type StatusUpdater struct {
	network model.Network
}

// NewStatusUpdater constructs a StatusUpdater with defaults.
func NewStatusUpdater(network model.Network) *StatusUpdater {
	if network == "" {
		network = "unknown"
	}
	return &StatusUpdater{network: network}
}

// ObserveRefresh records a refresh attempt outcome and duration.
func (m StatusUpdater) ObserveRefresh(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	updaterRefreshTotal.WithLabelValues(string(m.network), status).Inc()
	updaterRefreshDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveFallback records a sub-query downgraded to zero.
func (m StatusUpdater) ObserveFallback(query string) {
	updaterFallbackTotal.WithLabelValues(string(m.network), query).Inc()
}

// ObserveCommit records the outcome of closing a status transaction.
func (m StatusUpdater) ObserveCommit(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	updaterCommitTotal.WithLabelValues(string(m.network), status).Inc()
}

// ObserveSnapshot exports the published snapshot as gauges.
func (m StatusUpdater) ObserveSnapshot(s model.NetworkStatus) {
	network := string(m.network)
	networkStatusGauge.WithLabelValues(network, "last_committed").Set(float64(s.LastCommitted))
	networkStatusGauge.WithLabelValues(network, "last_verified").Set(float64(s.LastVerified))
	networkStatusGauge.WithLabelValues(network, "total_transactions").Set(float64(s.TotalTransactions))
	networkStatusGauge.WithLabelValues(network, "outstanding_txs").Set(float64(s.OutstandingTxs))
	networkStatusGauge.WithLabelValues(network, "mempool_size").Set(float64(s.MempoolSize))
	updaterLastRefresh.WithLabelValues(network).SetToCurrentTime()
}
