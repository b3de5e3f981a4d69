package transport

import (
	"sync"

	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	// StatusServiceName is the gRPC health service name of the status API.
	StatusServiceName = "zksync.status.v1.NetworkStatus"
	// DefaultFailureThreshold is the number of consecutive failed refreshes that turns health NOT_SERVING.
	DefaultFailureThreshold = 3
)

// HealthReporter mirrors refresh outcomes into gRPC health statuses.
type HealthReporter struct {
	setter    HealthSetter
	service   string
	threshold int
	logger    *zap.Logger

	mu       sync.Mutex
	failures int
	current  healthpb.HealthCheckResponse_ServingStatus
}

// NewHealthReporter starts in NOT_SERVING until the first successful refresh.
func NewHealthReporter(setter HealthSetter, service string, threshold int, logger *zap.Logger) *HealthReporter {
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}
	r := &HealthReporter{
		setter:    setter,
		service:   service,
		threshold: threshold,
		logger:    logger.Named("healthReporter"),
		current:   healthpb.HealthCheckResponse_NOT_SERVING,
	}
	r.apply(healthpb.HealthCheckResponse_NOT_SERVING)
	return r
}

// OnRefresh records the outcome of one refresh attempt. Any non-nil err, including a degraded snapshot, counts as a failure.
func (r *HealthReporter) OnRefresh(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err == nil {
		r.failures = 0
		r.transition(healthpb.HealthCheckResponse_SERVING)
		return
	}

	r.failures++
	if r.failures >= r.threshold {
		r.transition(healthpb.HealthCheckResponse_NOT_SERVING)
	}
}

// Status returns the last status pushed to the health server.
func (r *HealthReporter) Status() healthpb.HealthCheckResponse_ServingStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *HealthReporter) transition(next healthpb.HealthCheckResponse_ServingStatus) {
	if r.current == next {
		return
	}
	r.logger.Info("health status changed",
		zap.Stringer("from", r.current),
		zap.Stringer("to", next),
		zap.Int("consecutive_failures", r.failures),
	)
	r.current = next
	r.apply(next)
}

// apply updates both the named service and the server-wide status.
func (r *HealthReporter) apply(s healthpb.HealthCheckResponse_ServingStatus) {
	r.setter.SetServingStatus(r.service, s)
	r.setter.SetServingStatus("", s)
}
