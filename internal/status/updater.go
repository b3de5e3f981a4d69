package status

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ashelwen77/zksync/internal/clock"
	"github.com/ashelwen77/zksync/internal/model"
	"go.uber.org/zap"
)

// ErrSnapshotDegraded is reported to the RefreshListener when every sub-query fell back to zero.
// The snapshot is still published.
var ErrSnapshotDegraded = errors.New("network status degraded: every sub-query failed")

// DefaultRefreshPeriod is the interval between refreshes when WithPeriod is not given.
const DefaultRefreshPeriod = 30 * time.Second

// Option configures an Updater.
type Option func(*Updater)

// WithPeriod sets the refresh period.
func WithPeriod(d time.Duration) Option {
	return func(u *Updater) {
		u.period = d
	}
}

// WithFetchTimeout bounds a single fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(u *Updater) {
		u.fetchTimeout = d
	}
}

// WithListener registers a listener notified after each refresh attempt.
func WithListener(l RefreshListener) Option {
	return func(u *Updater) {
		u.listener = l
	}
}

// Updater periodically recomputes the network status from storage and publishes it to a Cache.
type Updater struct {
	logger       *zap.Logger
	cache        *Cache
	storage      Storage
	metrics      UpdaterMetrics
	listener     RefreshListener
	period       time.Duration
	fetchTimeout time.Duration
	newTicker    func(time.Duration) clock.Ticker
	state        atomic.Int32
}

// NewUpdater builds an Updater publishing into cache.
func NewUpdater(
	cache *Cache,
	storage Storage,
	metrics UpdaterMetrics,
	logger *zap.Logger,
	opts ...Option,
) (*Updater, error) {
	if cache == nil {
		return nil, errors.New("status cache is required")
	}
	if storage == nil {
		return nil, errors.New("status storage is required")
	}
	if metrics == nil {
		return nil, errors.New("status updater metrics is required")
	}

	u := &Updater{
		logger:    logger.Named("statusUpdater"),
		cache:     cache,
		storage:   storage,
		metrics:   metrics,
		period:    DefaultRefreshPeriod,
		newTicker: clock.NewTicker,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.period <= 0 {
		return nil, fmt.Errorf("refresh period must be positive, got %s", u.period)
	}
	if u.fetchTimeout < 0 {
		return nil, fmt.Errorf("fetch timeout must not be negative, got %s", u.fetchTimeout)
	}
	return u, nil
}

// State reports the current phase of the refresh loop.
func (u *Updater) State() State {
	return State(u.state.Load())
}

func (u *Updater) setState(s State) {
	u.state.Store(int32(s))
}

// Handle controls a refresh loop started with Start.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the loop and waits for it to exit.
func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

// Done is closed once the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start runs the refresh loop on its own goroutine until ctx is canceled or the returned handle is stopped.
// A panic inside the loop is recovered and delivered to panicNotify.
func (u *Updater) Start(ctx context.Context, panicNotify chan<- error) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			u.setState(StateStopped)
			err := fmt.Errorf("status updater panicked: %v", r)
			u.logger.Error("status updater panicked", zap.Any("panic", r), zap.Stack("stack"))
			if panicNotify == nil {
				return
			}
			select {
			case panicNotify <- err:
			case <-ctx.Done():
			}
		}()

		if err := u.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			u.logger.Error("status updater stopped", zap.Error(err))
		}
	}()

	return h
}

// Run refreshes immediately and then once per period until ctx is canceled.
// A tick that elapses during a slow refresh fires right after it; further missed ticks are dropped.
func (u *Updater) Run(ctx context.Context) error {
	ticker := u.newTicker(u.period)
	defer ticker.Stop()
	defer u.setState(StateStopped)

	u.logger.Info("status updater started", zap.Duration("period", u.period))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		u.refresh(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
		}
	}
}

func (u *Updater) refresh(ctx context.Context) {
	started := time.Now()
	fallbacks, err := u.fetchAndPublish(ctx)
	u.metrics.ObserveRefresh(err, started)
	if err != nil && ctx.Err() == nil {
		u.logger.Error("can't update network status", zap.Error(err))
	}

	outcome := err
	if err == nil && fallbacks == queryCount {
		u.logger.Warn("every status sub-query failed, published snapshot is all zero")
		outcome = ErrSnapshotDegraded
	}
	if u.listener != nil {
		u.listener.OnRefresh(outcome)
	}
}

// FetchAndPublish reads fresh counters inside one unit-of-work and replaces the cached snapshot.
// Sub-query failures are published as zero. The cache is left untouched when the unit-of-work
// cannot be opened or the fetch context ends before the counters are collected.
func (u *Updater) FetchAndPublish(ctx context.Context) error {
	_, err := u.fetchAndPublish(ctx)
	return err
}

// fetchAndPublish also returns how many sub-queries fell back to zero.
func (u *Updater) fetchAndPublish(ctx context.Context) (int, error) {
	if u.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.fetchTimeout)
		defer cancel()
	}

	u.setState(StateFetching)
	defer u.setState(StateIdle)

	tx, err := u.storage.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin status transaction: %w", err)
	}
	closed := false
	defer func() {
		if closed {
			return
		}
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			u.logger.Warn("rollback status transaction failed", zap.Error(rbErr))
		}
	}()

	fallbacks := 0
	lastVerified := fetch(ctx, u, &fallbacks, QueryLastVerifiedBlock, tx.LastVerifiedBlock)
	lastCommitted := fetch(ctx, u, &fallbacks, QueryLastCommittedBlock, tx.LastCommittedBlock)
	totalTransactions := fetch(ctx, u, &fallbacks, QueryTotalTransactions, tx.TotalTransactions)
	mempoolSize := fetch(ctx, u, &fallbacks, QueryMempoolSize, tx.MempoolSize)
	outstandingTxs := fetch(ctx, u, &fallbacks, QueryOutstandingProofs, func(ctx context.Context) (uint32, error) {
		return tx.OutstandingProofs(ctx, lastVerified)
	})

	if err := ctx.Err(); err != nil {
		return fallbacks, fmt.Errorf("fetch network status: %w", err)
	}

	snapshot := model.NetworkStatus{
		NextBlockAtMax:    nil,
		LastCommitted:     lastCommitted,
		LastVerified:      lastVerified,
		TotalTransactions: totalTransactions,
		OutstandingTxs:    outstandingTxs,
		MempoolSize:       mempoolSize,
	}

	closed = true
	commitErr := tx.Commit(ctx)
	u.metrics.ObserveCommit(commitErr)
	if commitErr != nil {
		u.logger.Warn("commit status transaction failed, publishing anyway", zap.Error(commitErr))
	}

	u.setState(StatePublishing)
	u.cache.Replace(snapshot)
	u.metrics.ObserveSnapshot(snapshot)
	u.logger.Debug("network status published",
		zap.Uint32("last_committed", uint32(snapshot.LastCommitted)),
		zap.Uint32("last_verified", uint32(snapshot.LastVerified)),
		zap.Uint32("mempool_size", snapshot.MempoolSize),
		zap.Int("fallbacks", fallbacks),
	)
	return fallbacks, nil
}
