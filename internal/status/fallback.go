package status

import (
	"context"

	"go.uber.org/zap"
)

// Sub-query names used in logs and metrics.
const (
	QueryLastVerifiedBlock  = "last_verified_block"
	QueryLastCommittedBlock = "last_committed_block"
	QueryTotalTransactions  = "total_transactions"
	QueryMempoolSize        = "mempool_size"
	QueryOutstandingProofs  = "outstanding_proofs"

	queryCount = 5
)

// orZero returns v when err is nil and the zero value of T otherwise.
func orZero[T any](v T, err error) T {
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// fetch runs a single sub-query and downgrades its failure to the zero value, counting it in fallbacks.
func fetch[T any](ctx context.Context, u *Updater, fallbacks *int, query string, q func(context.Context) (T, error)) T {
	v, err := q(ctx)
	if err != nil {
		*fallbacks++
		u.logger.Warn("status sub-query failed, using zero", zap.String("query", query), zap.Error(err))
		u.metrics.ObserveFallback(query)
	}
	return orZero(v, err)
}
