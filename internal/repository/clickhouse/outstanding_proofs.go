package clickhouse

import (
	"context"
	"time"

	"github.com/ashelwen77/zksync/internal/model"
)

// OutstandingProofs counts executed transactions in blocks after the given block, i.e. not yet proven.
func (s *Session) OutstandingProofs(ctx context.Context, after model.BlockNumber) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("outstanding_proofs", s.network, err, start)
	}()

	const query = `
SELECT count() AS outstanding
FROM rollup_executed_transactions FINAL
WHERE network = ? AND block_number > ?`

	count, err := s.queryCount(ctx, "outstanding proofs", query, string(s.network), uint32(after))
	return count, err
}
