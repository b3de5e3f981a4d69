package clickhouse

import (
	"context"
	"time"

	"github.com/ashelwen77/zksync/internal/model"
)

// LastVerifiedBlock returns the highest block whose proof verification is confirmed on L1, or 0.
func (s *Session) LastVerifiedBlock(ctx context.Context) (model.BlockNumber, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("last_verified_block", s.network, err, start)
	}()

	const query = `
SELECT coalesce(max(block_number), toUInt32(0)) AS last_verified
FROM rollup_operations FINAL
WHERE network = ? AND action_type = ? AND confirmed = 1`

	number, err := s.queryBlockNumber(ctx, "last verified block", query, string(s.network), string(model.ActionVerify))
	return number, err
}
