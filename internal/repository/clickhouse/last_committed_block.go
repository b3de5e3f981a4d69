package clickhouse

import (
	"context"
	"time"

	"github.com/ashelwen77/zksync/internal/model"
)

// LastCommittedBlock returns the highest committed block, or 0.
func (s *Session) LastCommittedBlock(ctx context.Context) (model.BlockNumber, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("last_committed_block", s.network, err, start)
	}()

	const query = `
SELECT coalesce(max(block_number), toUInt32(0)) AS last_committed
FROM rollup_operations FINAL
WHERE network = ? AND action_type = ?`

	number, err := s.queryBlockNumber(ctx, "last committed block", query, string(s.network), string(model.ActionCommit))
	return number, err
}
