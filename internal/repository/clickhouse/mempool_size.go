package clickhouse

import (
	"context"
	"time"
)

// MempoolSize counts transactions waiting in the mempool.
func (s *Session) MempoolSize(ctx context.Context) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("mempool_size", s.network, err, start)
	}()

	const query = `
SELECT count() AS mempool_size
FROM rollup_mempool_txs FINAL
WHERE network = ?`

	count, err := s.queryCount(ctx, "mempool size", query, string(s.network))
	return count, err
}
