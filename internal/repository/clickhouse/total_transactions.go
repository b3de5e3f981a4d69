package clickhouse

import (
	"context"
	"time"
)

// TotalTransactions counts executed transactions and executed priority operations.
func (s *Session) TotalTransactions(ctx context.Context) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("total_transactions", s.network, err, start)
	}()

	const query = `
SELECT
    (SELECT count() FROM rollup_executed_transactions FINAL WHERE network = ?) +
    (SELECT count() FROM rollup_executed_priority_operations FINAL WHERE network = ?) AS total`

	count, err := s.queryCount(ctx, "total transactions", query, string(s.network), string(s.network))
	return count, err
}
