package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ashelwen77/zksync/internal/model"
	"github.com/ashelwen77/zksync/internal/status"
	"github.com/ashelwen77/zksync/pkg/safe"
)

// ErrSessionClosed is returned when a session is used after Commit or Rollback.
var ErrSessionClosed = errors.New("clickhouse session closed")

var (
	_ status.Storage     = (*Repository)(nil)
	_ status.Transaction = (*Session)(nil)
)

// Session is a read unit-of-work. ClickHouse has no multi-statement read transactions, so a
// session checks the server on open and rejects queries once it has been closed.
type Session struct {
	conn    Conn
	network model.Network
	metrics Metrics
	closed  bool
}

// Begin opens a Session after verifying the server is reachable.
func (r *Repository) Begin(ctx context.Context) (status.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("begin", r.network, err, start)
	}()

	if err = r.conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}
	return &Session{conn: r.conn, network: r.network, metrics: r.metrics}, nil
}

// Commit closes the session.
func (s *Session) Commit(_ context.Context) error {
	return s.close("commit")
}

// Rollback closes the session.
func (s *Session) Rollback(_ context.Context) error {
	return s.close("rollback")
}

func (s *Session) close(operation string) error {
	start := time.Now()
	var err error
	if s.closed {
		err = fmt.Errorf("%s: %w", operation, ErrSessionClosed)
	}
	s.closed = true
	s.metrics.Observe(operation, s.network, err, start)
	return err
}

// queryCount runs a single-value UInt64 query and narrows the result to uint32.
func (s *Session) queryCount(ctx context.Context, name, query string, args ...any) (uint32, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}

	var count uint64
	row := s.conn.QueryRow(ctx, query, args...)
	if err := row.Err(); err != nil {
		return 0, fmt.Errorf("query %s: %w", name, err)
	}
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan %s: %w", name, err)
	}

	v, err := safe.Uint32(count)
	if err != nil {
		return 0, fmt.Errorf("convert %s: %w", name, err)
	}
	return v, nil
}

// queryBlockNumber runs a single-value UInt32 block number query.
func (s *Session) queryBlockNumber(ctx context.Context, name, query string, args ...any) (model.BlockNumber, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}

	var number uint32
	row := s.conn.QueryRow(ctx, query, args...)
	if err := row.Err(); err != nil {
		return 0, fmt.Errorf("query %s: %w", name, err)
	}
	if err := row.Scan(&number); err != nil {
		return 0, fmt.Errorf("scan %s: %w", name, err)
	}
	return model.BlockNumber(number), nil
}
