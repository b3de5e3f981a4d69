package status

import (
	"context"
	"time"

	"github.com/ashelwen77/zksync/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Storage opens read units-of-work against the persistent store.
	Storage interface {
		Begin(ctx context.Context) (Transaction, error)
	}
	// Transaction is a scoped unit-of-work. Exactly one of Commit or Rollback closes it.
	Transaction interface {
		LastVerifiedBlock(ctx context.Context) (model.BlockNumber, error)
		LastCommittedBlock(ctx context.Context) (model.BlockNumber, error)
		TotalTransactions(ctx context.Context) (uint32, error)
		MempoolSize(ctx context.Context) (uint32, error)
		OutstandingProofs(ctx context.Context, after model.BlockNumber) (uint32, error)
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}
	UpdaterMetrics interface {
		ObserveRefresh(err error, started time.Time)
		ObserveFallback(query string)
		ObserveCommit(err error)
		ObserveSnapshot(status model.NetworkStatus)
	}
	// RefreshListener is notified after every refresh attempt.
	RefreshListener interface {
		OnRefresh(err error)
	}
)
