package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ashelwen77/zksync/internal/model"
	"github.com/ashelwen77/zksync/internal/status"
	"github.com/ashelwen77/zksync/pkg/safe"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrTransactionClosed is returned when a transaction is used after Commit or Rollback.
var ErrTransactionClosed = errors.New("mongo transaction closed")

var (
	_ status.Storage     = (*Repository)(nil)
	_ status.Transaction = (*Transaction)(nil)
)

// Transaction runs the status queries inside one snapshot-read MongoDB transaction.
type Transaction struct {
	sess    mongo.Session
	db      *mongo.Database
	network model.Network
	metrics Metrics
	closed  bool
}

// Begin pings the primary and starts a session with a snapshot read transaction.
// Sessions are client-side, so the ping is what makes an outage fail here.
func (r *Repository) Begin(ctx context.Context) (status.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("begin", r.network, err, start)
	}()

	if err = r.client.Ping(ctx, readpref.Primary()); err != nil {
		err = fmt.Errorf("ping mongo: %w", err)
		return nil, err
	}

	sess, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start mongo session: %w", err)
	}
	opts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetReadPreference(readpref.Primary())
	if err = sess.StartTransaction(opts); err != nil {
		sess.EndSession(ctx)
		return nil, fmt.Errorf("start mongo transaction: %w", err)
	}

	return &Transaction{sess: sess, db: r.db, network: r.network, metrics: r.metrics}, nil
}

// Commit commits the transaction and ends the session.
func (t *Transaction) Commit(ctx context.Context) error {
	return t.close(ctx, "commit", t.sess.CommitTransaction)
}

// Rollback aborts the transaction and ends the session.
func (t *Transaction) Rollback(ctx context.Context) error {
	return t.close(ctx, "rollback", t.sess.AbortTransaction)
}

func (t *Transaction) close(ctx context.Context, operation string, finish func(context.Context) error) error {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe(operation, t.network, err, start)
	}()

	if t.closed {
		err = fmt.Errorf("%s: %w", operation, ErrTransactionClosed)
		return err
	}
	t.closed = true
	defer t.sess.EndSession(ctx)

	if err = finish(ctx); err != nil {
		err = fmt.Errorf("%s mongo transaction: %w", operation, err)
		return err
	}
	return nil
}

func (t *Transaction) sessionContext(ctx context.Context) (mongo.SessionContext, error) {
	if t.closed {
		return nil, ErrTransactionClosed
	}
	return mongo.NewSessionContext(ctx, t.sess), nil
}

// lastBlock returns the highest block_number of operations matching filter, or 0 when none exist.
func (t *Transaction) lastBlock(ctx context.Context, filter bson.D) (model.BlockNumber, error) {
	sc, err := t.sessionContext(ctx)
	if err != nil {
		return 0, err
	}

	opts := options.FindOne().
		SetSort(bson.D{{Key: "block_number", Value: -1}}).
		SetProjection(bson.D{{Key: "block_number", Value: 1}})
	return decodeBlockNumber(t.db.Collection(cOperations).FindOne(sc, filter, opts))
}

// decoder is implemented by *mongo.SingleResult.
type decoder interface {
	Decode(v any) error
}

// decodeBlockNumber reads block_number from a single result, mapping no document to block 0.
func decodeBlockNumber(res decoder) (model.BlockNumber, error) {
	var doc struct {
		BlockNumber int64 `bson:"block_number"`
	}
	err := res.Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	number, err := safe.Uint32(doc.BlockNumber)
	if err != nil {
		return 0, err
	}
	return model.BlockNumber(number), nil
}

func (t *Transaction) count(ctx context.Context, collection string, filter bson.D) (int64, error) {
	sc, err := t.sessionContext(ctx)
	if err != nil {
		return 0, err
	}
	return t.db.Collection(collection).CountDocuments(sc, filter)
}

// LastVerifiedBlock returns the highest block whose verification is confirmed, or 0.
func (t *Transaction) LastVerifiedBlock(ctx context.Context) (model.BlockNumber, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("last_verified_block", t.network, err, start)
	}()

	number, err := t.lastBlock(ctx, bson.D{
		{Key: "network", Value: string(t.network)},
		{Key: "action_type", Value: string(model.ActionVerify)},
		{Key: "confirmed", Value: true},
	})
	if err != nil {
		err = fmt.Errorf("find last verified block: %w", err)
		return 0, err
	}
	return number, nil
}

// LastCommittedBlock returns the highest committed block, or 0.
func (t *Transaction) LastCommittedBlock(ctx context.Context) (model.BlockNumber, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("last_committed_block", t.network, err, start)
	}()

	number, err := t.lastBlock(ctx, bson.D{
		{Key: "network", Value: string(t.network)},
		{Key: "action_type", Value: string(model.ActionCommit)},
	})
	if err != nil {
		err = fmt.Errorf("find last committed block: %w", err)
		return 0, err
	}
	return number, nil
}

// TotalTransactions counts executed transactions and executed priority operations.
func (t *Transaction) TotalTransactions(ctx context.Context) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("total_transactions", t.network, err, start)
	}()

	filter := bson.D{{Key: "network", Value: string(t.network)}}
	txs, err := t.count(ctx, cExecutedTxs, filter)
	if err != nil {
		err = fmt.Errorf("count executed transactions: %w", err)
		return 0, err
	}
	ops, err := t.count(ctx, cExecutedPriorityOp, filter)
	if err != nil {
		err = fmt.Errorf("count executed priority operations: %w", err)
		return 0, err
	}

	total, err := safe.Uint32(txs + ops)
	if err != nil {
		err = fmt.Errorf("convert total transactions: %w", err)
		return 0, err
	}
	return total, nil
}

// MempoolSize counts transactions waiting in the mempool.
func (t *Transaction) MempoolSize(ctx context.Context) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("mempool_size", t.network, err, start)
	}()

	n, err := t.count(ctx, cMempoolTxs, bson.D{{Key: "network", Value: string(t.network)}})
	if err != nil {
		err = fmt.Errorf("count mempool transactions: %w", err)
		return 0, err
	}
	size, err := safe.Uint32(n)
	if err != nil {
		err = fmt.Errorf("convert mempool size: %w", err)
		return 0, err
	}
	return size, nil
}

// OutstandingProofs counts executed transactions in blocks after the given block.
func (t *Transaction) OutstandingProofs(ctx context.Context, after model.BlockNumber) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("outstanding_proofs", t.network, err, start)
	}()

	n, err := t.count(ctx, cExecutedTxs, bson.D{
		{Key: "network", Value: string(t.network)},
		{Key: "block_number", Value: bson.D{{Key: "$gt", Value: int64(after)}}},
	})
	if err != nil {
		err = fmt.Errorf("count outstanding proofs: %w", err)
		return 0, err
	}
	outstanding, err := safe.Uint32(n)
	if err != nil {
		err = fmt.Errorf("convert outstanding proofs: %w", err)
		return 0, err
	}
	return outstanding, nil
}
