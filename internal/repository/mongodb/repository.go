// Package mongodb implements network status storage on top of MongoDB sessions.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ashelwen77/zksync/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	cOperations         = "Operations"
	cExecutedTxs        = "ExecutedTransactions"
	cExecutedPriorityOp = "ExecutedPriorityOperations"
	cMempoolTxs         = "MempoolTransactions"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Metrics interface {
	Observe(operation string, network model.Network, err error, started time.Time)
}

type Repository struct {
	client  *mongo.Client
	db      *mongo.Database
	network model.Network
	metrics Metrics
}

func NewRepository(ctx context.Context, uri, database string, network model.Network, metrics Metrics) (*Repository, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is required")
	}
	if database == "" {
		return nil, errors.New("mongo database is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}
	if metrics == nil {
		return nil, errors.New("mongo repository metrics is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return &Repository{
		client:  client,
		db:      client.Database(database),
		network: network,
		metrics: metrics,
	}, nil
}

// EnsureIndexes creates the indexes the status queries rely on.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	type cIndex struct {
		c     string
		model []mongo.IndexModel
	}

	indexes := []cIndex{
		{c: cOperations, model: []mongo.IndexModel{
			{Keys: bson.D{{Key: "network", Value: 1}, {Key: "action_type", Value: 1}, {Key: "block_number", Value: -1}}},
		}},
		{c: cExecutedTxs, model: []mongo.IndexModel{
			{Keys: bson.D{{Key: "network", Value: 1}, {Key: "block_number", Value: -1}}},
			{Keys: bson.D{{Key: "tx_hash", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{c: cExecutedPriorityOp, model: []mongo.IndexModel{
			{Keys: bson.D{{Key: "network", Value: 1}, {Key: "block_number", Value: -1}}},
		}},
		{c: cMempoolTxs, model: []mongo.IndexModel{
			{Keys: bson.D{{Key: "network", Value: 1}}},
			{Keys: bson.D{{Key: "tx_hash", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
	}
	for _, idx := range indexes {
		if _, err := r.db.Collection(idx.c).Indexes().CreateMany(ctx, idx.model); err != nil {
			return fmt.Errorf("create %s indexes: %w", idx.c, err)
		}
	}
	return nil
}

// Close disconnects the client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
