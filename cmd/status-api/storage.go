package main

import (
	"context"
	"fmt"

	"github.com/ashelwen77/zksync/internal/metrics"
	"github.com/ashelwen77/zksync/internal/model"
	"github.com/ashelwen77/zksync/internal/repository/clickhouse"
	"github.com/ashelwen77/zksync/internal/repository/mongodb"
	"github.com/ashelwen77/zksync/internal/status"
)

type closeFunc func(ctx context.Context) error

func openStorage(ctx context.Context, cfg config, network model.Network) (status.Storage, closeFunc, error) {
	switch cfg.Storage {
	case storageClickhouse:
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, network, metrics.NewRepository(storageClickhouse))
		if err != nil {
			return nil, nil, fmt.Errorf("create clickhouse repository: %w", err)
		}
		return repo, func(context.Context) error { return repo.Close() }, nil
	case storageMongo:
		repo, err := mongodb.NewRepository(ctx, cfg.MongoURI, cfg.MongoDatabase, network, metrics.NewRepository(storageMongo))
		if err != nil {
			return nil, nil, fmt.Errorf("create mongo repository: %w", err)
		}
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = repo.Close(ctx)
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
