// Package substrate selects the durable snapshot backend named by the storage configuration.
package substrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abgdnv/bakery-inventory/internal/store"
	"github.com/abgdnv/bakery-inventory/internal/substrate/file"
	"github.com/abgdnv/bakery-inventory/internal/substrate/memory"
	"github.com/abgdnv/bakery-inventory/internal/substrate/postgres"
	"github.com/abgdnv/bakery-inventory/internal/substrate/s3"
	"github.com/abgdnv/bakery-inventory/internal/substrate/sqlite"
	"github.com/abgdnv/bakery-inventory/pkg/bootstrap"
	"github.com/abgdnv/bakery-inventory/pkg/config"
)

// Open creates the substrate for cfg.Driver. The caller closes it.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (store.Substrate, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage, state is lost on exit")
		return memory.New(), nil

	case config.StorageFile:
		sub, err := file.New(cfg.File.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		logger.Info("Using file storage", "path", sub.Path())
		return sub, nil

	case config.StorageSQLite:
		sub, err := sqlite.New(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		logger.Info("Using sqlite storage", "path", cfg.SQLite.Path)
		return sub, nil

	case config.StoragePostgres:
		if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
			return nil, fmt.Errorf("failed to migrate postgres storage: %w", err)
		}
		pool, err := bootstrap.NewDbPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		logger.Info("Using postgres storage", "url", config.MaskURL(cfg.Postgres.URL))
		return postgres.New(pool), nil

	case config.StorageS3:
		sub, err := s3.New(ctx, s3.Config{
			Bucket:    cfg.S3.Bucket,
			Key:       cfg.S3.Key,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,

			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open s3 storage: %w", err)
		}
		logger.Info("Using s3 storage", "bucket", cfg.S3.Bucket, "key", cfg.S3.Key)
		return sub, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
