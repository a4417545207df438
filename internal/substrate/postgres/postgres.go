// Package postgres provides a substrate that stores the snapshot as a JSONB document in PostgreSQL.
package postgres

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abgdnv/bakery-inventory/internal/store"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var _ store.Substrate = (*Substrate)(nil)

const snapshotName = "inventory"

// Substrate persists the snapshot to the inventory_snapshots table.
// It owns the pool and closes it on Close.
type Substrate struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Substrate {
	return &Substrate{pool: pool}
}

// Migrate applies the embedded schema migrations to the database at databaseURL.
func Migrate(databaseURL string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (s *Substrate) Load(ctx context.Context) (store.Snapshot, error) {
	var snapshot store.Snapshot
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM inventory_snapshots WHERE name = $1`, snapshotName).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return snapshot, nil
		}
		return snapshot, fmt.Errorf("failed to select snapshot: %w", err)
	}
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *Substrate) Save(ctx context.Context, snapshot store.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO inventory_snapshots (name, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		snapshotName, payload)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}
	return nil
}

func (s *Substrate) Close() error {
	s.pool.Close()
	return nil
}
