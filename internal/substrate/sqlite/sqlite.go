// Package sqlite provides a substrate that stores the snapshot as a JSON blob in an SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abgdnv/bakery-inventory/internal/store"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

var _ store.Substrate = (*Substrate)(nil)

const snapshotName = "inventory"

// Substrate persists the snapshot to a single row of the snapshots table.
type Substrate struct {
	db *sql.DB
}

// New opens (or creates) the database at path and ensures the schema exists.
func New(ctx context.Context, path string) (*Substrate, error) {
	if path == "" {
		path = "inventory.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps writes ordered
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshots (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &Substrate{db: db}, nil
}

func (s *Substrate) Load(ctx context.Context) (store.Snapshot, error) {
	var snapshot store.Snapshot
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE name = ?`, snapshotName).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return snapshot, nil
		}
		return snapshot, fmt.Errorf("select snapshot: %w", err)
	}
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return store.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *Substrate) Save(ctx context.Context, snapshot store.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots(name, payload) VALUES(?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		snapshotName, payload); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (s *Substrate) Close() error {
	return s.db.Close()
}
