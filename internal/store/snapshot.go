package store

import (
	"context"
	"fmt"
)

// Snapshot is the full persisted state of a ProductStore.
type Snapshot struct {
	LastID   uint64    `json:"last_id"  yaml:"last_id"`
	Products []Product `json:"products" yaml:"products"`
}

// Substrate persists snapshots across process restarts.
type Substrate interface {
	// Load returns the last saved snapshot.
	// Returns an empty snapshot if nothing has been saved yet.
	Load(ctx context.Context) (Snapshot, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot Snapshot) error

	// Close releases the resources held by the substrate.
	Close() error
}

// Snapshot returns a deep copy of the current state.
func (s *ProductStore) Snapshot() Snapshot {
	return Snapshot{
		LastID:   s.lastID,
		Products: s.ListAllProducts(),
	}
}

// Restore replaces the current state with snapshot.
// The counter is raised to the largest stored id if the snapshot lags behind its records.
func (s *ProductStore) Restore(snapshot Snapshot) {
	products := make(map[uint64]Product, len(snapshot.Products))
	lastID := snapshot.LastID
	for _, p := range snapshot.Products {
		products[p.ID] = p.clone()
		lastID = max(lastID, p.ID)
	}
	s.products = products
	s.lastID = lastID
}

// Open creates a ProductStore populated from the substrate's last snapshot.
func Open(ctx context.Context, substrate Substrate, opts ...Option) (*ProductStore, error) {
	snapshot, err := substrate.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	s := New(opts...)
	s.Restore(snapshot)
	return s, nil
}
