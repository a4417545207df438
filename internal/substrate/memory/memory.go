// Package memory provides a substrate that keeps the snapshot in process memory.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/abgdnv/bakery-inventory/internal/store"
)

var _ store.Substrate = (*Substrate)(nil)

// Substrate holds the last saved snapshot. State is lost when the process exits.
type Substrate struct {
	mu       sync.Mutex
	snapshot store.Snapshot
	saves    int
}

func New() *Substrate {
	return &Substrate{}
}

func (s *Substrate) Load(_ context.Context) (store.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySnapshot(s.snapshot), nil
}

func (s *Substrate) Save(_ context.Context, snapshot store.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = copySnapshot(snapshot)
	s.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (s *Substrate) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *Substrate) Close() error {
	return nil
}

func copySnapshot(snapshot store.Snapshot) store.Snapshot {
	products := slices.Clone(snapshot.Products)
	for i := range products {
		if products[i].UpdatedAt != nil {
			u := *products[i].UpdatedAt
			products[i].UpdatedAt = &u
		}
	}
	return store.Snapshot{LastID: snapshot.LastID, Products: products}
}
