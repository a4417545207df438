// Package substratetest provides a shared round-trip check for store.Substrate implementations.
package substratetest

import (
	"context"
	"testing"
	"time"

	"github.com/abgdnv/bakery-inventory/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SampleSnapshot returns a snapshot covering every product field, a removed id gap and a large counter.
func SampleSnapshot() store.Snapshot {
	created := time.Date(2024, 3, 14, 9, 26, 53, 589793238, time.UTC)
	updated := created.Add(90 * time.Minute)
	return store.Snapshot{
		LastID: 1<<63 + 5,
		Products: []store.Product{
			{ID: 1, Name: "Croissant", Category: store.Bakery, Quantity: 10, CreatedAt: created},
			{ID: 3, Name: "Black Forest", Category: store.Cake, Quantity: 4294967295, CreatedAt: created, UpdatedAt: &updated},
			{ID: 1<<63 + 5, Name: "Snickerdoodle \"classic\"", Category: store.Cookies, Quantity: 0, CreatedAt: created, UpdatedAt: &updated},
		},
	}
}

// RoundTrip checks that an empty substrate loads as an empty snapshot,
// that a saved snapshot loads back unchanged, and that a second save replaces the first.
func RoundTrip(t *testing.T, sub store.Substrate) {
	t.Helper()
	ctx := context.Background()

	empty, err := sub.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), empty.LastID)
	assert.Empty(t, empty.Products)

	want := SampleSnapshot()
	require.NoError(t, sub.Save(ctx, want))
	got, err := sub.Load(ctx)
	require.NoError(t, err)
	AssertSnapshotEqual(t, want, got)

	cleared := store.Snapshot{LastID: want.LastID, Products: []store.Product{}}
	require.NoError(t, sub.Save(ctx, cleared))
	got, err = sub.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.LastID, got.LastID)
	assert.Empty(t, got.Products)
}

// AssertSnapshotEqual compares snapshots using time.Time.Equal for timestamps.
func AssertSnapshotEqual(t *testing.T, want, got store.Snapshot) {
	t.Helper()
	assert.Equal(t, want.LastID, got.LastID)
	require.Len(t, got.Products, len(want.Products))
	for i := range want.Products {
		w, g := want.Products[i], got.Products[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.Name, g.Name)
		assert.Equal(t, w.Category, g.Category)
		assert.Equal(t, w.Quantity, g.Quantity)
		assert.True(t, w.CreatedAt.Equal(g.CreatedAt), "created_at: want %s, got %s", w.CreatedAt, g.CreatedAt)
		if w.UpdatedAt == nil {
			assert.Nil(t, g.UpdatedAt)
			continue
		}
		require.NotNil(t, g.UpdatedAt)
		assert.True(t, w.UpdatedAt.Equal(*g.UpdatedAt), "updated_at: want %s, got %s", w.UpdatedAt, g.UpdatedAt)
	}
}
