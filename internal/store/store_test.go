package store

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	perrors "github.com/abgdnv/bakery-inventory/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns a clock that advances by one second on every call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

var baseTime = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestStore() *ProductStore {
	return New(WithClock(stepClock(baseTime)))
}

func TestProductStore_WorkedExample(t *testing.T) {
	// given
	s := newTestStore()

	// when
	p, err := s.AddProduct("Croissant", 10, Bakery)

	// then
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.ID)

	p, err = s.AddQuantity(1, 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(15), p.Quantity)

	_, err = s.OffloadQuantity(1, 20)
	require.ErrorIs(t, err, perrors.ErrInvalidOperation)

	p, err = s.OffloadQuantity(1, 15)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), p.Quantity)

	stock, err := s.GetStock(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), stock)
}

func TestProductStore_AddProduct_IDsStrictlyIncreasing(t *testing.T) {
	// given
	s := newTestStore()
	var last uint64

	// when
	for i := range 50 {
		p, err := s.AddProduct("Cookie", uint32(i), Cookies)

		// then
		require.NoError(t, err)
		assert.Greater(t, p.ID, last)
		last = p.ID
	}
	assert.Equal(t, 50, s.Len())
}

func TestProductStore_AddProduct(t *testing.T) {
	testCases := []struct {
		name        string
		category    Category
		lastID      uint64
		expectError error
	}{
		{name: "Success - bakery", category: Bakery},
		{name: "Success - cake", category: Cake},
		{name: "Error - unknown category", category: Category("Bread"), expectError: perrors.ErrInvalidOperation},
		{name: "Error - id counter exhausted", category: Cake, lastID: math.MaxUint64, expectError: perrors.ErrInvalidOperation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := newTestStore()
			s.lastID = tc.lastID

			// when
			p, err := s.AddProduct("Eclair", 3, tc.category)

			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Equal(t, 0, s.Len())
				assert.Equal(t, tc.lastID, s.lastID)
				return
			}
			require.NoError(t, err)
			got, err := s.GetProduct(p.ID)
			require.NoError(t, err)
			assert.Equal(t, "Eclair", got.Name)
			assert.Equal(t, uint32(3), got.Quantity)
			assert.Equal(t, tc.category, got.Category)
			assert.Nil(t, got.UpdatedAt)
			assert.Equal(t, baseTime.Add(time.Second), got.CreatedAt)
		})
	}
}

func TestProductStore_GetProduct_NotFound(t *testing.T) {
	// given
	s := newTestStore()

	// when
	_, err := s.GetProduct(42)

	// then
	require.ErrorIs(t, err, perrors.ErrNotFound)
	assert.Equal(t, "A product with id=42 was not found", err.Error())
}

func TestProductStore_UpdateProduct(t *testing.T) {
	// given
	s := newTestStore()
	created, err := s.AddProduct("Muffin", 4, Bakery)
	require.NoError(t, err)

	// when
	updated, err := s.UpdateProduct(created.ID, "Cheesecake", 9, Cake)

	// then
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Cheesecake", updated.Name)
	assert.Equal(t, uint32(9), updated.Quantity)
	assert.Equal(t, Cake, updated.Category)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))

	t.Run("not found", func(t *testing.T) {
		_, err := s.UpdateProduct(99, "x", 1, Cake)
		require.ErrorIs(t, err, perrors.ErrNotFound)
		assert.Equal(t, "Product with id=99 not found", err.Error())
	})

	t.Run("unknown category leaves record unchanged", func(t *testing.T) {
		_, err := s.UpdateProduct(created.ID, "x", 1, Category("Pie"))
		require.ErrorIs(t, err, perrors.ErrInvalidOperation)
		got, _ := s.GetProduct(created.ID)
		assert.Equal(t, "Cheesecake", got.Name)
	})
}

func TestProductStore_RemoveProduct(t *testing.T) {
	// given
	s := newTestStore()
	created, err := s.AddProduct("Brownie", 7, Cookies)
	require.NoError(t, err)

	// when
	removed, err := s.RemoveProduct(created.ID)

	// then
	require.NoError(t, err)
	assert.Equal(t, created, removed)
	_, err = s.GetProduct(created.ID)
	assert.ErrorIs(t, err, perrors.ErrNotFound)

	_, err = s.RemoveProduct(created.ID)
	require.ErrorIs(t, err, perrors.ErrNotFound)
	assert.Equal(t, "Couldn't delete a product with id=1. Product not found", err.Error())
}

func TestProductStore_SearchByCategory(t *testing.T) {
	// given
	s := newTestStore()
	for _, c := range []Category{Cake, Bakery, Cake, Cookies} {
		_, err := s.AddProduct("item", 1, c)
		require.NoError(t, err)
	}

	testCases := []struct {
		name        string
		setup       func()
		category    Category
		expectedIDs []uint64
	}{
		{name: "two cakes", category: Cake, expectedIDs: []uint64{1, 3}},
		{name: "one bakery", category: Bakery, expectedIDs: []uint64{2}},
		{name: "no match after removal", setup: func() { _, _ = s.RemoveProduct(4) }, category: Cookies, expectedIDs: []uint64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setup != nil {
				tc.setup()
			}
			// when
			found := s.SearchByCategory(tc.category)

			// then
			require.NotNil(t, found)
			ids := make([]uint64, 0, len(found))
			for _, p := range found {
				assert.Equal(t, tc.category, p.Category)
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestProductStore_AddQuantity(t *testing.T) {
	testCases := []struct {
		name        string
		initial     uint32
		amount      uint32
		expected    uint32
		expectError error
	}{
		{name: "Success - add", initial: 10, amount: 5, expected: 15},
		{name: "Success - up to max", initial: math.MaxUint32 - 1, amount: 1, expected: math.MaxUint32},
		{name: "Error - overflow", initial: math.MaxUint32, amount: 1, expected: math.MaxUint32, expectError: perrors.ErrInvalidOperation},
		{name: "Error - large overflow", initial: 10, amount: math.MaxUint32, expected: 10, expectError: perrors.ErrInvalidOperation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := newTestStore()
			p, err := s.AddProduct("Baguette", tc.initial, Bakery)
			require.NoError(t, err)

			// when
			_, err = s.AddQuantity(p.ID, tc.amount)

			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				got, _ := s.GetProduct(p.ID)
				assert.Nil(t, got.UpdatedAt)
			} else {
				require.NoError(t, err)
			}
			stock, err := s.GetStock(p.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, stock)
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, err := newTestStore().AddQuantity(5, 1)
		require.ErrorIs(t, err, perrors.ErrNotFound)
		assert.Equal(t, "Couldn't add quantity to product with id=5. Product not found", err.Error())
	})
}

func TestProductStore_OffloadQuantity(t *testing.T) {
	testCases := []struct {
		name        string
		initial     uint32
		amount      uint32
		expected    uint32
		expectMsg   string
		expectError error
	}{
		{name: "Success - partial", initial: 10, amount: 4, expected: 6},
		{name: "Success - all", initial: 10, amount: 10, expected: 0},
		{
			name: "Error - more than available", initial: 10, amount: 11, expected: 10,
			expectError: perrors.ErrInvalidOperation,
			expectMsg:   "Cannot offload more than available quantity. Available: 10, Trying to offload: 11",
		},
		{
			name: "Error - empty stock", initial: 0, amount: 1, expected: 0,
			expectError: perrors.ErrInvalidOperation,
			expectMsg:   "Product with id=1 cannot be offloaded because the quantity is 0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := newTestStore()
			p, err := s.AddProduct("Macaron", tc.initial, Cookies)
			require.NoError(t, err)

			// when
			_, err = s.OffloadQuantity(p.ID, tc.amount)

			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Equal(t, tc.expectMsg, err.Error())
			} else {
				require.NoError(t, err)
			}
			stock, err := s.GetStock(p.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, stock)
		})
	}
}

func TestProductStore_AddThenOffloadRoundTrip(t *testing.T) {
	for _, amount := range []uint32{0, 1, 7, 1000, math.MaxUint32 - 20} {
		// given
		s := newTestStore()
		p, err := s.AddProduct("Tart", 20, Cake)
		require.NoError(t, err)

		// when
		_, err = s.AddQuantity(p.ID, amount)
		require.NoError(t, err)
		_, err = s.OffloadQuantity(p.ID, amount)
		require.NoError(t, err)

		// then
		stock, err := s.GetStock(p.ID)
		require.NoError(t, err)
		assert.Equal(t, uint32(20), stock, "amount %d", amount)
	}
}

func TestProductStore_ClearAllProducts_KeepsCounter(t *testing.T) {
	// given
	s := newTestStore()
	for range 3 {
		_, err := s.AddProduct("Scone", 1, Bakery)
		require.NoError(t, err)
	}

	// when
	s.ClearAllProducts()

	// then
	list := s.ListAllProducts()
	assert.NotNil(t, list)
	assert.Empty(t, list)
	p, err := s.AddProduct("Scone", 1, Bakery)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), p.ID)
}

func TestProductStore_ReturnedRecordsAreCopies(t *testing.T) {
	// given
	s := newTestStore()
	p, err := s.AddProduct("Donut", 2, Bakery)
	require.NoError(t, err)
	updated, err := s.AddQuantity(p.ID, 1)
	require.NoError(t, err)

	// when
	*updated.UpdatedAt = time.Time{}
	list := s.ListAllProducts()
	list[0].Name = "changed"

	// then
	got, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Donut", got.Name)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestProductStore_SnapshotRestore(t *testing.T) {
	// given
	s := newTestStore()
	_, err := s.AddProduct("Pie", 3, Cake)
	require.NoError(t, err)
	_, err = s.AddProduct("Cookie", 5, Cookies)
	require.NoError(t, err)
	_, err = s.RemoveProduct(2)
	require.NoError(t, err)

	// when
	snapshot := s.Snapshot()
	restored := New()
	restored.Restore(snapshot)

	// then
	assert.Equal(t, uint64(2), snapshot.LastID)
	assert.Equal(t, s.ListAllProducts(), restored.ListAllProducts())
	p, err := restored.AddProduct("Roll", 1, Bakery)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), p.ID)
}

func TestProductStore_Restore_RaisesLaggingCounter(t *testing.T) {
	// given
	s := New()

	// when
	s.Restore(Snapshot{LastID: 1, Products: []Product{{ID: 7, Name: "Strudel", Category: Bakery}}})

	// then
	p, err := s.AddProduct("Roll", 1, Bakery)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), p.ID)
}

type stubSubstrate struct {
	snapshot Snapshot
	err      error
}

func (s *stubSubstrate) Load(context.Context) (Snapshot, error) { return s.snapshot, s.err }
func (s *stubSubstrate) Save(context.Context, Snapshot) error   { return s.err }
func (s *stubSubstrate) Close() error                           { return nil }

func TestOpen(t *testing.T) {
	t.Run("loads snapshot", func(t *testing.T) {
		// given
		sub := &stubSubstrate{snapshot: Snapshot{LastID: 3, Products: []Product{{ID: 3, Name: "Cake", Category: Cake, Quantity: 2}}}}

		// when
		s, err := Open(context.Background(), sub)

		// then
		require.NoError(t, err)
		stock, err := s.GetStock(3)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), stock)
	})

	t.Run("load error", func(t *testing.T) {
		// given
		loadErr := errors.New("disk on fire")

		// when
		s, err := Open(context.Background(), &stubSubstrate{err: loadErr})

		// then
		assert.ErrorIs(t, err, loadErr)
		assert.Nil(t, s)
	})
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		input    string
		expected Category
		valid    bool
	}{
		{input: "Cake", expected: Cake, valid: true},
		{input: "cookies", expected: Cookies, valid: true},
		{input: " BAKERY ", expected: Bakery, valid: true},
		{input: "bread", valid: false},
		{input: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			c, err := ParseCategory(tc.input)
			if !tc.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c)
			assert.True(t, c.Valid())
		})
	}
}

func TestCategory_UnmarshalJSON(t *testing.T) {
	// given
	var payload struct {
		Known   Category `json:"known"`
		Unknown Category `json:"unknown"`
	}

	// when
	err := json.Unmarshal([]byte(`{"known":"cake","unknown":"Bread"}`), &payload)

	// then
	require.NoError(t, err)
	assert.Equal(t, Cake, payload.Known)
	assert.Equal(t, Category("Bread"), payload.Unknown)
	assert.False(t, payload.Unknown.Valid())
}
