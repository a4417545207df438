package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductEvent_Subject(t *testing.T) {
	testCases := []struct {
		eventType Type
		subject   string
	}{
		{ProductCreated, "inventory.product.created"},
		{ProductUpdated, "inventory.product.updated"},
		{ProductRemoved, "inventory.product.removed"},
		{StockAdded, "inventory.stock.added"},
		{StockOffloaded, "inventory.stock.offloaded"},
		{ProductsCleared, "inventory.products.cleared"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.eventType), func(t *testing.T) {
			assert.Equal(t, tc.subject, New(tc.eventType, nil, 0, time.Now()).Subject())
		})
	}
}

func TestProductEvent_Payload(t *testing.T) {
	// given
	occurred := time.Date(2025, 5, 4, 8, 30, 0, 0, time.UTC)
	event := New(StockAdded, &Product{ID: 1, Name: "Croissant", Category: "Bakery", Quantity: 15, CreatedAt: occurred}, 5, occurred)

	// when
	data, err := event.Payload()

	// then
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.EventID.String(), decoded["event_id"])
	assert.Equal(t, "stock_added", decoded["type"])
	assert.EqualValues(t, 5, decoded["amount"])
	assert.Equal(t, "2025-05-04T08:30:00Z", decoded["occurred_at"])
	product := decoded["product"].(map[string]any)
	assert.EqualValues(t, 15, product["quantity"])
	assert.NotContains(t, product, "updated_at")
}

func TestProductEvent_ClearedHasNoProduct(t *testing.T) {
	// when
	data, err := New(ProductsCleared, nil, 0, time.Now()).Payload()

	// then
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"product"`)
	assert.NotContains(t, string(data), `"amount"`)
}

func TestProductEvent_UniqueIDs(t *testing.T) {
	a := New(ProductCreated, nil, 0, time.Now())
	b := New(ProductCreated, nil, 0, time.Now())
	assert.NotEqual(t, a.ID(), b.ID())
}
