// Package events defines the domain events the inventory publishes after each committed change.
package events

import (
	"encoding/json"
	"time"

	"github.com/abgdnv/bakery-inventory/pkg/messaging"
	"github.com/google/uuid"
)

const (
	ProductCreatedSubject  = "inventory.product.created"
	ProductUpdatedSubject  = "inventory.product.updated"
	ProductRemovedSubject  = "inventory.product.removed"
	StockAddedSubject      = "inventory.stock.added"
	StockOffloadedSubject  = "inventory.stock.offloaded"
	ProductsClearedSubject = "inventory.products.cleared"
	StreamSubjects         = "inventory.>"
)

// Type names the change an event reports.
type Type string

const (
	ProductCreated  Type = "product_created"
	ProductUpdated  Type = "product_updated"
	ProductRemoved  Type = "product_removed"
	StockAdded      Type = "stock_added"
	StockOffloaded  Type = "stock_offloaded"
	ProductsCleared Type = "products_cleared"
)

var subjects = map[Type]string{
	ProductCreated:  ProductCreatedSubject,
	ProductUpdated:  ProductUpdatedSubject,
	ProductRemoved:  ProductRemovedSubject,
	StockAdded:      StockAddedSubject,
	StockOffloaded:  StockOffloadedSubject,
	ProductsCleared: ProductsClearedSubject,
}

// Product is the product state carried by an event.
type Product struct {
	ID        uint64     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Category  string     `json:"category" yaml:"category"`
	Quantity  uint32     `json:"quantity" yaml:"quantity"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

type ProductEvent struct {
	EventID    uuid.UUID `json:"event_id" yaml:"event_id"`
	Type       Type      `json:"type" yaml:"type"`
	Product    *Product  `json:"product,omitempty" yaml:"product,omitempty"`
	Amount     uint32    `json:"amount,omitempty" yaml:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at" yaml:"occurred_at"`
}

var _ messaging.IdentifiedEvent = ProductEvent{}

// New creates an event of the given type with a fresh id.
// product is nil for ProductsCleared.
func New(t Type, product *Product, amount uint32, occurredAt time.Time) ProductEvent {
	return ProductEvent{
		EventID:    uuid.New(),
		Type:       t,
		Product:    product,
		Amount:     amount,
		OccurredAt: occurredAt,
	}
}

func (e ProductEvent) Subject() string {
	return subjects[e.Type]
}

func (e ProductEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

func (e ProductEvent) ID() string {
	return e.EventID.String()
}
