package service

import (
	"time"

	"github.com/abgdnv/bakery-inventory/internal/events"
	"github.com/abgdnv/bakery-inventory/internal/store"
)

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID        uint64         `json:"id"                   yaml:"id"`
	Name      string         `json:"name"                 yaml:"name"`
	Category  store.Category `json:"category"             yaml:"category"`
	Quantity  uint32         `json:"quantity"             yaml:"quantity"`
	CreatedAt time.Time      `json:"created_at"           yaml:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ProductPayload carries the editable fields of a product for add and update.
type ProductPayload struct {
	Name     string         `json:"name"     validate:"required,notblank,max=100"`
	Quantity uint32         `json:"quantity" validate:"required,min=1"`
	Category store.Category `json:"category" validate:"required,category"`
}

// StockPayload carries the amount for stock additions and offloads.
type StockPayload struct {
	Amount uint32 `json:"amount" validate:"required,min=1"`
}

func toDto(p store.Product) *ProductDto {
	return &ProductDto{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toDtos(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		dtos[i] = *toDto(p)
	}
	return dtos
}

func toEventProduct(p store.Product) *events.Product {
	return &events.Product{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category.String(),
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
