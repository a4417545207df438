// Package store holds the inventory record store and its stock arithmetic.
package store

import (
	"cmp"
	"math"
	"slices"
	"time"

	perrors "github.com/abgdnv/bakery-inventory/internal/errors"
)

// ProductStore owns all product records and the identifier counter.
// It is not safe for concurrent use; callers serialize access.
type ProductStore struct {
	products map[uint64]Product
	lastID   uint64
	now      func() time.Time
}

// Option configures a ProductStore.
type Option func(*ProductStore)

// WithClock sets the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *ProductStore) {
		s.now = now
	}
}

// New creates an empty ProductStore.
func New(opts ...Option) *ProductStore {
	s := &ProductStore{
		products: make(map[uint64]Product),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp returns the current time in UTC without a monotonic reading,
// so it survives encoding round trips unchanged.
func (s *ProductStore) timestamp() time.Time {
	return s.now().UTC().Round(0)
}

// AddProduct allocates the next id and stores a new product.
// It fails only if the category is unknown or the id counter is exhausted.
func (s *ProductStore) AddProduct(name string, quantity uint32, category Category) (Product, error) {
	if !category.Valid() {
		return Product{}, perrors.InvalidOperation("Unknown category %q", category)
	}
	if s.lastID == math.MaxUint64 {
		return Product{}, perrors.InvalidOperation("Cannot increment id counter")
	}
	s.lastID++
	p := Product{
		ID:        s.lastID,
		Name:      name,
		Category:  category,
		Quantity:  quantity,
		CreatedAt: s.timestamp(),
	}
	s.products[p.ID] = p
	return p.clone(), nil
}

// GetProduct returns the product with the given id.
func (s *ProductStore) GetProduct(id uint64) (Product, error) {
	p, ok := s.products[id]
	if !ok {
		return Product{}, perrors.NotFound("A product with id=%d was not found", id)
	}
	return p.clone(), nil
}

// ListAllProducts returns every product in ascending id order.
func (s *ProductStore) ListAllProducts() []Product {
	return s.filter(func(Product) bool { return true })
}

// SearchByCategory returns the products of the given category.
// The result is empty, not an error, when nothing matches.
func (s *ProductStore) SearchByCategory(category Category) []Product {
	return s.filter(func(p Product) bool { return p.Category == category })
}

func (s *ProductStore) filter(keep func(Product) bool) []Product {
	result := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if keep(p) {
			result = append(result, p.clone())
		}
	}
	slices.SortFunc(result, func(a, b Product) int { return cmp.Compare(a.ID, b.ID) })
	return result
}

// UpdateProduct replaces name, quantity and category of an existing product.
func (s *ProductStore) UpdateProduct(id uint64, name string, quantity uint32, category Category) (Product, error) {
	p, ok := s.products[id]
	if !ok {
		return Product{}, perrors.NotFound("Product with id=%d not found", id)
	}
	if !category.Valid() {
		return Product{}, perrors.InvalidOperation("Unknown category %q", category)
	}
	p.Name = name
	p.Quantity = quantity
	p.Category = category
	return s.touch(p), nil
}

// RemoveProduct deletes a product and returns the removed record.
func (s *ProductStore) RemoveProduct(id uint64) (Product, error) {
	p, ok := s.products[id]
	if !ok {
		return Product{}, perrors.NotFound("Couldn't delete a product with id=%d. Product not found", id)
	}
	delete(s.products, id)
	return p.clone(), nil
}

// GetStock returns the quantity of a product.
func (s *ProductStore) GetStock(id uint64) (uint32, error) {
	p, ok := s.products[id]
	if !ok {
		return 0, perrors.NotFound("A product with id=%d was not found", id)
	}
	return p.Quantity, nil
}

// AddQuantity increases the quantity of a product by amount.
func (s *ProductStore) AddQuantity(id uint64, amount uint32) (Product, error) {
	p, ok := s.products[id]
	if !ok {
		return Product{}, perrors.NotFound("Couldn't add quantity to product with id=%d. Product not found", id)
	}
	if amount > math.MaxUint32-p.Quantity {
		return Product{}, perrors.InvalidOperation("Cannot add %d to product with id=%d: quantity would overflow. Available: %d", amount, id, p.Quantity)
	}
	p.Quantity += amount
	return s.touch(p), nil
}

// OffloadQuantity decreases the quantity of a product by amount.
func (s *ProductStore) OffloadQuantity(id uint64, amount uint32) (Product, error) {
	p, ok := s.products[id]
	if !ok {
		return Product{}, perrors.NotFound("Couldn't offload a product with id=%d. Product not found", id)
	}
	if amount > p.Quantity {
		if p.Quantity == 0 {
			return Product{}, perrors.InvalidOperation("Product with id=%d cannot be offloaded because the quantity is 0", id)
		}
		return Product{}, perrors.InvalidOperation("Cannot offload more than available quantity. Available: %d, Trying to offload: %d", p.Quantity, amount)
	}
	p.Quantity -= amount
	return s.touch(p), nil
}

// ClearAllProducts removes every product. The id counter is kept.
func (s *ProductStore) ClearAllProducts() {
	clear(s.products)
}

// Len returns the number of stored products.
func (s *ProductStore) Len() int {
	return len(s.products)
}

// touch stamps updated_at and writes p back.
func (s *ProductStore) touch(p Product) Product {
	now := s.timestamp()
	p.UpdatedAt = &now
	s.products[p.ID] = p
	return p.clone()
}
