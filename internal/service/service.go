// Package service provides the inventory business operations on top of the record store.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abgdnv/bakery-inventory/internal/events"
	"github.com/abgdnv/bakery-inventory/internal/store"
	"github.com/abgdnv/bakery-inventory/pkg/messaging"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// ProductService defines the inventory operations consumed by the transports.
type ProductService interface {
	// AddProduct stores a new product under the next free id.
	// Returns an InvalidOperation error if the payload is invalid.
	AddProduct(ctx context.Context, payload ProductPayload) (*ProductDto, error)

	// GetProduct returns the product with the given id.
	// Returns a NotFound error if it does not exist.
	GetProduct(ctx context.Context, id uint64) (*ProductDto, error)

	// ListAllProducts returns every product in ascending id order.
	ListAllProducts(ctx context.Context) []ProductDto

	// SearchByCategory returns the products of one category. No match yields an empty slice.
	SearchByCategory(ctx context.Context, category store.Category) []ProductDto

	// UpdateProduct replaces name, quantity and category of a product.
	UpdateProduct(ctx context.Context, id uint64, payload ProductPayload) (*ProductDto, error)

	// RemoveProduct deletes a product and returns the removed record.
	RemoveProduct(ctx context.Context, id uint64) (*ProductDto, error)

	// GetStock returns the quantity of a product.
	GetStock(ctx context.Context, id uint64) (uint32, error)

	// AddQuantity increases the stock of a product.
	AddQuantity(ctx context.Context, id uint64, payload StockPayload) (*ProductDto, error)

	// OffloadQuantity decreases the stock of a product.
	// Returns an InvalidOperation error if the amount exceeds the available quantity.
	OffloadQuantity(ctx context.Context, id uint64, payload StockPayload) (*ProductDto, error)

	// ClearAllProducts removes every product. Ids are never reused afterwards.
	ClearAllProducts(ctx context.Context) error
}

const (
	opAddProduct       = "add_product"
	opGetProduct       = "get_product"
	opListAllProducts  = "list_all_products"
	opSearchByCategory = "search_by_category"
	opUpdateProduct    = "update_product"
	opRemoveProduct    = "remove_product"
	opGetStock         = "get_stock"
	opAddQuantity      = "add_quantity"
	opOffloadQuantity  = "offload_quantity"
	opClearAllProducts = "clear_all_products"
)

var _ ProductService = (*Service)(nil)

// Service implements ProductService. Calls are serialized, and every mutation is persisted
// to the substrate before it becomes visible.
type Service struct {
	mu        sync.Mutex
	store     *store.ProductStore
	substrate store.Substrate
	publisher messaging.Publisher
	validate  *validator.Validate
	logger    *slog.Logger
	metrics   *metrics
	now       func() time.Time
}

type options struct {
	meterProvider metric.MeterProvider
	now           func() time.Time
}

// Option configures a Service.
type Option func(*options)

// WithMeterProvider sets the provider of the service instruments. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithClock sets the time source of event timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewService creates a Service owning st. st must not be used by anything else afterwards.
func NewService(st *store.ProductStore, substrate store.Substrate, publisher messaging.Publisher, logger *slog.Logger, opts ...Option) (*Service, error) {
	o := options{meterProvider: otel.GetMeterProvider(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Service{
		store:     st,
		substrate: substrate,
		publisher: publisher,
		validate:  NewValidator(),
		logger:    logger.With("component", "service"),
		now:       o.now,
	}
	m, err := newMetrics(o.meterProvider, s.productCount)
	if err != nil {
		return nil, err
	}
	s.metrics = m
	return s, nil
}

func (s *Service) AddProduct(ctx context.Context, payload ProductPayload) (*ProductDto, error) {
	if err := s.validatePayload(payload); err != nil {
		s.metrics.record(ctx, opAddProduct, err)
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.mutate(ctx, opAddProduct, func() (store.Product, error) {
		return s.store.AddProduct(payload.Name, payload.Quantity, payload.Category)
	})
	s.metrics.record(ctx, opAddProduct, err)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Product added", "id", p.ID, "name", p.Name, "category", p.Category)
	s.publish(ctx, events.ProductCreated, toEventProduct(p), 0)
	return toDto(p), nil
}

func (s *Service) GetProduct(ctx context.Context, id uint64) (*ProductDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.GetProduct(id)
	s.metrics.record(ctx, opGetProduct, err)
	if err != nil {
		return nil, err
	}
	return toDto(p), nil
}

func (s *Service) ListAllProducts(ctx context.Context) []ProductDto {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.record(ctx, opListAllProducts, nil)
	return toDtos(s.store.ListAllProducts())
}

func (s *Service) SearchByCategory(ctx context.Context, category store.Category) []ProductDto {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.record(ctx, opSearchByCategory, nil)
	return toDtos(s.store.SearchByCategory(category))
}

func (s *Service) UpdateProduct(ctx context.Context, id uint64, payload ProductPayload) (*ProductDto, error) {
	if err := s.validatePayload(payload); err != nil {
		s.metrics.record(ctx, opUpdateProduct, err)
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.mutate(ctx, opUpdateProduct, func() (store.Product, error) {
		return s.store.UpdateProduct(id, payload.Name, payload.Quantity, payload.Category)
	})
	s.metrics.record(ctx, opUpdateProduct, err)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Product updated", "id", p.ID)
	s.publish(ctx, events.ProductUpdated, toEventProduct(p), 0)
	return toDto(p), nil
}

func (s *Service) RemoveProduct(ctx context.Context, id uint64) (*ProductDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.mutate(ctx, opRemoveProduct, func() (store.Product, error) {
		return s.store.RemoveProduct(id)
	})
	s.metrics.record(ctx, opRemoveProduct, err)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Product removed", "id", p.ID)
	s.publish(ctx, events.ProductRemoved, toEventProduct(p), 0)
	return toDto(p), nil
}

func (s *Service) GetStock(ctx context.Context, id uint64) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity, err := s.store.GetStock(id)
	s.metrics.record(ctx, opGetStock, err)
	return quantity, err
}

func (s *Service) AddQuantity(ctx context.Context, id uint64, payload StockPayload) (*ProductDto, error) {
	if err := s.validatePayload(payload); err != nil {
		s.metrics.record(ctx, opAddQuantity, err)
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.mutate(ctx, opAddQuantity, func() (store.Product, error) {
		return s.store.AddQuantity(id, payload.Amount)
	})
	s.metrics.record(ctx, opAddQuantity, err)
	if err != nil {
		return nil, err
	}
	s.metrics.moved(ctx, "in", payload.Amount)
	s.logger.InfoContext(ctx, "Stock added", "id", p.ID, "amount", payload.Amount, "quantity", p.Quantity)
	s.publish(ctx, events.StockAdded, toEventProduct(p), payload.Amount)
	return toDto(p), nil
}

func (s *Service) OffloadQuantity(ctx context.Context, id uint64, payload StockPayload) (*ProductDto, error) {
	if err := s.validatePayload(payload); err != nil {
		s.metrics.record(ctx, opOffloadQuantity, err)
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.mutate(ctx, opOffloadQuantity, func() (store.Product, error) {
		return s.store.OffloadQuantity(id, payload.Amount)
	})
	s.metrics.record(ctx, opOffloadQuantity, err)
	if err != nil {
		return nil, err
	}
	s.metrics.moved(ctx, "out", payload.Amount)
	s.logger.InfoContext(ctx, "Stock offloaded", "id", p.ID, "amount", payload.Amount, "quantity", p.Quantity)
	s.publish(ctx, events.StockOffloaded, toEventProduct(p), payload.Amount)
	return toDto(p), nil
}

func (s *Service) ClearAllProducts(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.store.Len()
	_, err := s.mutate(ctx, opClearAllProducts, func() (store.Product, error) {
		s.store.ClearAllProducts()
		return store.Product{}, nil
	})
	s.metrics.record(ctx, opClearAllProducts, err)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "All products cleared", "removed", removed)
	s.publish(ctx, events.ProductsCleared, nil, 0)
	return nil
}

// mutate applies change to the store and saves the resulting snapshot.
// If the save fails the store is restored to its previous state. Callers hold s.mu.
func (s *Service) mutate(ctx context.Context, operation string, change func() (store.Product, error)) (store.Product, error) {
	before := s.store.Snapshot()
	p, err := change()
	if err != nil {
		s.logger.WarnContext(ctx, "Operation rejected", "operation", operation, "error", err)
		return store.Product{}, err
	}
	if err := s.substrate.Save(ctx, s.store.Snapshot()); err != nil {
		s.store.Restore(before)
		s.logger.ErrorContext(ctx, "Failed to persist snapshot, changes rolled back", "operation", operation, "error", err)
		return store.Product{}, fmt.Errorf("failed to persist %s: %w", operation, err)
	}
	return p, nil
}

// publish sends an event for a committed change. Failures are logged and not returned.
func (s *Service) publish(ctx context.Context, eventType events.Type, product *events.Product, amount uint32) {
	event := events.New(eventType, product, amount, s.now().UTC())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "subject", event.Subject(), "error", err)
	}
}

func (s *Service) productCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}
