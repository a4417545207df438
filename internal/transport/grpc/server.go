// Package grpc exposes the inventory service over gRPC.
package grpc

import (
	"context"
	"log/slog"

	perrors "github.com/abgdnv/bakery-inventory/internal/errors"
	"github.com/abgdnv/bakery-inventory/internal/service"
	"github.com/abgdnv/bakery-inventory/internal/store"
	inventoryv1 "github.com/abgdnv/bakery-inventory/pkg/api/gen/go/inventory/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Server struct {
	// Embed the unimplemented server for forward compatibility
	inventoryv1.UnimplementedInventoryServiceServer
	service service.ProductService
	logger  *slog.Logger
}

var _ inventoryv1.InventoryServiceServer = (*Server)(nil)

func NewServer(svc service.ProductService, logger *slog.Logger) *Server {
	return &Server{service: svc, logger: logger.With("component", "grpc")}
}

func (s *Server) AddProduct(ctx context.Context, req *inventoryv1.AddProductRequest) (*inventoryv1.ProductResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	p, err := s.service.AddProduct(ctx, service.ProductPayload{Name: req.Name, Quantity: req.Quantity, Category: category})
	if err != nil {
		return nil, s.toStatus(ctx, err, "AddProduct")
	}
	return &inventoryv1.ProductResponse{Product: toProto(p)}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *inventoryv1.GetProductRequest) (*inventoryv1.ProductResponse, error) {
	p, err := s.service.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err, "GetProduct")
	}
	return &inventoryv1.ProductResponse{Product: toProto(p)}, nil
}

func (s *Server) ListAllProducts(ctx context.Context, _ *inventoryv1.ListAllProductsRequest) (*inventoryv1.ProductsResponse, error) {
	return &inventoryv1.ProductsResponse{Products: toProtos(s.service.ListAllProducts(ctx))}, nil
}

func (s *Server) SearchByCategory(ctx context.Context, req *inventoryv1.SearchByCategoryRequest) (*inventoryv1.ProductsResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	return &inventoryv1.ProductsResponse{Products: toProtos(s.service.SearchByCategory(ctx, category))}, nil
}

func (s *Server) UpdateProduct(ctx context.Context, req *inventoryv1.UpdateProductRequest) (*inventoryv1.ProductResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	p, err := s.service.UpdateProduct(ctx, req.Id, service.ProductPayload{Name: req.Name, Quantity: req.Quantity, Category: category})
	if err != nil {
		return nil, s.toStatus(ctx, err, "UpdateProduct")
	}
	return &inventoryv1.ProductResponse{Product: toProto(p)}, nil
}

func (s *Server) RemoveProduct(ctx context.Context, req *inventoryv1.RemoveProductRequest) (*inventoryv1.ProductResponse, error) {
	p, err := s.service.RemoveProduct(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err, "RemoveProduct")
	}
	return &inventoryv1.ProductResponse{Product: toProto(p)}, nil
}

func (s *Server) GetStock(ctx context.Context, req *inventoryv1.GetStockRequest) (*inventoryv1.GetStockResponse, error) {
	quantity, err := s.service.GetStock(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err, "GetStock")
	}
	return &inventoryv1.GetStockResponse{Id: req.Id, Quantity: quantity}, nil
}

func (s *Server) AddQuantity(ctx context.Context, req *inventoryv1.StockRequest) (*inventoryv1.ProductResponse, error) {
	p, err := s.service.AddQuantity(ctx, req.Id, service.StockPayload{Amount: req.Amount})
	if err != nil {
		return nil, s.toStatus(ctx, err, "AddQuantity")
	}
	return &inventoryv1.ProductResponse{Product: toProto(p)}, nil
}

func (s *Server) OffloadQuantity(ctx context.Context, req *inventoryv1.StockRequest) (*inventoryv1.ProductResponse, error) {
	p, err := s.service.OffloadQuantity(ctx, req.Id, service.StockPayload{Amount: req.Amount})
	if err != nil {
		return nil, s.toStatus(ctx, err, "OffloadQuantity")
	}
	return &inventoryv1.ProductResponse{Product: toProto(p)}, nil
}

func (s *Server) ClearAllProducts(ctx context.Context, _ *inventoryv1.ClearAllProductsRequest) (*inventoryv1.ClearAllProductsResponse, error) {
	if err := s.service.ClearAllProducts(ctx); err != nil {
		return nil, s.toStatus(ctx, err, "ClearAllProducts")
	}
	return &inventoryv1.ClearAllProductsResponse{}, nil
}

func parseCategory(raw string) (store.Category, error) {
	category, err := store.ParseCategory(raw)
	if err != nil {
		return "", status.Errorf(codes.InvalidArgument, "invalid category: %v", err)
	}
	return category, nil
}

// toStatus converts a service error into a gRPC status error.
func (s *Server) toStatus(ctx context.Context, err error, method string) error {
	kind, ok := perrors.KindOf(err)
	if !ok {
		s.logger.ErrorContext(ctx, "service call failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}
	switch kind {
	case perrors.KindNotFound:
		return status.Error(codes.NotFound, perrors.Message(err))
	case perrors.KindInvalidOperation:
		return status.Error(codes.FailedPrecondition, perrors.Message(err))
	default:
		return status.Error(codes.Internal, perrors.Message(err))
	}
}

func toProto(p *service.ProductDto) *inventoryv1.Product {
	product := &inventoryv1.Product{
		Id:        p.ID,
		Name:      p.Name,
		Category:  p.Category.String(),
		Quantity:  p.Quantity,
		CreatedAt: timestamppb.New(p.CreatedAt),
	}
	if p.UpdatedAt != nil {
		product.UpdatedAt = timestamppb.New(*p.UpdatedAt)
	}
	return product
}

func toProtos(products []service.ProductDto) []*inventoryv1.Product {
	result := make([]*inventoryv1.Product, len(products))
	for i := range products {
		result[i] = toProto(&products[i])
	}
	return result
}
