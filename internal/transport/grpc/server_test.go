package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/abgdnv/bakery-inventory/internal/service"
	"github.com/abgdnv/bakery-inventory/internal/store"
	"github.com/abgdnv/bakery-inventory/internal/substrate/memory"
	inventoryv1 "github.com/abgdnv/bakery-inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/bakery-inventory/pkg/messaging"
	"github.com/abgdnv/bakery-inventory/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// brokenSubstrate accepts loads and rejects every save.
type brokenSubstrate struct {
	*memory.Substrate
}

func (brokenSubstrate) Save(context.Context, store.Snapshot) error {
	return errors.New("connection reset")
}

func setupClient(t *testing.T, substrate store.Substrate) inventoryv1.InventoryServiceClient {
	t.Helper()
	return inventoryv1.NewInventoryServiceClient(setupConn(t, substrate))
}

func setupConn(t *testing.T, substrate store.Substrate, extra ...server.RegistrationFunc) *grpc.ClientConn {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.NewService(store.New(), substrate, messaging.NopPublisher{}, logger)
	require.NoError(t, err)

	lis := bufconn.Listen(1024 * 1024)
	register := func(s *grpc.Server) {
		inventoryv1.RegisterInventoryServiceServer(s, NewServer(svc, logger))
	}
	grpcServer := server.NewGRPCServer(logger, append([]server.RegistrationFunc{register}, extra...)...)
	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough://bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		grpcServer.Stop()
		_ = lis.Close()
	})
	return conn
}

func requireCode(t *testing.T, err error, code codes.Code) *status.Status {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, code, st.Code())
	return st
}

func TestServer_WorkedExample(t *testing.T) {
	// given
	client := setupClient(t, memory.New())
	ctx := context.Background()

	// when
	added, err := client.AddProduct(ctx, &inventoryv1.AddProductRequest{Name: "Croissant", Category: "bakery", Quantity: 10})

	// then
	require.NoError(t, err)
	assert.Equal(t, uint64(1), added.GetProduct().GetId())
	assert.Equal(t, "Bakery", added.Product.Category)
	assert.Nil(t, added.Product.UpdatedAt)

	res, err := client.AddQuantity(ctx, &inventoryv1.StockRequest{Id: 1, Amount: 5})
	require.NoError(t, err)
	assert.Equal(t, uint32(15), res.Product.Quantity)
	assert.NotNil(t, res.Product.UpdatedAt)

	_, err = client.OffloadQuantity(ctx, &inventoryv1.StockRequest{Id: 1, Amount: 20})
	st := requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "Cannot offload more than available quantity. Available: 15, Trying to offload: 20", st.Message())

	res, err = client.OffloadQuantity(ctx, &inventoryv1.StockRequest{Id: 1, Amount: 15})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), res.Product.Quantity)

	stock, err := client.GetStock(ctx, &inventoryv1.GetStockRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stock.Id)
	assert.Equal(t, uint32(0), stock.Quantity)
}

func TestServer_ListSearchRemoveClear(t *testing.T) {
	// given
	client := setupClient(t, memory.New())
	ctx := context.Background()
	for _, req := range []*inventoryv1.AddProductRequest{
		{Name: "Red Velvet", Category: "Cake", Quantity: 2},
		{Name: "Shortbread", Category: "Cookies", Quantity: 30},
		{Name: "Rye", Category: "Bakery", Quantity: 4},
	} {
		_, err := client.AddProduct(ctx, req)
		require.NoError(t, err)
	}

	// when
	all, err := client.ListAllProducts(ctx, &inventoryv1.ListAllProductsRequest{})

	// then
	require.NoError(t, err)
	require.Len(t, all.Products, 3)
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{all.Products[0].Id, all.Products[1].Id, all.Products[2].Id})

	cookies, err := client.SearchByCategory(ctx, &inventoryv1.SearchByCategoryRequest{Category: "COOKIES"})
	require.NoError(t, err)
	require.Len(t, cookies.Products, 1)
	assert.Equal(t, "Shortbread", cookies.Products[0].Name)

	removed, err := client.RemoveProduct(ctx, &inventoryv1.RemoveProductRequest{Id: 2})
	require.NoError(t, err)
	assert.Equal(t, "Shortbread", removed.Product.Name)

	_, err = client.GetProduct(ctx, &inventoryv1.GetProductRequest{Id: 2})
	st := requireCode(t, err, codes.NotFound)
	assert.Equal(t, "A product with id=2 was not found", st.Message())

	_, err = client.ClearAllProducts(ctx, &inventoryv1.ClearAllProductsRequest{})
	require.NoError(t, err)
	empty, err := client.ListAllProducts(ctx, &inventoryv1.ListAllProductsRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Products)

	next, err := client.AddProduct(ctx, &inventoryv1.AddProductRequest{Name: "Bagel", Category: "Bakery", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), next.Product.Id)
}

func TestServer_ErrorCodes(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		name string
		call func(c inventoryv1.InventoryServiceClient) error
		code codes.Code
	}{
		{
			name: "unknown category on add",
			call: func(c inventoryv1.InventoryServiceClient) error {
				_, err := c.AddProduct(ctx, &inventoryv1.AddProductRequest{Name: "Pie", Category: "Pastry", Quantity: 1})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown category on search",
			call: func(c inventoryv1.InventoryServiceClient) error {
				_, err := c.SearchByCategory(ctx, &inventoryv1.SearchByCategoryRequest{Category: ""})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "blank name",
			call: func(c inventoryv1.InventoryServiceClient) error {
				_, err := c.AddProduct(ctx, &inventoryv1.AddProductRequest{Name: " ", Category: "Cake", Quantity: 1})
				return err
			},
			code: codes.FailedPrecondition,
		},
		{
			name: "update missing product",
			call: func(c inventoryv1.InventoryServiceClient) error {
				_, err := c.UpdateProduct(ctx, &inventoryv1.UpdateProductRequest{Id: 5, Name: "Pie", Category: "Cake", Quantity: 1})
				return err
			},
			code: codes.NotFound,
		},
		{
			name: "zero amount",
			call: func(c inventoryv1.InventoryServiceClient) error {
				_, err := c.AddQuantity(ctx, &inventoryv1.StockRequest{Id: 1})
				return err
			},
			code: codes.FailedPrecondition,
		},
		{
			name: "missing stock",
			call: func(c inventoryv1.InventoryServiceClient) error {
				_, err := c.GetStock(ctx, &inventoryv1.GetStockRequest{Id: 77})
				return err
			},
			code: codes.NotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			client := setupClient(t, memory.New())

			// when
			err := tc.call(client)

			// then
			requireCode(t, err, tc.code)
		})
	}
}

func TestServer_PersistenceFailureIsInternal(t *testing.T) {
	// given
	client := setupClient(t, brokenSubstrate{Substrate: memory.New()})

	// when
	_, err := client.AddProduct(context.Background(), &inventoryv1.AddProductRequest{Name: "Pie", Category: "Cake", Quantity: 1})

	// then
	st := requireCode(t, err, codes.Internal)
	assert.Equal(t, "internal server error", st.Message())
}

func TestServer_RequestIDHeader(t *testing.T) {
	// given
	client := setupClient(t, memory.New())
	ctx := metadata.AppendToOutgoingContext(context.Background(), server.RequestIDMetadataKey, "req-123")
	var header metadata.MD

	// when
	_, err := client.ListAllProducts(ctx, &inventoryv1.ListAllProductsRequest{}, grpc.Header(&header))

	// then
	require.NoError(t, err)
	assert.Equal(t, []string{"req-123"}, header.Get(server.RequestIDMetadataKey))
}

func TestProduct_ProtoWireFormat(t *testing.T) {
	created := time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		product     *inventoryv1.Product
		wantUpdated bool
	}{
		{
			name: "Success - never modified",
			product: &inventoryv1.Product{
				Id:        7,
				Name:      "Croissant",
				Category:  "Bakery",
				Quantity:  10,
				CreatedAt: timestamppb.New(created),
			},
			wantUpdated: false,
		},
		{
			name: "Success - modified",
			product: &inventoryv1.Product{
				Id:        7,
				Name:      "Croissant",
				Category:  "Bakery",
				Quantity:  15,
				CreatedAt: timestamppb.New(created),
				UpdatedAt: timestamppb.New(created.Add(time.Hour)),
			},
			wantUpdated: true,
		},
	}

	codec := encoding.GetCodecV2(grpcproto.Name)
	require.NotNil(t, codec)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			data, err := codec.Marshal(tc.product)
			require.NoError(t, err)
			defer data.Free()
			var got inventoryv1.Product
			err = codec.Unmarshal(data, &got)

			// then
			require.NoError(t, err)
			assert.Equal(t, []byte{0x08, 0x07}, data.Materialize()[:2])
			assert.True(t, proto.Equal(tc.product, &got))
			assert.Equal(t, created, got.GetCreatedAt().AsTime())
			assert.Equal(t, tc.wantUpdated, got.UpdatedAt != nil)
		})
	}
}

func TestServer_Reflection(t *testing.T) {
	// given
	conn := setupConn(t, memory.New(), server.Reflection)
	stream, err := grpc_reflection_v1.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)

	// when
	err = stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_ListServices{},
	})
	require.NoError(t, err)
	listed, err := stream.Recv()
	require.NoError(t, err)

	// then
	var names []string
	for _, svc := range listed.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, "inventory.v1.InventoryService")

	// when
	err = stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "inventory.v1.InventoryService",
		},
	})
	require.NoError(t, err)
	file, err := stream.Recv()
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())

	// then
	raw := file.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, raw)
	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(raw[0], &fd))
	assert.Equal(t, "inventory/v1/inventory.proto", fd.GetName())
	require.Len(t, fd.GetService(), 1)
	assert.Len(t, fd.GetService()[0].GetMethod(), 10)
}
