package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abgdnv/bakery-inventory/internal/service"
	"github.com/abgdnv/bakery-inventory/internal/store"
	"github.com/abgdnv/bakery-inventory/internal/substrate/memory"
	"github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/abgdnv/bakery-inventory/pkg/messaging"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticVerifier accepts a single token.
type staticVerifier struct {
	token string
}

func (v staticVerifier) Verify(_ context.Context, tokenString string) (jwt.Token, error) {
	if tokenString != v.token {
		return nil, errors.New("signature mismatch")
	}
	return jwt.NewBuilder().Subject("baker-7").Build()
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps, err := SetupDependencies(context.Background(), memory.New(), messaging.NopPublisher{}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.MeterProvider.Shutdown(context.Background()) })
	return SetupHttpHandler(deps)
}

func TestSetupHttpHandler_Routes(t *testing.T) {
	// given
	handler := newTestHandler(t)

	// when
	add := httptest.NewRecorder()
	handler.ServeHTTP(add, httptest.NewRequest(http.MethodPost, "/api/v1/products",
		strings.NewReader(`{"name":"Croissant","quantity":10,"category":"Bakery"}`)))
	health := httptest.NewRecorder()
	handler.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	metrics := httptest.NewRecorder()
	handler.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// then
	assert.Equal(t, http.StatusCreated, add.Code)
	assert.NotEmpty(t, add.Header().Get("X-Request-Id"))
	assert.Equal(t, http.StatusOK, health.Code)
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "inventory_operations")
	assert.Contains(t, metrics.Body.String(), "inventory_products")
	assert.Contains(t, metrics.Body.String(), "go_goroutines")
}

func TestSetupDependencies_LoadsSnapshot(t *testing.T) {
	// given
	ctx := context.Background()
	sub := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	first, err := SetupDependencies(ctx, sub, messaging.NopPublisher{}, logger)
	require.NoError(t, err)
	_, err = first.ProductService.AddProduct(ctx, serviceFixturePayload())
	require.NoError(t, err)

	// when
	second, err := SetupDependencies(ctx, sub, messaging.NopPublisher{}, logger)

	// then
	require.NoError(t, err)
	products := second.ProductService.ListAllProducts(ctx)
	require.Len(t, products, 1)
	assert.Equal(t, "Croissant", products[0].Name)
}

// failingSubstrate cannot be read.
type failingSubstrate struct {
	*memory.Substrate
}

var errDiskGone = errors.New("disk gone")

func (failingSubstrate) Load(context.Context) (store.Snapshot, error) {
	return store.Snapshot{}, errDiskGone
}

func TestSetupDependencies_OpenStoreFails(t *testing.T) {
	// given
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// when
	deps, err := SetupDependencies(context.Background(), failingSubstrate{memory.New()}, messaging.NopPublisher{}, logger)

	// then
	assert.Nil(t, deps)
	require.ErrorIs(t, err, errDiskGone)
	assert.ErrorContains(t, err, "failed to open store: failed to load snapshot: disk gone")
}

func TestSetupPublisher_Disabled(t *testing.T) {
	// when
	publisher, closeFn, err := SetupPublisher(context.Background(), config.NATSConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// then
	require.NoError(t, err)
	assert.IsType(t, messaging.NopPublisher{}, publisher)
	assert.NotPanics(t, closeFn)
}

func serviceFixturePayload() service.ProductPayload {
	return service.ProductPayload{Name: "Croissant", Quantity: 10, Category: store.Bakery}
}

func TestSetupHttpHandler_Auth(t *testing.T) {
	// given
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps, err := SetupDependencies(context.Background(), memory.New(), messaging.NopPublisher{}, logger)
	require.NoError(t, err)
	deps.Verifier = staticVerifier{token: "let-me-in"}
	handler := SetupHttpHandler(deps)

	testCases := []struct {
		name         string
		path         string
		authHeader   string
		expectedCode int
	}{
		{name: "anonymous api call", path: "/api/v1/products", expectedCode: http.StatusUnauthorized},
		{name: "wrong token", path: "/api/v1/products", authHeader: "Bearer guess", expectedCode: http.StatusUnauthorized},
		{name: "valid token", path: "/api/v1/products", authHeader: "Bearer let-me-in", expectedCode: http.StatusOK},
		{name: "health stays open", path: "/healthz", expectedCode: http.StatusOK},
		{name: "metrics stay open", path: "/metrics", expectedCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()

			// when
			handler.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func TestSetupVerifier_Disabled(t *testing.T) {
	// when
	verifier, err := SetupVerifier(context.Background(), config.AuthConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// then
	require.NoError(t, err)
	assert.Nil(t, verifier)
}
