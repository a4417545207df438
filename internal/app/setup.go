// Package app contains the application setup for the inventory service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/bakery-inventory/internal/config"
	"github.com/abgdnv/bakery-inventory/internal/events"
	"github.com/abgdnv/bakery-inventory/internal/service"
	"github.com/abgdnv/bakery-inventory/internal/store"
	grpcImpl "github.com/abgdnv/bakery-inventory/internal/transport/grpc"
	"github.com/abgdnv/bakery-inventory/internal/transport/rest"
	inventoryv1 "github.com/abgdnv/bakery-inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/bakery-inventory/pkg/auth"
	pkgconfig "github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/abgdnv/bakery-inventory/pkg/messaging"
	"github.com/abgdnv/bakery-inventory/pkg/nats"
	"github.com/abgdnv/bakery-inventory/pkg/server"
	"github.com/abgdnv/bakery-inventory/pkg/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/grpc"
)

// ServiceName identifies the service in telemetry and configuration.
const ServiceName = "inventory"

type Dependencies struct {
	ProductService service.ProductService
	MetricsHandler http.Handler
	MeterProvider  *metricsdk.MeterProvider
	// Verifier guards the API when set. A nil Verifier leaves it open.
	Verifier auth.Verifier
	Logger   *slog.Logger
}

// SetupDependencies loads the last snapshot from substrate and builds the inventory service on top of it.
// Metrics go to a dedicated Prometheus registry served by MetricsHandler.
func SetupDependencies(ctx context.Context, substrate store.Substrate, publisher messaging.Publisher, logger *slog.Logger) (*Dependencies, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mp, err := telemetry.NewMeterProvider(ServiceName, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create meter provider: %w", err)
	}

	shutdownMeter := func() {
		if err := mp.Shutdown(ctx); err != nil {
			logger.Error("Failed to shut down meter provider", "error", err)
		}
	}

	st, err := store.Open(ctx, substrate)
	if err != nil {
		shutdownMeter()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	logger.Info("Inventory loaded", "products", st.Len())

	pService, err := service.NewService(st, substrate, publisher, logger, service.WithMeterProvider(mp))
	if err != nil {
		shutdownMeter()
		return nil, fmt.Errorf("failed to create inventory service: %w", err)
	}

	return &Dependencies{
		ProductService: pService,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		MeterProvider:  mp,
		Logger:         logger,
	}, nil
}

// SetupPublisher connects to NATS and makes sure the inventory stream exists.
// With NATS disabled it returns a publisher that drops every event. closeFn is never nil.
func SetupPublisher(ctx context.Context, cfg pkgconfig.NATSConfig, logger *slog.Logger) (publisher messaging.Publisher, closeFn func(), err error) {
	if !cfg.Enabled {
		logger.Info("NATS is disabled, events will not be published")
		return messaging.NopPublisher{}, func() {}, nil
	}
	nc, err := nats.NewClient(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}
	if _, err := nats.EnsureStream(ctx, js, cfg.Stream, events.StreamSubjects); err != nil {
		nc.Close()
		return nil, nil, err
	}
	logger.Info("Connected to NATS", "url", nc.ConnectedUrlRedacted(), "stream", cfg.Stream)
	return nats.NewNatsPublisher(js), func() {
		if err := nc.Drain(); err != nil {
			logger.Error("Failed to drain NATS connection", "error", err)
		}
	}, nil
}

// SetupVerifier builds the bearer-token verifier, or returns nil when auth is disabled.
func SetupVerifier(ctx context.Context, cfg pkgconfig.AuthConfig, logger *slog.Logger) (auth.Verifier, error) {
	if !cfg.Enabled {
		logger.Warn("Auth is disabled, the API accepts anonymous calls")
		return nil, nil
	}
	verifier, err := auth.NewJWTVerifier(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Auth enabled", "issuer", cfg.Issuer, "client_id", cfg.ClientID)
	return verifier, nil
}

// SetupHttpHandler initializes the routes and middleware of the inventory HTTP API.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes of the inventory service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	inventoryHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	var middlewares []func(http.Handler) http.Handler
	if deps.Verifier != nil {
		middlewares = append(middlewares, auth.Middleware(deps.Verifier))
	}
	inventoryHandler.RegisterRoutes(mux, middlewares...)
	mux.Handle("/metrics", deps.MetricsHandler)
}

// SetupHttpServer creates and configures the HTTP server of the inventory service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return server.NewHTTPServer(cfg.HTTPServer, ServiceName, SetupHttpHandler(deps))
}

// SetupGrpcServer initializes the gRPC server of the inventory service, with reflection if enabled.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) *grpc.Server {
	registerFuncs := []server.RegistrationFunc{func(s *grpc.Server) {
		inventoryv1.RegisterInventoryServiceServer(s, grpcImpl.NewServer(deps.ProductService, deps.Logger))
	}}
	if reflectionEnabled {
		registerFuncs = append(registerFuncs, server.Reflection)
	}
	var interceptors []grpc.UnaryServerInterceptor
	if deps.Verifier != nil {
		interceptors = append(interceptors, auth.UnaryServerInterceptor(deps.Verifier))
	}
	return server.NewGRPCServerWithInterceptors(deps.Logger, interceptors, registerFuncs...)
}
