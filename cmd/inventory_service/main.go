// Package main runs the bakery inventory service: the REST and gRPC APIs over a durable product store.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/abgdnv/bakery-inventory/internal/app"
	"github.com/abgdnv/bakery-inventory/internal/config"
	"github.com/abgdnv/bakery-inventory/internal/substrate"
	"github.com/abgdnv/bakery-inventory/pkg/bootstrap"
	"github.com/abgdnv/bakery-inventory/pkg/config/configloader"
	"github.com/abgdnv/bakery-inventory/pkg/telemetry"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run loads the configuration, opens the storage and starts the HTTP, gRPC and pprof servers.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](app.ServiceName, configloader.WithDefaults(config.Defaults()))
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log)
	slog.SetDefault(logger)

	if cfg.Telemetry.Enabled {
		tp, err := telemetry.NewTracerProvider(ctx, app.ServiceName, cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("failed to create tracer provider: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Error("Failed to shut down tracer provider", "error", err)
			}
		}()
	}

	sub, err := substrate.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := sub.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	publisher, closePublisher, err := app.SetupPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		return fmt.Errorf("failed to set up event publisher: %w", err)
	}
	defer closePublisher()

	deps, err := app.SetupDependencies(ctx, sub, publisher, logger)
	if err != nil {
		return fmt.Errorf("failed to set up dependencies: %w", err)
	}
	defer func() {
		if err := deps.MeterProvider.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shut down meter provider", "error", err)
		}
	}()

	deps.Verifier, err = app.SetupVerifier(ctx, cfg.Auth, logger)
	if err != nil {
		return fmt.Errorf("failed to set up auth: %w", err)
	}

	httpServer, pprofServer, grpcServer := setupServers(deps, cfg)

	g, gCtx := errgroup.WithContext(ctx)
	serveHTTP(gCtx, g, logger, "HTTP", httpServer, cfg.Shutdown.Timeout)
	serveGRPC(gCtx, g, logger, ":"+cfg.GRPC.Port, grpcServer, cfg.Shutdown.Timeout)
	if cfg.PProf.Enabled {
		serveHTTP(gCtx, g, logger, "pprof", pprofServer, cfg.Shutdown.Timeout)
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}

// serveHTTP runs srv in g and shuts it down once ctx is cancelled.
func serveHTTP(ctx context.Context, g *errgroup.Group, logger *slog.Logger, name string, srv *http.Server, timeout time.Duration) {
	g.Go(func() error {
		logger.Info(name+" server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s server failed: %w", name, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down " + name + " server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// serveGRPC is serveHTTP for the gRPC server. In-flight calls get timeout to finish.
func serveGRPC(ctx context.Context, g *errgroup.Group, logger *slog.Logger, addr string, srv *grpc.Server, timeout time.Duration) {
	g.Go(func() error {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("failed to listen on gRPC port: %w", err)
		}
		logger.Info("gRPC server listening", slog.String("addr", addr))
		return srv.Serve(lis)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server...")
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
			return nil
		case <-time.After(timeout):
			logger.Warn("gRPC server graceful stop timed out, forcing stop")
			srv.Stop()
			return fmt.Errorf("grpc server graceful stop timed out")
		}
	})
}

// setupServers initializes the HTTP, pprof, and gRPC servers.
func setupServers(deps *app.Dependencies, cfg *config.Config) (*http.Server, *http.Server, *grpc.Server) {
	httpServer := app.SetupHttpServer(deps, cfg)
	grpcServer := app.SetupGrpcServer(deps, cfg.GRPC.ReflectionEnabled)
	pprofServer := &http.Server{
		Addr:              cfg.PProf.Addr,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout.ReadHeader,
	}
	return httpServer, pprofServer, grpcServer
}
