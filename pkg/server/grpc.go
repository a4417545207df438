package server

import (
	"context"
	"log/slog"

	"github.com/abgdnv/bakery-inventory/pkg/logger"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// RequestIDMetadataKey is the metadata key carrying the request id.
const RequestIDMetadataKey = "x-request-id"

// RegistrationFunc registers a grpc service with the server.
type RegistrationFunc func(*grpc.Server)

// NewGRPCServer creates a gRPC server with tracing, request ids, call logging and panic recovery,
// and registers the given services.
func NewGRPCServer(log *slog.Logger, registerFunc ...RegistrationFunc) *grpc.Server {
	return NewGRPCServerWithInterceptors(log, nil, registerFunc...)
}

// NewGRPCServerWithInterceptors is NewGRPCServer with extra unary interceptors
// that run after the built-in ones.
func NewGRPCServerWithInterceptors(log *slog.Logger, extra []grpc.UnaryServerInterceptor, registerFunc ...RegistrationFunc) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		UnaryRequestIDInterceptor,
		logging.UnaryServerInterceptor(InterceptorLogger(log), logging.WithLogOnEvents(logging.FinishCall)),
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			log.ErrorContext(ctx, "Panic recovered", "panic", p)
			return status.Error(codes.Internal, "internal server error")
		})),
	}
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(append(interceptors, extra...)...),
	)

	for _, regFunc := range registerFunc {
		regFunc(grpcServer)
	}

	return grpcServer
}

// Reflection registers the gRPC reflection service, so tools like grpcurl can list and call the API.
func Reflection(s *grpc.Server) {
	reflection.Register(s)
}

// InterceptorLogger adapts slog to the go-grpc-middleware logging interface.
func InterceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// UnaryRequestIDInterceptor takes the request id from incoming metadata, or generates one,
// and stores it in the context for logging.
func UnaryRequestIDInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	reqID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDMetadataKey); len(values) > 0 {
			reqID = values[0]
		}
	}
	if reqID == "" {
		reqID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDMetadataKey, reqID))
	return handler(logger.WithRequestID(ctx, reqID), req)
}
