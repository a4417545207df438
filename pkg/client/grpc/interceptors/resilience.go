package interceptors

import (
	"context"
	"log/slog"
	"slices"

	inventoryv1 "github.com/abgdnv/bakery-inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/retry"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// transientCodes are retried and count against the circuit breaker.
// Domain errors such as NotFound or FailedPrecondition are neither.
var transientCodes = []codes.Code{codes.Unavailable, codes.ResourceExhausted, codes.Aborted}

// readOnlyMethods are the only calls safe to send twice. A mutation that timed out
// may already have been applied, so it is never retried.
var readOnlyMethods = []string{
	inventoryv1.InventoryService_GetProduct_FullMethodName,
	inventoryv1.InventoryService_ListAllProducts_FullMethodName,
	inventoryv1.InventoryService_SearchByCategory_FullMethodName,
	inventoryv1.InventoryService_GetStock_FullMethodName,
}

func isReadOnly(_ context.Context, callMeta interceptors.CallMeta) bool {
	return slices.Contains(readOnlyMethods, callMeta.FullMethod())
}

func isTransient(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return true
	}
	return slices.Contains(transientCodes, st.Code())
}

// Chain returns the client interceptors inventoryctl dials with: a per-call timeout
// around the retries, which in turn wrap the circuit breaker.
func Chain(cfg config.ClientConfig, logger *slog.Logger) []grpc.UnaryClientInterceptor {
	return []grpc.UnaryClientInterceptor{
		UnaryClientTimeoutInterceptor(cfg.Timeout),
		NewRetryInterceptor(cfg.Retry),
		NewCircuitBreaker(cfg.Addr, cfg.CircuitBreaker, logger),
	}
}

// NewRetryInterceptor retries transient failures of read-only calls with exponential backoff.
// Mutations pass through and are attempted once.
func NewRetryInterceptor(cfg config.RetryConfig) grpc.UnaryClientInterceptor {
	return selector.UnaryClientInterceptor(
		retry.UnaryClientInterceptor(
			retry.WithCodes(transientCodes...),
			retry.WithMax(cfg.MaxAttempts),
			retry.WithBackoff(retry.BackoffExponential(cfg.InitialBackoff)),
		),
		selector.MatchFunc(isReadOnly),
	)
}

// NewCircuitBreaker fails calls fast with gobreaker.ErrOpenState while the
// inventory service at target keeps returning transient errors.
func NewCircuitBreaker(target string, cfg config.CircuitBreakerConfig, logger *slog.Logger) grpc.UnaryClientInterceptor {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:         "inventory@" + target,
		MaxRequests:  3,
		Timeout:      cfg.OpenTimeout,
		ReadyToTrip:  readyToTrip(cfg),
		IsSuccessful: func(err error) bool { return err == nil || !isTransient(err) },
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		_, err := cb.Execute(func() (struct{}, error) {
			return struct{}{}, invoker(ctx, method, req, reply, cc, opts...)
		})
		return err
	}
}

func readyToTrip(cfg config.CircuitBreakerConfig) func(gobreaker.Counts) bool {
	return func(counts gobreaker.Counts) bool {
		if counts.ConsecutiveFailures > cfg.ConsecutiveFailures {
			return true
		}
		total := counts.TotalSuccesses + counts.TotalFailures
		if total <= cfg.ConsecutiveFailures {
			return false
		}
		return float64(counts.TotalFailures)/float64(total)*100 > float64(cfg.ErrorRatePercent)
	}
}
