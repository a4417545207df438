package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const subjectContextKey = contextKey("subject")

// Middleware verifies the bearer token in the Authorization header and stores its subject
// in the request context. Requests without a valid token get 401 Unauthorized.
func Middleware(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			subject, err := verifySubject(r.Context(), verifier, tokenString)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}

// UnaryServerInterceptor is the gRPC counterpart of Middleware.
// The token is read from the "authorization" metadata.
func UnaryServerInterceptor(verifier Verifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization metadata is required")
		}
		tokenString, ok := strings.CutPrefix(values[0], "Bearer ")
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "bearer token is required")
		}

		subject, err := verifySubject(ctx, verifier, tokenString)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return handler(WithSubject(ctx, subject), req)
	}
}

func verifySubject(ctx context.Context, verifier Verifier, tokenString string) (string, error) {
	token, err := verifier.Verify(ctx, tokenString)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	subject, ok := token.Subject()
	if !ok {
		return "", errors.New("no claim `sub`")
	}
	return subject, nil
}

// WithSubject returns a copy of ctx carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// SubjectFromContext returns the authenticated subject, or "" for anonymous calls.
func SubjectFromContext(ctx context.Context) string {
	if subject, ok := ctx.Value(subjectContextKey).(string); ok {
		return subject
	}
	return ""
}
