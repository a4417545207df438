// Package auth guards the inventory transports with OIDC bearer tokens.
package auth

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"golang.org/x/sync/singleflight"
)

type Verifier interface {
	Verify(ctx context.Context, tokenString string) (jwt.Token, error)
}

type keySnapshot struct {
	set       jwk.Set
	fetchedAt time.Time
}

// JWTVerifier checks signature, expiry, issuer and authorized party of a token
// against the identity provider's JWKS. The key set is refetched at most once
// per MinInterval and a stale set keeps serving while the provider is unreachable.
type JWTVerifier struct {
	cfg     config.AuthConfig
	keys    atomic.Pointer[keySnapshot]
	fetches singleflight.Group
}

// NewJWTVerifier fetches the key set once so a misconfigured provider is reported at startup.
func NewJWTVerifier(ctx context.Context, cfg config.AuthConfig) (*JWTVerifier, error) {
	v := &JWTVerifier{cfg: cfg}
	if _, err := v.keySet(ctx); err != nil {
		return nil, fmt.Errorf("initial JWKS fetch failed: %w", err)
	}
	return v, nil
}

func (v *JWTVerifier) keySet(ctx context.Context) (jwk.Set, error) {
	current := v.keys.Load()
	if current != nil && time.Since(current.fetchedAt) < v.cfg.MinInterval {
		return current.set, nil
	}

	set, err, _ := v.fetches.Do(v.cfg.JwksURL, func() (any, error) {
		fetched, err := jwk.Fetch(ctx, v.cfg.JwksURL)
		if err != nil {
			return nil, err
		}
		v.keys.Store(&keySnapshot{set: fetched, fetchedAt: time.Now()})
		return fetched, nil
	})
	if err != nil {
		if current != nil {
			return current.set, nil
		}
		return nil, fmt.Errorf("failed to fetch JWKS from %s: %w", v.cfg.JwksURL, err)
	}
	return set.(jwk.Set), nil
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (jwt.Token, error) {
	set, err := v.keySet(ctx)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Parse([]byte(tokenString),
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithClaimValue("azp", v.cfg.ClientID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	return token, nil
}
