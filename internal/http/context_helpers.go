package httpx

import (
	"context"

	domainauth "github.com/srec-coin/coin-backend/internal/domain/auth"
)

// claimsKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type claimsKey struct{}

// SetClaimsInContext returns a child context carrying the verified token claims.
func SetClaimsInContext(ctx context.Context, claims domainauth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the verified claims and a boolean indicating presence.
// Absence means the request never passed the authentication gate.
func ClaimsFromContext(ctx context.Context) (domainauth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(domainauth.Claims)
	return claims, ok
}
