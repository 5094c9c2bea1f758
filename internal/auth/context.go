package auth

import (
	"context"
)

type contextKey int

const claimsKey contextKey = 0

// WithClaims attaches verified claims to the request context. The key is
// unexported so handlers cannot be fed a caller-supplied identity.
func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok && claims.Email != ""
}

// EmailFromContext returns the verified email or "" when the request never
// passed the authenticate middleware.
func EmailFromContext(ctx context.Context) string {
	claims, _ := ctx.Value(claimsKey).(Claims)
	return claims.Email
}
