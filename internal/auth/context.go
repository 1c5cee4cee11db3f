package auth

import (
	"context"

	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
)

type ctxKey int

const userCtxKey ctxKey = iota + 1

// ContextWithUser returns a new context carrying the identity of the caller.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func ContextWithUser(baseCtx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(baseCtx, userCtxKey, claims)
}

// UserFromContext extracts the identity attached by Authenticate.
func UserFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(userCtxKey).(*jwt.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
