package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// RequireUser returns the identity of the caller, or ErrNotAuthenticated when
// the request is anonymous.
func RequireUser(ctx context.Context) (*jwt.Claims, error) {
	claims, ok := UserFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return claims, nil
}
