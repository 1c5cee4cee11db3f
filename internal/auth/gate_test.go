package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdiebergado/deepthoughts/internal/auth"
	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
)

func TestRequireUser(t *testing.T) {
	t.Parallel()

	claims := &jwt.Claims{ID: "1", Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name       string
		ctx        context.Context
		wantClaims *jwt.Claims
		wantErr    error
	}{
		{"Anonymous", context.Background(), nil, auth.ErrNotAuthenticated},
		{"Nil identity", auth.ContextWithUser(context.Background(), nil), nil, auth.ErrNotAuthenticated},
		{"Authenticated", auth.ContextWithUser(context.Background(), claims), claims, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := auth.RequireUser(tt.ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("auth.RequireUser() = %v, want: %v", err, tt.wantErr)
			}

			if got != tt.wantClaims {
				t.Errorf("auth.RequireUser() = %+v, want: %+v", got, tt.wantClaims)
			}
		})
	}
}

func TestUserFromContext(t *testing.T) {
	t.Parallel()

	if _, ok := auth.UserFromContext(context.Background()); ok {
		t.Error("auth.UserFromContext(empty) ok = true, want: false")
	}

	claims := &jwt.Claims{ID: "1"}
	got, ok := auth.UserFromContext(auth.ContextWithUser(context.Background(), claims))
	if !ok || got != claims {
		t.Errorf("auth.UserFromContext() = %v, %v, want: %v, true", got, ok, claims)
	}
}
