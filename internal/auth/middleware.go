package auth

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
	"github.com/ferdiebergado/deepthoughts/internal/platform/metrics"
)

type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// Authenticate attaches the identity carried by a valid request token to the
// request context. It never rejects a request: a missing or invalid token
// leaves the request anonymous.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, source := TokenFromRequest(r)
			if token == "" {
				metrics.RequestAuthentications.WithLabelValues(metrics.OutcomeAnonymous).Inc()
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				metrics.RequestAuthentications.WithLabelValues(metrics.OutcomeInvalid).Inc()
				slog.Warn("invalid token", "source", source, "reason", err)
				next.ServeHTTP(w, r)
				return
			}

			metrics.RequestAuthentications.WithLabelValues(metrics.OutcomeAuthenticated).Inc()
			ctx := ContextWithUser(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
