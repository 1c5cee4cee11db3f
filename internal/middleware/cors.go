package middleware

import (
	"net/http"

	"github.com/ferdiebergado/deepthoughts/internal/config"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderVary         = "Vary"

	AllowedMethods = "GET, POST, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization"

	wildcard = "*"
)

// CORS sets the cross-origin headers for the configured origin and answers
// preflight requests. Requests from other origins pass through without the
// headers.
func CORS(cfg *config.CORS) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allowed, ok := allowOrigin(cfg.AllowedOrigin, origin); ok {
				w.Header().Set(HeaderAllowOrigin, allowed)
				w.Header().Set(HeaderAllowMethods, AllowedMethods)
				w.Header().Set(HeaderAllowHeaders, AllowedHeaders)
				if allowed != wildcard {
					w.Header().Add(HeaderVary, "Origin")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allowOrigin(configured, origin string) (string, bool) {
	switch {
	case configured == wildcard:
		return wildcard, true
	case origin != "" && origin == configured:
		return origin, true
	default:
		return "", false
	}
}
