package middleware

import "net/http"

// InjectWriter wraps the response writer so later middlewares can read the
// status code and the number of bytes written.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := NewSafeResponseWriter(r.Context(), w)
		next.ServeHTTP(writer, r)
	})
}
