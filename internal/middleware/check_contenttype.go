package middleware

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/ferdiebergado/deepthoughts/internal/pkg/message"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/web"
)

// CheckContentType rejects requests with a body that is not JSON.
// Parameters such as charset are allowed.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.Fail(w, http.StatusUnsupportedMediaType, fmt.Errorf("invalid content-type: %q", contentType), message.InvalidInput, nil)
			return
		}

		slog.Debug("Content-Type is valid.", "content_type", contentType)
		next.ServeHTTP(w, r)
	})
}
