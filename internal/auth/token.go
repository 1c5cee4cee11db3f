package auth

import (
	"mime"
	"net/http"
	"strings"

	"github.com/ferdiebergado/deepthoughts/internal/pkg/web"
)

const tokenParam = "token"

// Where a candidate token was found.
const (
	SourceNone   = ""
	SourceBody   = "body"
	SourceQuery  = "query"
	SourceHeader = "header"
)

// BodyTokener is implemented by decoded request payloads that may carry a
// token field.
type BodyTokener interface {
	BodyToken() string
}

// TokenFromRequest returns the first non-empty candidate token from the
// request body, the query string and the Authorization header, in that order.
func TokenFromRequest(r *http.Request) (token, source string) {
	if token := bodyToken(r); token != "" {
		return token, SourceBody
	}

	if token := r.URL.Query().Get(tokenParam); token != "" {
		return token, SourceQuery
	}

	if token := headerToken(r.Header.Get(web.HeaderAuthorization)); token != "" {
		return token, SourceHeader
	}

	return "", SourceNone
}

func bodyToken(r *http.Request) string {
	if payload, err := web.ParamsFromContext[BodyTokener](r.Context()); err == nil {
		if token := payload.BodyToken(); token != "" {
			return token
		}
	}

	if r.Method == http.MethodGet || r.Body == nil {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get(web.HeaderContentType))
	if err != nil || mediaType != web.MimeForm {
		return ""
	}

	if err := r.ParseForm(); err != nil {
		return ""
	}

	return r.PostForm.Get(tokenParam)
}

// headerToken takes the last space separated element of the header value, so
// both "Bearer <token>" and a bare "<token>" are accepted.
func headerToken(header string) string {
	parts := strings.Split(header, " ")
	return strings.TrimSpace(parts[len(parts)-1])
}
