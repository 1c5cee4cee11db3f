package graph

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/ferdiebergado/deepthoughts/internal/middleware"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/message"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/web"
)

// Request is a GraphQL request as sent by clients. Token lets clients
// authenticate through the body instead of the Authorization header.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
	Extensions    map[string]any `json:"extensions,omitempty"`
	Token         string         `json:"token,omitempty"`
}

func (r Request) BodyToken() string {
	return r.Token
}

// DecodeRequest stores the Request in the request context. GET requests are
// read from the query string, urlencoded forms from the body and anything else
// is decoded as JSON.
func DecodeRequest(maxBodyBytes int64) func(http.Handler) http.Handler {
	decodeJSON := middleware.DecodePayload[Request](maxBodyBytes)

	return func(next http.Handler) http.Handler {
		jsonNext := decodeJSON(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				req Request
				err error
			)

			switch {
			case r.Method == http.MethodGet:
				req, err = requestFromValues(r.URL.Query())
				req.Token = ""
			case isForm(r):
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
				if err = r.ParseForm(); err == nil {
					req, err = requestFromValues(r.PostForm)
				}
			default:
				jsonNext.ServeHTTP(w, r)
				return
			}

			if err != nil {
				web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
				return
			}

			ctx := web.NewContextWithParams(r.Context(), req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(web.HeaderContentType))
	return err == nil && mediaType == web.MimeForm
}

func requestFromValues(values url.Values) (Request, error) {
	req := Request{
		Query:         values.Get("query"),
		OperationName: values.Get("operationName"),
		Token:         values.Get("token"),
	}

	if vars := values.Get("variables"); vars != "" {
		if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
			return Request{}, fmt.Errorf("decode variables: %w", err)
		}
	}

	if ext := values.Get("extensions"); ext != "" {
		if err := json.Unmarshal([]byte(ext), &req.Extensions); err != nil {
			return Request{}, fmt.Errorf("decode extensions: %w", err)
		}
	}

	return req, nil
}
