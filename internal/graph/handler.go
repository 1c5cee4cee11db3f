package graph

import (
	"net/http"
	"strings"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"github.com/ferdiebergado/deepthoughts/internal/config"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/message"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/web"
	"github.com/ferdiebergado/deepthoughts/internal/platform/metrics"
)

const msgMissingQuery = "Must provide query string."

// Handler executes GraphQL requests decoded by DecodeRequest. Execution
// errors are reported in the "errors" member with status 200.
type Handler struct {
	schema   graphql.Schema
	allowGET bool
}

func NewHandler(schema graphql.Schema, cfg *config.GraphQL) *Handler {
	return &Handler{
		schema:   schema,
		allowGET: cfg.AllowGET,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[Request](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeErrors(w, http.StatusBadRequest, msgMissingQuery)
		return
	}

	if r.Method == http.MethodGet && (!h.allowGET || isMutation(req)) {
		w.Header().Set("Allow", http.MethodPost)
		writeErrors(w, http.StatusMethodNotAllowed, message.UnsupportedMethod)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	status := metrics.StatusSuccess
	if result.HasErrors() {
		status = metrics.StatusFailure
	}
	metrics.GraphQLRequests.WithLabelValues(status).Inc()

	response.JSON(w, http.StatusOK, result)
}

// isMutation reports whether the operation selected by the request is a
// mutation. Unparsable documents are left for the executor to reject.
func isMutation(req Request) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return false
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}

		if req.OperationName == "" || (op.Name != nil && op.Name.Value == req.OperationName) {
			return op.Operation == ast.OperationTypeMutation
		}
	}
	return false
}

func writeErrors(w http.ResponseWriter, status int, msg string) {
	response.JSON(w, status, &graphql.Result{
		Errors: []gqlerrors.FormattedError{{Message: msg}},
	})
}
