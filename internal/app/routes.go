package app

import (
	"net/http"

	"github.com/ferdiebergado/deepthoughts/internal/auth"
	"github.com/ferdiebergado/deepthoughts/internal/graph"
	"github.com/ferdiebergado/deepthoughts/internal/middleware"
	"github.com/ferdiebergado/deepthoughts/internal/platform/metrics"
	"github.com/ferdiebergado/deepthoughts/internal/platform/router"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, maxBodyBytes int64) {
	r.Group("/auth", func(gr router.Router) {
		gr.Post("/signup", handler.Signup,
			middleware.DecodePayload[auth.SignupRequest](maxBodyBytes),
			middleware.ValidateInput[auth.SignupRequest](validator))
		gr.Post("/login", handler.Login,
			middleware.DecodePayload[auth.LoginRequest](maxBodyBytes),
			middleware.ValidateInput[auth.LoginRequest](validator))
	}, middleware.CheckContentType)
}

func mountUserRoutes(r router.Router, handler *user.Handler, authenticate router.Middleware) {
	r.Group("/users", func(gr router.Router) {
		gr.Get("/me", handler.Me)
	}, authenticate)
}

// The request is decoded before authentication so a token in the body can be
// found.
func mountGraphQLRoutes(r router.Router, path string, handler *graph.Handler, authenticate router.Middleware, maxBodyBytes int64) {
	decode := graph.DecodeRequest(maxBodyBytes)
	r.Post(path, handler.ServeHTTP, decode, authenticate)
	r.Get(path, handler.ServeHTTP, decode, authenticate)
	r.Options(path, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func mountMetricsRoutes(r router.Router) {
	r.Get("/metrics", metrics.Handler().ServeHTTP)
}
