package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/deepthoughts/internal/auth"
	"github.com/ferdiebergado/deepthoughts/internal/config"
	"github.com/ferdiebergado/deepthoughts/internal/graph"
	"github.com/ferdiebergado/deepthoughts/internal/platform/db"
	"github.com/ferdiebergado/deepthoughts/internal/platform/hash"
	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
	"github.com/ferdiebergado/deepthoughts/internal/platform/router"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
	"github.com/ferdiebergado/deepthoughts/internal/thought"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []router.Middleware
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	signer          jwt.Signer
	validator       validation.Validator
	hasher          hash.Hasher
	router          router.Router
	txManager       db.TxManager
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() error {
	userModule := user.NewModule(a.db, a.txManager, auth.RequireUser)
	thoughtModule := thought.NewModule(a.db, a.validator)
	authModule := auth.NewModule(&auth.Provider{
		UserSvc:   userModule.Service(),
		Hasher:    a.hasher,
		Signer:    a.signer,
		Validator: a.validator,
	})

	graphModule, err := graph.NewModule(userModule.Service(), thoughtModule.Service(), authModule.Service(), a.config.GraphQL)
	if err != nil {
		return err
	}

	authenticate := auth.Authenticate(a.signer)
	maxBodyBytes := a.config.Server.MaxBodyBytes

	mountAuthRoutes(a.router, authModule.Handler(), a.validator, maxBodyBytes)
	mountUserRoutes(a.router, userModule.Handler(), authenticate)
	mountGraphQLRoutes(a.router, a.config.GraphQL.Path, graphModule.Handler(), authenticate, maxBodyBytes)
	mountMetricsRoutes(a.router)
	return nil
}

// Handler returns the fully wired request handler.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Start serves requests until ctx is done or the listener fails.
func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

// Shutdown cancels the base context of in-flight requests and waits for
// them up to the configured shutdown timeout.
func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []router.Middleware) (*App, error) {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	a := &App{
		config:          cfg,
		db:              provider.DB,
		txManager:       provider.TxMgr,
		signer:          provider.Signer,
		validator:       provider.Validator,
		hasher:          provider.Hasher,
		router:          provider.Router,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	a.registerMiddlewares()
	if err := a.setupRoutes(); err != nil {
		stop()
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	return a, nil
}
