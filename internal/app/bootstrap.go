package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"

	"github.com/ferdiebergado/deepthoughts/internal/config"
	"github.com/ferdiebergado/deepthoughts/internal/middleware"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/logging"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/message"
	"github.com/ferdiebergado/deepthoughts/internal/platform/db"
	"github.com/ferdiebergado/deepthoughts/internal/platform/router"
)

const (
	envProduction = "production"
	envKey        = "KEY"
	cfgFile       = "config.json"
)

func Run(baseCtx context.Context) error {
	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	appEnv := os.Getenv("ENV")
	if appEnv != envProduction {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
		appEnv = os.Getenv("ENV")
	}

	logging.SetupLogger(appEnv, os.Getenv("LOG_LEVEL"), os.Stdout)
	slog.Info("Initializing...", "env", appEnv)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	securityKey, ok := os.LookupEnv(envKey)
	if !ok || securityKey == "" {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	dbConn, err := db.NewPostgresDB(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if cfg.DB.Migrate {
		if err := db.Migrate(signalCtx, dbConn); err != nil {
			return err
		}
	}

	api, err := New(cfg, NewProvider(cfg, securityKey, dbConn), GlobalMiddlewares(cfg))
	if err != nil {
		return err
	}

	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// GlobalMiddlewares runs on every request, outermost first.
func GlobalMiddlewares(cfg *config.Config) []router.Middleware {
	return []router.Middleware{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.ContextGuard,
		middleware.CORS(cfg.CORS),
	}
}
