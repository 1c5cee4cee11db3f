package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"

	"github.com/ferdiebergado/deepthoughts/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DSNFromEnv builds the connection string from the DB_* environment variables.
func DSNFromEnv() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(os.Getenv("DB_USER"), os.Getenv("DB_PASS")),
		Host:   net.JoinHostPort(os.Getenv("DB_HOST"), os.Getenv("DB_PORT")),
		Path:   os.Getenv("DB_NAME"),
	}

	if sslMode := os.Getenv("DB_SSLMODE"); sslMode != "" {
		q := dsn.Query()
		q.Set("sslmode", sslMode)
		dsn.RawQuery = q.Encode()
	}

	return dsn.String()
}

// NewPostgresDB opens a connection pool configured by cfg and pings it.
func NewPostgresDB(ctx context.Context, cfg *config.DB) (*sql.DB, error) {
	slog.Info("Connecting to the database...")

	conn, err := sql.Open(cfg.Driver, DSNFromEnv())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout.Duration)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "db", os.Getenv("DB_NAME"))

	return conn, nil
}
