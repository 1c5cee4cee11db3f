//go:build integration

package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ferdiebergado/deepthoughts/internal/config"
	"github.com/ferdiebergado/gopherkit/env"
)

// Setup connects to the test database, applies migrations and returns a
// context carrying a transaction that is rolled back when the test ends.
func Setup(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()

	const projRoot = "../../"

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Fatalf("failed to load environment file: %v", err)
	}

	cfg, err := config.Load(projRoot + "config.json")
	if err != nil {
		t.Fatalf("failed to load config file: %v", err)
	}

	conn, err := NewPostgresDB(t.Context(), cfg.DB)
	if err != nil {
		t.Fatalf("failed to connect to the database: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := Migrate(t.Context(), conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	tx, err := conn.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
	})

	return conn, NewContextWithTx(t.Context(), tx)
}
