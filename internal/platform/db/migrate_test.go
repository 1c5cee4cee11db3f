package db

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
)

func TestMigrations_Embedded(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrations, migrationsDir+"/*.sql")
	if err != nil {
		t.Fatal(err)
	}

	if len(files) == 0 {
		t.Fatal("no migrations embedded")
	}

	for _, f := range files {
		content, err := fs.ReadFile(migrations, f)
		if err != nil {
			t.Fatal(err)
		}

		for _, marker := range []string{"-- +goose Up", "-- +goose Down"} {
			if !strings.Contains(string(content), marker) {
				t.Errorf("%s is missing %q", f, marker)
			}
		}
	}
}

// Not parallel: swaps the package level gooseUp.
func TestMigrate(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	errUp := errors.New("boom")

	tests := []struct {
		name    string
		upErr   error
		wantErr bool
	}{
		{"Success", nil, false},
		{"Goose fails", errUp, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDir string
			gooseUp = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
				gotDir = dir
				return tt.upErr
			}

			err := Migrate(context.Background(), nil)
			if tt.wantErr != (err != nil) {
				t.Fatalf("Migrate() = %v, wantErr: %v", err, tt.wantErr)
			}

			if tt.wantErr && !errors.Is(err, tt.upErr) {
				t.Errorf("Migrate() = %v, want: %v", err, tt.upErr)
			}

			if gotDir != migrationsDir {
				t.Errorf("dir = %q, want: %q", gotDir, migrationsDir)
			}
		})
	}
}
