package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/deepthoughts/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"port": 8080, "read_timeout": "3s"},
		"jwt": {"issuer": "tests", "jti_length": 4}
	}`)

	t.Setenv("URL", "https://thoughts.example.com")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load(%q) = %v, want: nil", path, err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 8080)
	}

	if cfg.Server.ReadTimeout.Duration != 3*time.Second {
		t.Errorf("cfg.Server.ReadTimeout = %v, want: %v", cfg.Server.ReadTimeout.Duration, 3*time.Second)
	}

	if cfg.Server.URL != "https://thoughts.example.com" {
		t.Errorf("cfg.Server.URL = %q, want: %q", cfg.Server.URL, "https://thoughts.example.com")
	}

	if cfg.JWT.TTL.Duration != config.DefaultTokenTTL {
		t.Errorf("cfg.JWT.TTL = %v, want: %v", cfg.JWT.TTL.Duration, config.DefaultTokenTTL)
	}

	if cfg.GraphQL == nil || cfg.GraphQL.Path != "/graphql" {
		t.Errorf("cfg.GraphQL = %+v, want: default path /graphql", cfg.GraphQL)
	}
}

func TestLoad_PortOverride(t *testing.T) {
	path := writeConfig(t, `{"server": {"port": 8080}}`)
	t.Setenv("PORT", "9090")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 9090)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		port string
	}{
		{"Missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }, ""},
		{"Malformed json", func(t *testing.T) string { return writeConfig(t, `{"server":`) }, ""},
		{"Bad port", func(t *testing.T) string { return writeConfig(t, `{}`) }, "eighty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.port != "" {
				t.Setenv("PORT", tt.port)
			}

			if _, err := config.Load(tt.path(t)); err == nil {
				t.Error("config.Load() = nil, want: error")
			}
		})
	}
}
