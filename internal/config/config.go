package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	timex "github.com/ferdiebergado/deepthoughts/internal/pkg/time"
)

type Server struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
	Migrate         bool           `json:"migrate,omitempty"`
}

type JWT struct {
	JTILength uint32         `json:"jti_length,omitempty"`
	Issuer    string         `json:"issuer,omitempty"`
	TTL       timex.Duration `json:"ttl,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type GraphQL struct {
	Path     string `json:"path,omitempty"`
	AllowGET bool   `json:"allow_get,omitempty"`
}

type CORS struct {
	AllowedOrigin string `json:"allowed_origin,omitempty"`
}

type Config struct {
	Server  *Server  `json:"server,omitempty"`
	DB      *DB      `json:"db,omitempty"`
	JWT     *JWT     `json:"jwt,omitempty"`
	Argon2  *Argon2  `json:"argon2,omitempty"`
	GraphQL *GraphQL `json:"graphql,omitempty"`
	CORS    *CORS    `json:"cors,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("argon2", c.Argon2),
		slog.Any("graphql", c.GraphQL),
		slog.Any("cors", c.CORS),
	)
}

// Load reads the JSON config file, fills in the defaults for any missing
// section and applies environment overrides.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Server == nil {
		cfg.Server = def.Server
	}
	if cfg.DB == nil {
		cfg.DB = def.DB
	}
	if cfg.JWT == nil {
		cfg.JWT = def.JWT
	}
	if cfg.JWT.TTL.Duration == 0 {
		cfg.JWT.TTL = def.JWT.TTL
	}
	if cfg.Argon2 == nil {
		cfg.Argon2 = def.Argon2
	}
	if cfg.GraphQL == nil {
		cfg.GraphQL = def.GraphQL
	}
	if cfg.GraphQL.Path == "" {
		cfg.GraphQL.Path = def.GraphQL.Path
	}
	if cfg.CORS == nil {
		cfg.CORS = def.CORS
	}
}

func overrideWithEnv(cfg *Config) error {
	if url, ok := os.LookupEnv("URL"); ok {
		cfg.Server.URL = url
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}
	return nil
}
