package config

import (
	"time"

	timex "github.com/ferdiebergado/deepthoughts/internal/pkg/time"
)

const DefaultTokenTTL = 24 * time.Hour

func Default() *Config {
	return &Config{
		Server: &Server{
			URL:             "http://localhost:3001",
			Port:            3001,
			ReadTimeout:     timex.Duration{Duration: 10 * time.Second},
			WriteTimeout:    timex.Duration{Duration: 10 * time.Second},
			IdleTimeout:     timex.Duration{Duration: 60 * time.Second},
			ShutdownTimeout: timex.Duration{Duration: 10 * time.Second},
			MaxBodyBytes:    1 << 20,
		},
		DB: &DB{
			Driver:          "pgx",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxIdleTime: timex.Duration{Duration: 5 * time.Minute},
			ConnMaxLifetime: timex.Duration{Duration: time.Hour},
			PingTimeout:     timex.Duration{Duration: 5 * time.Second},
			Migrate:         true,
		},
		JWT: &JWT{
			JTILength: 8,
			Issuer:    "deepthoughts",
			TTL:       timex.Duration{Duration: DefaultTokenTTL},
		},
		Argon2: &Argon2{
			Memory:     65536,
			Iterations: 3,
			Threads:    2,
			SaltLength: 16,
			KeyLength:  32,
		},
		GraphQL: &GraphQL{
			Path:     "/graphql",
			AllowGET: true,
		},
		CORS: &CORS{
			AllowedOrigin: "*",
		},
	}
}
