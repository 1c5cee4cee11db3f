package app

import (
	"database/sql"

	"github.com/ferdiebergado/deepthoughts/internal/config"
	"github.com/ferdiebergado/deepthoughts/internal/platform/db"
	"github.com/ferdiebergado/deepthoughts/internal/platform/hash"
	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
	"github.com/ferdiebergado/deepthoughts/internal/platform/router"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Signer    jwt.Signer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
}

// NewProvider builds the production implementations. securityKey signs
// tokens and peppers password hashes.
func NewProvider(cfg *config.Config, securityKey string, dbConn *sql.DB) *Provider {
	return &Provider{
		DB:        dbConn,
		Signer:    jwt.NewGolangJWTSigner(securityKey, cfg.JWT),
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:    router.NewGoexpressRouter(),
		TxMgr:     db.NewSQLTxManager(dbConn),
	}
}
