package auth

import (
	"github.com/ferdiebergado/deepthoughts/internal/platform/hash"
	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

type Provider struct {
	UserSvc   user.Service
	Hasher    hash.Hasher
	Signer    jwt.Signer
	Validator validation.Validator
}

type Module struct {
	svc     Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() Service {
	return m.svc
}

func NewModule(provider *Provider) *Module {
	svc := NewService(provider.UserSvc, provider.Hasher, provider.Signer, provider.Validator)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}
