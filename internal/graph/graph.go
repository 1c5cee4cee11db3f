package graph

import (
	"github.com/ferdiebergado/deepthoughts/internal/auth"
	"github.com/ferdiebergado/deepthoughts/internal/config"
	"github.com/ferdiebergado/deepthoughts/internal/thought"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

type Module struct {
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(users user.Service, thoughts thought.Service, authSvc auth.Service, cfg *config.GraphQL) (*Module, error) {
	schema, err := NewSchema(NewResolver(users, thoughts, authSvc))
	if err != nil {
		return nil, err
	}

	return &Module{
		handler: NewHandler(schema, cfg),
	}, nil
}
