package thought

import (
	"github.com/ferdiebergado/deepthoughts/internal/platform/db"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
)

type Module struct {
	svc Service
}

func (m *Module) Service() Service {
	return m.svc
}

func NewModule(dbExec db.Executor, validator validation.Validator) *Module {
	return &Module{
		svc: NewService(NewRepository(dbExec), validator),
	}
}
