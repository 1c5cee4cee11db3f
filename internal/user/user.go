package user

import "github.com/ferdiebergado/deepthoughts/internal/platform/db"

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

func NewModule(dbExec db.Executor, txMgr db.TxManager, identify Identifier) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, txMgr)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc, identify),
	}
}
