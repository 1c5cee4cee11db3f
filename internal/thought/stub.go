package thought

import (
	"context"
	"errors"
)

type StubRepo struct {
	CreateFunc      func(ctx context.Context, params CreateParams) (*Thought, error)
	ListFunc        func(ctx context.Context, username string) ([]Thought, error)
	FindFunc        func(ctx context.Context, thoughtID string) (*Thought, error)
	AddReactionFunc func(ctx context.Context, thoughtID string, reaction Reaction) (*Thought, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (*Thought, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context, username string) ([]Thought, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, username)
}

func (r *StubRepo) Find(ctx context.Context, thoughtID string) (*Thought, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, thoughtID)
}

func (r *StubRepo) AddReaction(ctx context.Context, thoughtID string, reaction Reaction) (*Thought, error) {
	if r.AddReactionFunc == nil {
		return nil, errors.New("AddReaction() not implemented by stub")
	}
	return r.AddReactionFunc(ctx, thoughtID, reaction)
}

type StubService struct {
	CreateFunc      func(ctx context.Context, params CreateParams) (*Thought, error)
	ListFunc        func(ctx context.Context, username string) ([]Thought, error)
	FindFunc        func(ctx context.Context, thoughtID string) (*Thought, error)
	AddReactionFunc func(ctx context.Context, params ReactionParams) (*Thought, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, params CreateParams) (*Thought, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) List(ctx context.Context, username string) ([]Thought, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, username)
}

func (s *StubService) Find(ctx context.Context, thoughtID string) (*Thought, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, thoughtID)
}

func (s *StubService) AddReaction(ctx context.Context, params ReactionParams) (*Thought, error) {
	if s.AddReactionFunc == nil {
		return nil, errors.New("AddReaction() not implemented by stub")
	}
	return s.AddReactionFunc(ctx, params)
}
