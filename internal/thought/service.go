package thought

import (
	"context"
	"time"

	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, params CreateParams) (*Thought, error)
	List(ctx context.Context, username string) ([]Thought, error)
	Find(ctx context.Context, thoughtID string) (*Thought, error)
	AddReaction(ctx context.Context, params ReactionParams) (*Thought, error)
}

type service struct {
	repo      Repository
	validator validation.Validator
	now       func() time.Time
	newID     func() string
}

var _ Service = (*service)(nil)

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *service) {
		s.newID = newID
	}
}

func NewService(repo Repository, validator validation.Validator, opts ...Option) Service {
	s := &service{
		repo:      repo,
		validator: validator,
		now:       time.Now,
		newID:     uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Thought, error) {
	if err := validation.Check(s.validator, params); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *service) List(ctx context.Context, username string) ([]Thought, error) {
	return s.repo.List(ctx, username)
}

func (s *service) Find(ctx context.Context, thoughtID string) (*Thought, error) {
	return s.repo.Find(ctx, thoughtID)
}

func (s *service) AddReaction(ctx context.Context, params ReactionParams) (*Thought, error) {
	if err := validation.Check(s.validator, params); err != nil {
		return nil, err
	}

	reaction := Reaction{
		ID:           s.newID(),
		ReactionBody: params.ReactionBody,
		Username:     params.Username,
		CreatedAt:    s.now().UTC(),
	}

	return s.repo.AddReaction(ctx, params.ThoughtID, reaction)
}
