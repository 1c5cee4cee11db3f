package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/deepthoughts/internal/user"
)

type StubService struct {
	SignupFunc func(ctx context.Context, params SignupParams) (string, *user.User, error)
	LoginFunc  func(ctx context.Context, params LoginParams) (string, *user.User, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Signup(ctx context.Context, params SignupParams) (string, *user.User, error) {
	if s.SignupFunc == nil {
		return "", nil, errors.New("Signup not implemented by stub")
	}
	return s.SignupFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (string, *user.User, error) {
	if s.LoginFunc == nil {
		return "", nil, errors.New("Login not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}
