package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/deepthoughts/internal/platform/hash"
	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
	"github.com/ferdiebergado/deepthoughts/internal/platform/metrics"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

const maskChar = "*"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

type Service interface {
	Signup(ctx context.Context, params SignupParams) (string, *user.User, error)
	Login(ctx context.Context, params LoginParams) (string, *user.User, error)
}

type SignupParams struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

func (p SignupParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", p.Username),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginParams struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (p LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type service struct {
	users     user.Service
	hasher    hash.Hasher
	signer    jwt.Signer
	validator validation.Validator
}

var _ Service = (*service)(nil)

func NewService(users user.Service, hasher hash.Hasher, signer jwt.Signer, validator validation.Validator) Service {
	return &service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		validator: validator,
	}
}

// Signup creates the user and returns a token for it.
func (s *service) Signup(ctx context.Context, params SignupParams) (token string, u *user.User, err error) {
	defer func() {
		metrics.Signups.WithLabelValues(metrics.Status(err)).Inc()
	}()

	if err := validation.Check(s.validator, params); err != nil {
		return "", nil, err
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	u, err = s.users.Create(ctx, user.CreateParams{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			return "", nil, fmt.Errorf("%w: %w", ErrUserExists, err)
		}
		return "", nil, fmt.Errorf("create user %s: %w", params.Username, err)
	}

	token, err = s.issue(u)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

// Login checks the credentials and returns a token for the matching user.
// An unknown email and a wrong password fail the same way.
func (s *service) Login(ctx context.Context, params LoginParams) (token string, u *user.User, err error) {
	defer func() {
		metrics.Logins.WithLabelValues(metrics.Status(err)).Inc()
	}()

	if err := validation.Check(s.validator, params); err != nil {
		return "", nil, err
	}

	u, err = s.users.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password of %s: %w", u.Username, err)
	}

	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err = s.issue(u)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) issue(u *user.User) (string, error) {
	token, err := s.signer.Sign(&jwt.Claims{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	})
	if err != nil {
		return "", fmt.Errorf("sign token for %s: %w", u.Username, err)
	}
	return token, nil
}
