package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/ferdiebergado/deepthoughts/internal/platform/db"
)

var ErrSelfFriend = errors.New("cannot add yourself as a friend")

type Repository interface {
	Create(ctx context.Context, params CreateParams) (*User, error)
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ListFriends(ctx context.Context, userID string) ([]User, error)
	CountFriends(ctx context.Context, userID string) (int, error)
	AddFriend(ctx context.Context, userID, friendID string) error
}

type Service interface {
	Create(ctx context.Context, params CreateParams) (*User, error)
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Friends(ctx context.Context, userID string) ([]User, error)
	CountFriends(ctx context.Context, userID string) (int, error)
	AddFriend(ctx context.Context, userID, friendID string) (*User, error)
}

type service struct {
	repo  Repository
	txMgr db.TxManager
}

var _ Service = (*service)(nil)

func NewService(repo Repository, txMgr db.TxManager) Service {
	return &service{
		repo:  repo,
		txMgr: txMgr,
	}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*User, error) {
	return s.repo.Create(ctx, params)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Find(ctx context.Context, userID string) (*User, error) {
	return s.repo.Find(ctx, userID)
}

func (s *service) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) Friends(ctx context.Context, userID string) ([]User, error) {
	return s.repo.ListFriends(ctx, userID)
}

func (s *service) CountFriends(ctx context.Context, userID string) (int, error) {
	return s.repo.CountFriends(ctx, userID)
}

// AddFriend adds friendID to the friends of userID and returns the updated
// user. Adding the same friend twice has no further effect.
func (s *service) AddFriend(ctx context.Context, userID, friendID string) (*User, error) {
	if userID == friendID {
		return nil, ErrSelfFriend
	}

	var u *User
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.Find(txCtx, friendID); err != nil {
			return fmt.Errorf("find friend %s: %w", friendID, err)
		}

		if err := s.repo.AddFriend(txCtx, userID, friendID); err != nil {
			return err
		}

		found, err := s.repo.Find(txCtx, userID)
		if err != nil {
			return fmt.Errorf("find user %s: %w", userID, err)
		}

		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}
