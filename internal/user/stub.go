package user

import (
	"context"
	"errors"
)

type StubService struct {
	CreateFunc         func(ctx context.Context, params CreateParams) (*User, error)
	ListFunc           func(ctx context.Context) ([]User, error)
	FindFunc           func(ctx context.Context, userID string) (*User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*User, error)
	FriendsFunc        func(ctx context.Context, userID string) ([]User, error)
	CountFriendsFunc   func(ctx context.Context, userID string) (int, error)
	AddFriendFunc      func(ctx context.Context, userID, friendID string) (*User, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, params CreateParams) (*User, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) List(ctx context.Context) ([]User, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, userID string) (*User, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}

func (s *StubService) FindByUsername(ctx context.Context, username string) (*User, error) {
	if s.FindByUsernameFunc == nil {
		return nil, errors.New("FindByUsername() not implemented by stub")
	}
	return s.FindByUsernameFunc(ctx, username)
}

func (s *StubService) FindByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return s.FindByEmailFunc(ctx, email)
}

func (s *StubService) Friends(ctx context.Context, userID string) ([]User, error) {
	if s.FriendsFunc == nil {
		return nil, errors.New("Friends() not implemented by stub")
	}
	return s.FriendsFunc(ctx, userID)
}

func (s *StubService) CountFriends(ctx context.Context, userID string) (int, error) {
	if s.CountFriendsFunc == nil {
		return 0, errors.New("CountFriends() not implemented by stub")
	}
	return s.CountFriendsFunc(ctx, userID)
}

func (s *StubService) AddFriend(ctx context.Context, userID, friendID string) (*User, error) {
	if s.AddFriendFunc == nil {
		return nil, errors.New("AddFriend() not implemented by stub")
	}
	return s.AddFriendFunc(ctx, userID, friendID)
}

type StubRepo struct {
	CreateFunc         func(ctx context.Context, params CreateParams) (*User, error)
	ListFunc           func(ctx context.Context) ([]User, error)
	FindFunc           func(ctx context.Context, userID string) (*User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*User, error)
	ListFriendsFunc    func(ctx context.Context, userID string) ([]User, error)
	CountFriendsFunc   func(ctx context.Context, userID string) (int, error)
	AddFriendFunc      func(ctx context.Context, userID, friendID string) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (*User, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context) ([]User, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, userID string) (*User, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	if r.FindByUsernameFunc == nil {
		return nil, errors.New("FindByUsername() not implemented by stub")
	}
	return r.FindByUsernameFunc(ctx, username)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) ListFriends(ctx context.Context, userID string) ([]User, error) {
	if r.ListFriendsFunc == nil {
		return nil, errors.New("ListFriends() not implemented by stub")
	}
	return r.ListFriendsFunc(ctx, userID)
}

func (r *StubRepo) CountFriends(ctx context.Context, userID string) (int, error) {
	if r.CountFriendsFunc == nil {
		return 0, errors.New("CountFriends() not implemented by stub")
	}
	return r.CountFriendsFunc(ctx, userID)
}

func (r *StubRepo) AddFriend(ctx context.Context, userID, friendID string) error {
	if r.AddFriendFunc == nil {
		return errors.New("AddFriend() not implemented by stub")
	}
	return r.AddFriendFunc(ctx, userID, friendID)
}
