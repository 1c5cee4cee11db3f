package graph

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/ferdiebergado/deepthoughts/internal/auth"
	"github.com/ferdiebergado/deepthoughts/internal/thought"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

// Resolver answers the root fields of the schema and the computed fields of
// its object types.
type Resolver struct {
	users    user.Service
	thoughts thought.Service
	auth     auth.Service
}

func NewResolver(users user.Service, thoughts thought.Service, authSvc auth.Service) *Resolver {
	return &Resolver{
		users:    users,
		thoughts: thoughts,
		auth:     authSvc,
	}
}

type authPayload struct {
	Token string
	User  *user.User
}

// resolve maps the error returned by fn to a client error.
func resolve(fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		v, err := fn(p)
		if err != nil {
			return nil, clientError(p.Info.FieldName, err)
		}
		return v, nil
	}
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func (r *Resolver) Me(p graphql.ResolveParams) (any, error) {
	claims, err := auth.RequireUser(p.Context)
	if err != nil {
		return nil, err
	}

	return r.users.Find(p.Context, claims.ID)
}

func (r *Resolver) Users(p graphql.ResolveParams) (any, error) {
	users, err := r.users.List(p.Context)
	if err != nil {
		return nil, err
	}
	return userPointers(users), nil
}

// User returns null for an unknown username.
func (r *Resolver) User(p graphql.ResolveParams) (any, error) {
	u, err := r.users.FindByUsername(p.Context, stringArg(p, "username"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Thoughts lists the thoughts of username, or every thought when it is
// omitted, newest first.
func (r *Resolver) Thoughts(p graphql.ResolveParams) (any, error) {
	thoughts, err := r.thoughts.List(p.Context, stringArg(p, "username"))
	if err != nil {
		return nil, err
	}
	return thoughtPointers(thoughts), nil
}

// Thought returns null for an unknown id.
func (r *Resolver) Thought(p graphql.ResolveParams) (any, error) {
	t, err := r.thoughts.Find(p.Context, stringArg(p, "_id"))
	if err != nil {
		if errors.Is(err, thought.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *Resolver) Login(p graphql.ResolveParams) (any, error) {
	params := auth.LoginParams{
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	}

	token, u, err := r.auth.Login(p.Context, params)
	if err != nil {
		return nil, err
	}
	return &authPayload{Token: token, User: u}, nil
}

func (r *Resolver) AddUser(p graphql.ResolveParams) (any, error) {
	params := auth.SignupParams{
		Username: stringArg(p, "username"),
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	}

	token, u, err := r.auth.Signup(p.Context, params)
	if err != nil {
		return nil, err
	}
	return &authPayload{Token: token, User: u}, nil
}

func (r *Resolver) AddThought(p graphql.ResolveParams) (any, error) {
	claims, err := auth.RequireUser(p.Context)
	if err != nil {
		return nil, err
	}

	return r.thoughts.Create(p.Context, thought.CreateParams{
		ThoughtText: stringArg(p, "thoughtText"),
		Username:    claims.Username,
		UserID:      claims.ID,
	})
}

func (r *Resolver) AddReaction(p graphql.ResolveParams) (any, error) {
	claims, err := auth.RequireUser(p.Context)
	if err != nil {
		return nil, err
	}

	return r.thoughts.AddReaction(p.Context, thought.ReactionParams{
		ThoughtID:    stringArg(p, "thoughtId"),
		ReactionBody: stringArg(p, "reactionBody"),
		Username:     claims.Username,
	})
}

func (r *Resolver) AddFriend(p graphql.ResolveParams) (any, error) {
	claims, err := auth.RequireUser(p.Context)
	if err != nil {
		return nil, err
	}

	return r.users.AddFriend(p.Context, claims.ID, stringArg(p, "friendId"))
}

func (r *Resolver) friendCount(p graphql.ResolveParams) (any, error) {
	u, ok := p.Source.(*user.User)
	if !ok {
		return nil, nil
	}
	return r.users.CountFriends(p.Context, u.ID)
}

func (r *Resolver) friends(p graphql.ResolveParams) (any, error) {
	u, ok := p.Source.(*user.User)
	if !ok {
		return nil, nil
	}

	friends, err := r.users.Friends(p.Context, u.ID)
	if err != nil {
		return nil, err
	}
	return userPointers(friends), nil
}

func (r *Resolver) userThoughts(p graphql.ResolveParams) (any, error) {
	u, ok := p.Source.(*user.User)
	if !ok {
		return nil, nil
	}

	thoughts, err := r.thoughts.List(p.Context, u.Username)
	if err != nil {
		return nil, err
	}
	return thoughtPointers(thoughts), nil
}

func userPointers(users []user.User) []*user.User {
	ptrs := make([]*user.User, len(users))
	for i := range users {
		ptrs[i] = &users[i]
	}
	return ptrs
}

func thoughtPointers(thoughts []thought.Thought) []*thought.Thought {
	ptrs := make([]*thought.Thought, len(thoughts))
	for i := range thoughts {
		ptrs[i] = &thoughts[i]
	}
	return ptrs
}
