package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/ferdiebergado/deepthoughts/internal/thought"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

// NewSchema builds the executable schema:
//
//	type Reaction { _id, reactionBody, createdAt, username }
//	type Thought  { _id, thoughtText, createdAt, username, reactionCount, reactions }
//	type User     { _id, username, email, friendCount, thoughts, friends }
//	type Auth     { token, user }
//	type Query    { me, users, user(username!), thoughts(username), thought(_id!) }
//	type Mutation { login, addUser, addThought, addReaction, addFriend }
//
// Passwords have no field.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	reactionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Reaction",
		Fields: graphql.Fields{
			"_id": &graphql.Field{Type: graphql.ID, Resolve: reactionField(func(rc *thought.Reaction) any {
				return rc.ID
			})},
			"reactionBody": &graphql.Field{Type: graphql.String, Resolve: reactionField(func(rc *thought.Reaction) any {
				return rc.ReactionBody
			})},
			"createdAt": &graphql.Field{Type: graphql.String, Resolve: reactionField(func(rc *thought.Reaction) any {
				return formatTime(rc.CreatedAt)
			})},
			"username": &graphql.Field{Type: graphql.String, Resolve: reactionField(func(rc *thought.Reaction) any {
				return rc.Username
			})},
		},
	})

	thoughtType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Thought",
		Fields: graphql.Fields{
			"_id": &graphql.Field{Type: graphql.ID, Resolve: thoughtField(func(t *thought.Thought) any {
				return t.ID
			})},
			"thoughtText": &graphql.Field{Type: graphql.String, Resolve: thoughtField(func(t *thought.Thought) any {
				return t.ThoughtText
			})},
			"createdAt": &graphql.Field{Type: graphql.String, Resolve: thoughtField(func(t *thought.Thought) any {
				return formatTime(t.CreatedAt)
			})},
			"username": &graphql.Field{Type: graphql.String, Resolve: thoughtField(func(t *thought.Thought) any {
				return t.Username
			})},
			"reactionCount": &graphql.Field{Type: graphql.Int, Resolve: thoughtField(func(t *thought.Thought) any {
				return t.ReactionCount()
			})},
			"reactions": &graphql.Field{Type: graphql.NewList(reactionType), Resolve: thoughtField(func(t *thought.Thought) any {
				reactions := make([]*thought.Reaction, len(t.Reactions))
				for i := range t.Reactions {
					reactions[i] = &t.Reactions[i]
				}
				return reactions
			})},
		},
	})

	var userType *graphql.Object
	userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"_id": &graphql.Field{Type: graphql.ID, Resolve: userField(func(u *user.User) any {
					return u.ID
				})},
				"username": &graphql.Field{Type: graphql.String, Resolve: userField(func(u *user.User) any {
					return u.Username
				})},
				"email": &graphql.Field{Type: graphql.String, Resolve: userField(func(u *user.User) any {
					return u.Email
				})},
				"friendCount": &graphql.Field{Type: graphql.Int, Resolve: resolve(r.friendCount)},
				"thoughts":    &graphql.Field{Type: graphql.NewList(thoughtType), Resolve: resolve(r.userThoughts)},
				"friends":     &graphql.Field{Type: graphql.NewList(userType), Resolve: resolve(r.friends)},
			}
		}),
	})

	authType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Auth",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: func(p graphql.ResolveParams) (any, error) {
				if a, ok := p.Source.(*authPayload); ok {
					return a.Token, nil
				}
				return nil, nil
			}},
			"user": &graphql.Field{Type: userType, Resolve: func(p graphql.ResolveParams) (any, error) {
				if a, ok := p.Source.(*authPayload); ok && a.User != nil {
					return a.User, nil
				}
				return nil, nil
			}},
		},
	})

	nonNullString := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
	nonNullID := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me":    &graphql.Field{Type: userType, Resolve: resolve(r.Me)},
			"users": &graphql.Field{Type: graphql.NewList(userType), Resolve: resolve(r.Users)},
			"user": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"username": nonNullString},
				Resolve: resolve(r.User),
			},
			"thoughts": &graphql.Field{
				Type:    graphql.NewList(thoughtType),
				Args:    graphql.FieldConfigArgument{"username": &graphql.ArgumentConfig{Type: graphql.String}},
				Resolve: resolve(r.Thoughts),
			},
			"thought": &graphql.Field{
				Type:    thoughtType,
				Args:    graphql.FieldConfigArgument{"_id": nonNullID},
				Resolve: resolve(r.Thought),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: authType,
				Args: graphql.FieldConfigArgument{
					"email":    nonNullString,
					"password": nonNullString,
				},
				Resolve: resolve(r.Login),
			},
			"addUser": &graphql.Field{
				Type: authType,
				Args: graphql.FieldConfigArgument{
					"username": nonNullString,
					"email":    nonNullString,
					"password": nonNullString,
				},
				Resolve: resolve(r.AddUser),
			},
			"addThought": &graphql.Field{
				Type:    thoughtType,
				Args:    graphql.FieldConfigArgument{"thoughtText": nonNullString},
				Resolve: resolve(r.AddThought),
			},
			"addReaction": &graphql.Field{
				Type: thoughtType,
				Args: graphql.FieldConfigArgument{
					"thoughtId":    nonNullID,
					"reactionBody": nonNullString,
				},
				Resolve: resolve(r.AddReaction),
			},
			"addFriend": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"friendId": nonNullID},
				Resolve: resolve(r.AddFriend),
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("build graphql schema: %w", err)
	}
	return schema, nil
}

func userField(get func(*user.User) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		if u, ok := p.Source.(*user.User); ok {
			return get(u), nil
		}
		return nil, nil
	}
}

func thoughtField(get func(*thought.Thought) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		if t, ok := p.Source.(*thought.Thought); ok {
			return get(t), nil
		}
		return nil, nil
	}
}

func reactionField(get func(*thought.Reaction) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		if rc, ok := p.Source.(*thought.Reaction); ok {
			return get(rc), nil
		}
		return nil, nil
	}
}
