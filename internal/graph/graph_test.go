package graph_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/deepthoughts/internal/auth"
	"github.com/ferdiebergado/deepthoughts/internal/config"
	"github.com/ferdiebergado/deepthoughts/internal/graph"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/logging"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/message"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/web"
	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
	"github.com/ferdiebergado/deepthoughts/internal/thought"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

const (
	validToken = "valid.token.sig"
	maxBody    = 1 << 20
)

var alice = &jwt.Claims{ID: "u1", Username: "alice", Email: "alice@example.com"}

func TestMain(m *testing.M) {
	logging.SetupLogger("testing", "error", os.Stdout)

	code := m.Run()
	os.Exit(code)
}

type gqlError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

type services struct {
	users    *user.StubService
	thoughts *thought.StubService
	auth     *auth.StubService
}

func newServices() *services {
	return &services{
		users:    &user.StubService{},
		thoughts: &thought.StubService{},
		auth:     &auth.StubService{},
	}
}

func newServer(t *testing.T, svcs *services) http.Handler {
	t.Helper()

	schema, err := graph.NewSchema(graph.NewResolver(svcs.users, svcs.thoughts, svcs.auth))
	if err != nil {
		t.Fatalf("graph.NewSchema() = %v, want: nil", err)
	}

	signer := &jwt.StubSigner{
		VerifyFunc: func(token string) (*jwt.Claims, error) {
			if token != validToken {
				return nil, jwt.ErrInvalidToken
			}
			return alice, nil
		},
	}

	h := graph.NewHandler(schema, &config.GraphQL{Path: "/graphql", AllowGET: true})
	return graph.DecodeRequest(maxBody)(auth.Authenticate(signer)(h))
}

func postJSON(t *testing.T, body graph.Request) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(payload))
	req.Header.Set(web.HeaderContentType, web.MimeJSON)
	return req
}

func serve(t *testing.T, h http.Handler, req *http.Request, wantStatus int) *gqlResponse {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != wantStatus {
		t.Fatalf(message.FmtErrStatusCode, rec.Code, wantStatus)
	}

	var res gqlResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return &res
}

func wantError(t *testing.T, res *gqlResponse, msg, code string) {
	t.Helper()

	if len(res.Errors) != 1 {
		t.Fatalf("len(res.Errors) = %d, want: 1", len(res.Errors))
	}

	if got := res.Errors[0].Message; got != msg {
		t.Errorf("res.Errors[0].Message = %q, want: %q", got, msg)
	}

	if got := res.Errors[0].Extensions["code"]; got != code {
		t.Errorf("res.Errors[0].Extensions[code] = %v, want: %q", got, code)
	}
}

func assertJSON(t *testing.T, got json.RawMessage, want string) {
	t.Helper()

	var gotVal, wantVal any
	if err := json.Unmarshal(got, &gotVal); err != nil {
		t.Fatalf("decode %s: %v", got, err)
	}
	if err := json.Unmarshal([]byte(want), &wantVal); err != nil {
		t.Fatalf("decode %s: %v", want, err)
	}

	if !reflect.DeepEqual(gotVal, wantVal) {
		t.Errorf("data = %s, want: %s", got, want)
	}
}

func TestHandler_GatedOperationsRequireLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, field, query string
		header             string
	}{
		{"me", "me", `{ me { _id } }`, ""},
		{"addThought", "addThought", `mutation { addThought(thoughtText: "hi") { _id } }`, ""},
		{"addReaction", "addReaction", `mutation { addReaction(thoughtId: "t1", reactionBody: "wow") { _id } }`, ""},
		{"addFriend", "addFriend", `mutation { addFriend(friendId: "u2") { _id } }`, ""},
		{"addThought with invalid token", "addThought", `mutation { addThought(thoughtText: "hi") { _id } }`, "Bearer garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svcs := newServices()
			req := postJSON(t, graph.Request{Query: tt.query})
			if tt.header != "" {
				req.Header.Set(web.HeaderAuthorization, tt.header)
			}

			res := serve(t, newServer(t, svcs), req, http.StatusOK)

			wantError(t, res, message.NotLoggedIn, graph.CodeUnauthenticated)

			assertJSON(t, res.Data[tt.field], "null")
		})
	}
}

func TestHandler_AddThoughtUsesCallerIdentity(t *testing.T) {
	t.Parallel()

	const query = `mutation { addThought(thoughtText: "deep") { _id thoughtText username reactionCount } }`

	tests := []struct {
		name  string
		build func(t *testing.T) *http.Request
	}{
		{"Authorization header", func(t *testing.T) *http.Request {
			t.Helper()
			req := postJSON(t, graph.Request{Query: query})
			req.Header.Set(web.HeaderAuthorization, "Bearer "+validToken)
			return req
		}},
		{"Bare Authorization header", func(t *testing.T) *http.Request {
			t.Helper()
			req := postJSON(t, graph.Request{Query: query})
			req.Header.Set(web.HeaderAuthorization, validToken)
			return req
		}},
		{"Body token", func(t *testing.T) *http.Request {
			t.Helper()
			return postJSON(t, graph.Request{Query: query, Token: validToken})
		}},
		{"Body token wins over invalid header", func(t *testing.T) *http.Request {
			t.Helper()
			req := postJSON(t, graph.Request{Query: query, Token: validToken})
			req.Header.Set(web.HeaderAuthorization, "Bearer garbage")
			return req
		}},
		{"Query parameter", func(t *testing.T) *http.Request {
			t.Helper()
			req := postJSON(t, graph.Request{Query: query})
			req.URL.RawQuery = url.Values{"token": {validToken}}.Encode()
			return req
		}},
		{"Form body", func(t *testing.T) *http.Request {
			t.Helper()
			form := url.Values{"query": {query}, "token": {validToken}}
			req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(form.Encode()))
			req.Header.Set(web.HeaderContentType, web.MimeForm)
			return req
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got thought.CreateParams
			svcs := newServices()
			svcs.thoughts.CreateFunc = func(_ context.Context, params thought.CreateParams) (*thought.Thought, error) {
				got = params
				return &thought.Thought{ID: "t1", ThoughtText: params.ThoughtText, Username: params.Username, UserID: params.UserID}, nil
			}

			res := serve(t, newServer(t, svcs), tt.build(t), http.StatusOK)

			if len(res.Errors) != 0 {
				t.Fatalf("res.Errors = %+v, want: none", res.Errors)
			}

			want := thought.CreateParams{ThoughtText: "deep", Username: alice.Username, UserID: alice.ID}
			if got != want {
				t.Errorf("CreateParams = %+v, want: %+v", got, want)
			}

			wantData := `{"_id":"t1","thoughtText":"deep","username":"alice","reactionCount":0}`
			assertJSON(t, res.Data["addThought"], wantData)
		})
	}
}

func TestHandler_AddReactionAndFriend(t *testing.T) {
	t.Parallel()

	svcs := newServices()
	svcs.thoughts.AddReactionFunc = func(_ context.Context, params thought.ReactionParams) (*thought.Thought, error) {
		if params.Username != alice.Username || params.ThoughtID != "t1" {
			return nil, errors.New("unexpected params")
		}
		return &thought.Thought{
			ID:        "t1",
			Reactions: []thought.Reaction{{ID: "r1", ReactionBody: params.ReactionBody, Username: params.Username}},
		}, nil
	}
	svcs.users.AddFriendFunc = func(_ context.Context, userID, friendID string) (*user.User, error) {
		if userID == friendID {
			return nil, user.ErrSelfFriend
		}
		if friendID == "missing" {
			return nil, user.ErrNotFound
		}
		u := &user.User{Username: alice.Username}
		u.ID = userID
		return u, nil
	}
	svcs.users.CountFriendsFunc = func(context.Context, string) (int, error) {
		return 1, nil
	}
	h := newServer(t, svcs)

	tests := []struct {
		name, query, field string
		wantData           string
		wantMsg, wantCode  string
	}{
		{
			name:     "addReaction",
			query:    `mutation { addReaction(thoughtId: "t1", reactionBody: "wow") { _id reactionCount reactions { _id reactionBody username } } }`,
			field:    "addReaction",
			wantData: `{"_id":"t1","reactionCount":1,"reactions":[{"_id":"r1","reactionBody":"wow","username":"alice"}]}`,
		},
		{
			name:     "addFriend",
			query:    `mutation { addFriend(friendId: "u2") { _id friendCount } }`,
			field:    "addFriend",
			wantData: `{"_id":"u1","friendCount":1}`,
		},
		{
			name:     "addFriend self",
			query:    `mutation { addFriend(friendId: "u1") { _id } }`,
			field:    "addFriend",
			wantData: "null",
			wantMsg:  "You cannot add yourself as a friend.",
			wantCode: graph.CodeBadUserInput,
		},
		{
			name:     "addFriend unknown",
			query:    `mutation { addFriend(friendId: "missing") { _id } }`,
			field:    "addFriend",
			wantData: "null",
			wantMsg:  message.UserNotFound,
			wantCode: graph.CodeNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := postJSON(t, graph.Request{Query: tt.query})
			req.Header.Set(web.HeaderAuthorization, "Bearer "+validToken)
			res := serve(t, h, req, http.StatusOK)

			if tt.wantMsg != "" {
				wantError(t, res, tt.wantMsg, tt.wantCode)
			} else if len(res.Errors) != 0 {
				t.Fatalf("res.Errors = %+v, want: none", res.Errors)
			}

			assertJSON(t, res.Data[tt.field], tt.wantData)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	svcs := newServices()
	svcs.auth.LoginFunc = func(_ context.Context, params auth.LoginParams) (string, *user.User, error) {
		if params.Password != "secret" {
			return "", nil, auth.ErrInvalidCredentials
		}
		u := &user.User{Username: "alice", Email: params.Email}
		u.ID = "u1"
		return validToken, u, nil
	}
	h := newServer(t, svcs)

	const query = `mutation Login($email: String!, $password: String!) {
		login(email: $email, password: $password) { token user { _id username email } }
	}`

	t.Run("Valid credentials", func(t *testing.T) {
		t.Parallel()

		req := postJSON(t, graph.Request{
			Query:         query,
			OperationName: "Login",
			Variables:     map[string]any{"email": "alice@example.com", "password": "secret"},
		})
		res := serve(t, h, req, http.StatusOK)

		if len(res.Errors) != 0 {
			t.Fatalf("res.Errors = %+v, want: none", res.Errors)
		}

		want := `{"token":"` + validToken + `","user":{"_id":"u1","username":"alice","email":"alice@example.com"}}`
		assertJSON(t, res.Data["login"], want)
	})

	t.Run("Wrong password", func(t *testing.T) {
		t.Parallel()

		req := postJSON(t, graph.Request{
			Query:     query,
			Variables: map[string]any{"email": "alice@example.com", "password": "nope"},
		})
		res := serve(t, h, req, http.StatusOK)

		wantError(t, res, message.BadCredentials, graph.CodeUnauthenticated)

		assertJSON(t, res.Data["login"], "null")
	})
}

func TestHandler_AddUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		signupFunc func(context.Context, auth.SignupParams) (string, *user.User, error)
		wantData   string
		wantMsg    string
		wantCode   string
		wantFields bool
	}{
		{
			name: "Created",
			signupFunc: func(_ context.Context, params auth.SignupParams) (string, *user.User, error) {
				u := &user.User{Username: params.Username, Email: params.Email}
				u.ID = "u9"
				return validToken, u, nil
			},
			wantData: `{"token":"` + validToken + `","user":{"username":"bob","email":"bob@example.com"}}`,
		},
		{
			name: "Duplicate",
			signupFunc: func(context.Context, auth.SignupParams) (string, *user.User, error) {
				return "", nil, auth.ErrUserExists
			},
			wantData: "null",
			wantMsg:  message.UserExists,
			wantCode: graph.CodeBadUserInput,
		},
		{
			name: "Invalid input",
			signupFunc: func(context.Context, auth.SignupParams) (string, *user.User, error) {
				return "", nil, fmt.Errorf("signup: %w", &validation.Error{Fields: map[string]string{"password": "password must be at least 5 characters"}})
			},
			wantData:   "null",
			wantMsg:    message.InvalidInput,
			wantCode:   graph.CodeBadUserInput,
			wantFields: true,
		},
		{
			name: "Unexpected failure",
			signupFunc: func(context.Context, auth.SignupParams) (string, *user.User, error) {
				return "", nil, errors.New("connection refused")
			},
			wantData: "null",
			wantMsg:  message.InternalError,
			wantCode: graph.CodeInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svcs := newServices()
			svcs.auth.SignupFunc = tt.signupFunc

			req := postJSON(t, graph.Request{
				Query: `mutation { addUser(username: "bob", email: "bob@example.com", password: "secret") { token user { username email } } }`,
			})
			res := serve(t, newServer(t, svcs), req, http.StatusOK)

			if tt.wantMsg != "" {
				wantError(t, res, tt.wantMsg, tt.wantCode)
				if strings.Contains(res.Errors[0].Message, "connection refused") {
					t.Errorf("res.Errors[0].Message = %q leaks the internal error", res.Errors[0].Message)
				}
			}

			if tt.wantFields {
				if _, ok := res.Errors[0].Extensions["fields"]; !ok {
					t.Errorf("res.Errors[0].Extensions = %v, want a fields member", res.Errors[0].Extensions)
				}
			}

			assertJSON(t, res.Data["addUser"], tt.wantData)
		})
	}
}

func TestHandler_PublicQueries(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	svcs := newServices()
	svcs.thoughts.ListFunc = func(_ context.Context, username string) ([]thought.Thought, error) {
		all := []thought.Thought{
			{ID: "t2", ThoughtText: "second", Username: "bob", CreatedAt: created.Add(time.Hour)},
			{ID: "t1", ThoughtText: "first", Username: "alice", CreatedAt: created},
		}
		if username == "" {
			return all, nil
		}
		var filtered []thought.Thought
		for _, th := range all {
			if th.Username == username {
				filtered = append(filtered, th)
			}
		}
		return filtered, nil
	}
	svcs.thoughts.FindFunc = func(_ context.Context, id string) (*thought.Thought, error) {
		if id != "t1" {
			return nil, thought.ErrNotFound
		}
		return &thought.Thought{ID: "t1", ThoughtText: "first", CreatedAt: created}, nil
	}
	svcs.users.FindByUsernameFunc = func(_ context.Context, username string) (*user.User, error) {
		if username != "alice" {
			return nil, user.ErrNotFound
		}
		u := &user.User{Username: "alice", Email: "alice@example.com"}
		u.ID = "u1"
		return u, nil
	}
	svcs.users.CountFriendsFunc = func(context.Context, string) (int, error) {
		return 1, nil
	}
	svcs.users.FriendsFunc = func(context.Context, string) ([]user.User, error) {
		return []user.User{{Username: "bob"}}, nil
	}
	svcs.users.ListFunc = func(context.Context) ([]user.User, error) {
		return []user.User{{Username: "alice"}, {Username: "bob"}}, nil
	}
	h := newServer(t, svcs)

	tests := []struct {
		name, query, field, want string
	}{
		{"thoughts newest first", `{ thoughts { _id } }`, "thoughts", `[{"_id":"t2"},{"_id":"t1"}]`},
		{"thoughts by username", `{ thoughts(username: "alice") { _id username } }`, "thoughts", `[{"_id":"t1","username":"alice"}]`},
		{"thought", `{ thought(_id: "t1") { thoughtText createdAt } }`, "thought", `{"thoughtText":"first","createdAt":"2024-03-01T12:00:00Z"}`},
		{"unknown thought", `{ thought(_id: "nope") { _id } }`, "thought", "null"},
		{
			"user with nested fields",
			`{ user(username: "alice") { username friendCount friends { username } thoughts { _id } } }`,
			"user",
			`{"username":"alice","friendCount":1,"friends":[{"username":"bob"}],"thoughts":[{"_id":"t1"}]}`,
		},
		{"unknown user", `{ user(username: "zed") { _id } }`, "user", "null"},
		{"users", `{ users { username } }`, "users", `[{"username":"alice"},{"username":"bob"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := serve(t, h, postJSON(t, graph.Request{Query: tt.query}), http.StatusOK)

			if len(res.Errors) != 0 {
				t.Fatalf("res.Errors = %+v, want: none", res.Errors)
			}

			assertJSON(t, res.Data[tt.field], tt.want)
		})
	}
}

func TestHandler_Transport(t *testing.T) {
	t.Parallel()

	svcs := newServices()
	svcs.users.ListFunc = func(context.Context) ([]user.User, error) {
		return []user.User{{Username: "alice"}}, nil
	}
	h := newServer(t, svcs)

	getReq := func(query string) *http.Request {
		return httptest.NewRequest(http.MethodGet, "/graphql?"+url.Values{"query": {query}}.Encode(), http.NoBody)
	}

	t.Run("GET query", func(t *testing.T) {
		t.Parallel()

		res := serve(t, h, getReq(`{ users { username } }`), http.StatusOK)
		assertJSON(t, res.Data["users"], `[{"username":"alice"}]`)
	})

	t.Run("GET mutation", func(t *testing.T) {
		t.Parallel()

		res := serve(t, h, getReq(`mutation { addFriend(friendId: "u2") { _id } }`), http.StatusMethodNotAllowed)
		if len(res.Errors) != 1 || res.Errors[0].Message != message.UnsupportedMethod {
			t.Errorf("res.Errors = %+v, want: %q", res.Errors, message.UnsupportedMethod)
		}
	})

	t.Run("Missing query", func(t *testing.T) {
		t.Parallel()

		res := serve(t, h, postJSON(t, graph.Request{}), http.StatusBadRequest)
		if len(res.Errors) != 1 {
			t.Errorf("len(res.Errors) = %d, want: 1", len(res.Errors))
		}
	})

	t.Run("Syntax error", func(t *testing.T) {
		t.Parallel()

		res := serve(t, h, postJSON(t, graph.Request{Query: `{ users { `}), http.StatusOK)
		if len(res.Errors) == 0 {
			t.Error("res.Errors is empty, want a syntax error")
		}
	})
}
