package graph

import (
	"errors"
	"log/slog"

	"github.com/ferdiebergado/deepthoughts/internal/auth"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/errx"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/message"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
	"github.com/ferdiebergado/deepthoughts/internal/thought"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

// Values of the "code" error extension.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

const msgSelfFriend = "You cannot add yourself as a friend."

// Error is the client-visible form of a resolver error. graphql-go copies its
// Extensions into the "extensions" member of the error entry.
type Error struct {
	Message string
	Code    string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]any {
	ext := map[string]any{"code": e.Code}
	if len(e.Fields) > 0 {
		ext["fields"] = e.Fields
	}
	return ext
}

// clientError converts a service error into an *Error. Unknown errors are
// logged and hidden behind a generic message.
func clientError(field string, err error) *Error {
	var valErr *validation.Error

	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		return &Error{Message: message.NotLoggedIn, Code: CodeUnauthenticated}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &Error{Message: message.BadCredentials, Code: CodeUnauthenticated}
	case errors.As(err, &valErr):
		return &Error{Message: message.InvalidInput, Code: CodeBadUserInput, Fields: valErr.Fields}
	case errors.Is(err, auth.ErrUserExists):
		return &Error{Message: message.UserExists, Code: CodeBadUserInput}
	case errors.Is(err, user.ErrSelfFriend):
		return &Error{Message: msgSelfFriend, Code: CodeBadUserInput}
	case errors.Is(err, user.ErrNotFound):
		return &Error{Message: message.UserNotFound, Code: CodeNotFound}
	case errors.Is(err, thought.ErrNotFound):
		return &Error{Message: message.ThoughtNotFound, Code: CodeNotFound}
	case errx.IsContextError(err):
		return &Error{Message: message.RequestCancelled, Code: CodeInternal}
	default:
		slog.Error("resolver failed", "field", field, "reason", err)
		return &Error{Message: message.InternalError, Code: CodeInternal}
	}
}
