package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/deepthoughts/internal/pkg/message"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/web"
	"github.com/ferdiebergado/deepthoughts/internal/platform/jwt"
)

// Identifier returns the identity of the caller or an error when the request
// is anonymous.
type Identifier func(ctx context.Context) (*jwt.Claims, error)

type Handler struct {
	svc      Service
	identify Identifier
}

func NewHandler(svc Service, identify Identifier) *Handler {
	return &Handler{
		svc:      svc,
		identify: identify,
	}
}

type UserData struct {
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FriendCount int       `json:"friendCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewUserData(u *User, friendCount int) *UserData {
	return &UserData{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FriendCount: friendCount,
		CreatedAt:   u.CreatedAt,
	}
}

// Me responds with the authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, err := h.identify(ctx)
	if err != nil {
		web.Fail(w, http.StatusUnauthorized, err, message.NotLoggedIn, nil)
		return
	}

	u, err := h.svc.Find(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.Fail(w, http.StatusNotFound, err, message.UserNotFound, nil)
			return
		}
		web.ServerError(w, err)
		return
	}

	count, err := h.svc.CountFriends(ctx, u.ID)
	if err != nil {
		web.ServerError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, NewUserData(u, count))
}
