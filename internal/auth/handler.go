package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/deepthoughts/internal/pkg/message"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/web"
	"github.com/ferdiebergado/deepthoughts/internal/platform/validation"
	"github.com/ferdiebergado/deepthoughts/internal/user"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type SignupRequest SignupParams

func (r SignupRequest) LogValue() slog.Value {
	return SignupParams(r).LogValue()
}

type LoginRequest LoginParams

func (r LoginRequest) LogValue() slog.Value {
	return LoginParams(r).LogValue()
}

type AuthResponse struct {
	Token string         `json:"token"`
	User  *user.UserData `json:"user"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[SignupRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	token, u, err := h.svc.Signup(r.Context(), SignupParams(req))
	if err != nil {
		var valErr *validation.Error
		switch {
		case errors.As(err, &valErr):
			web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, valErr.Fields)
		case errors.Is(err, ErrUserExists):
			web.Fail(w, http.StatusConflict, err, message.UserExists, nil)
		default:
			web.ServerError(w, err)
		}
		return
	}

	msg := MsgSignupSuccess
	web.OK(w, http.StatusCreated, &msg, &AuthResponse{
		Token: token,
		User:  user.NewUserData(u, 0),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	token, u, err := h.svc.Login(r.Context(), LoginParams(req))
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.Fail(w, http.StatusUnauthorized, err, message.BadCredentials, nil)
			return
		}
		web.ServerError(w, err)
		return
	}

	msg := MsgLoggedIn
	web.OK(w, http.StatusOK, &msg, &AuthResponse{
		Token: token,
		User:  user.NewUserData(u, 0),
	})
}
