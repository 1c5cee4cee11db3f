package user

import (
	"log/slog"

	"github.com/ferdiebergado/deepthoughts/internal/model"
)

type User struct {
	model.Model

	Username     string
	Email        string
	PasswordHash string
}

func (u User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", u.ID),
		slog.String("username", u.Username),
		slog.String("email", u.Email),
	)
}

type CreateParams struct {
	Username     string
	Email        string
	PasswordHash string
}

func (p CreateParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", p.Username),
		slog.String("email", p.Email),
		slog.String("password_hash", "*"),
	)
}
