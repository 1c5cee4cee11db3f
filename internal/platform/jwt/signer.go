package jwt

import (
	"errors"
)

// ErrInvalidToken is returned by Verify for malformed, tampered, wrongly
// signed or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity carried by a token.
type Claims struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Signer defines methods for issuing and verifying identity tokens.
type Signer interface {
	Sign(claims *Claims) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
