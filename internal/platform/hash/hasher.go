package hash

import "errors"

var ErrInvalidHash = errors.New("invalid hash format")

// Hasher turns a plaintext password into a storable hash and checks a
// plaintext against it.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
