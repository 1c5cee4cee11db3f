package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/deepthoughts/internal/config"
	"github.com/ferdiebergado/deepthoughts/internal/pkg/security"
	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims nests the identity under "data" next to the registered claims.
type tokenClaims struct {
	Data Claims `json:"data"`
	jwt.RegisteredClaims
}

// golangJWTSigner implements the Signer interface using the golang-jwt library.
type golangJWTSigner struct {
	method     jwt.SigningMethod
	key        []byte
	jtiLen     uint32
	issuer     string
	ttl        time.Duration
	now        func() time.Time
	randomizer security.Randomizer
}

var _ Signer = (*golangJWTSigner)(nil)

type Option func(*golangJWTSigner)

// WithClock replaces time.Now for both signing and verification.
func WithClock(now func() time.Time) Option {
	return func(s *golangJWTSigner) {
		s.now = now
	}
}

func WithRandomizer(r security.Randomizer) Option {
	return func(s *golangJWTSigner) {
		s.randomizer = r
	}
}

// NewGolangJWTSigner creates an HS256 Signer keyed by key. The key is copied
// and never changes afterwards.
func NewGolangJWTSigner(key string, cfg *config.JWT, opts ...Option) Signer {
	ttl := cfg.TTL.Duration
	if ttl <= 0 {
		ttl = config.DefaultTokenTTL
	}

	s := &golangJWTSigner{
		method:     jwt.SigningMethodHS256,
		key:        []byte(key),
		jtiLen:     cfg.JTILength,
		issuer:     cfg.Issuer,
		ttl:        ttl,
		now:        time.Now,
		randomizer: security.STDRandomizer,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Sign generates a signed token carrying claims that expires after the configured TTL.
func (s *golangJWTSigner) Sign(claims *Claims) (string, error) {
	if claims == nil {
		return "", errors.New("sign token: nil claims")
	}

	jti, err := s.randomizer.Randomize(s.jtiLen)
	if err != nil {
		return "", fmt.Errorf("generate jti with length %d: %w", s.jtiLen, err)
	}

	now := s.now()
	tc := &tokenClaims{
		Data: *claims,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(s.method, tc)
	signedToken, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signedToken, nil
}

// Verify parses and validates a token string and returns the embedded Claims.
// Every failure wraps ErrInvalidToken.
func (s *golangJWTSigner) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
		jwt.WithStrictDecoding(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: unknown claims type: %T", ErrInvalidToken, token.Claims)
	}

	if tc.Data.ID == "" {
		return nil, fmt.Errorf("%w: missing identity", ErrInvalidToken)
	}

	claims := tc.Data
	return &claims, nil
}
