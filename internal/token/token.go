// Package token issues and verifies the stateless session credential. Tokens
// carry only the user id and an expiry; no session state is kept server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Harshadsshinde/hospital-management-system/internal/config"
)

var (
	// ErrInvalidToken covers bad signatures and malformed payloads.
	ErrInvalidToken = errors.New("token is invalid")
	// ErrExpiredToken is kept distinct so callers can tell the client to
	// re-authenticate rather than retry.
	ErrExpiredToken = errors.New("token is expired")
	// ErrNoSecret rejects issuing or verifying without a configured key.
	ErrNoSecret = errors.New("JWT secret key is not configured")
)

type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(cfg *config.Token) *Service {
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// TTL reports the configured token lifetime, which also bounds the cookie.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue creates a signed token for the given user id and returns it together
// with its expiry.
func (s *Service) Issue(userID string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrNoSecret
	}
	expiresAt := time.Now().Add(s.ttl)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify decodes the token, checks signature and expiry, and returns the
// embedded user id. Expiry and signature failures are distinguishable.
func (s *Service) Verify(tokenStr string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
