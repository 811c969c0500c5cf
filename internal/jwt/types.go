// internal/jwt/types.go
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims represents the identity carried by a session token
type Claims struct {
	UserID string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and validates session tokens with a shared secret
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var (
	// ErrMissingSecret indicates the service was constructed without a signing secret
	ErrMissingSecret = errors.New("jwt secret is required")

	// ErrInvalidToken indicates the token failed parsing or validation
	ErrInvalidToken = errors.New("invalid token")
)
