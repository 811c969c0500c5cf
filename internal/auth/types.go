package auth

import (
	"context"
	"time"

	"quillpost-api/internal/models"
)

// PasswordHasher hashes and compares credentials
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hashed
	Compare(hashed, password string) error
}

// TokenIssuer signs session tokens for a user
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
	TTL() time.Duration
}

// AttemptLimiter tracks failed logins per email and per client address
type AttemptLimiter interface {
	Locked(ctx context.Context, email, clientIP string) (bool, error)
	RecordFailure(ctx context.Context, email, clientIP string) error
	Reset(ctx context.Context, email string) error
}

// IdentityVerifier checks a federated ID token and returns the verified identity
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// Identity is the subset of a verified federated token the service relies on
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// GoogleLoginInput carries the profile supplied by the client after a Google sign-in
type GoogleLoginInput struct {
	Name    string
	Email   string
	Avatar  string
	IDToken string
}

// Session is the result of a successful login
type Session struct {
	Token string
	// User has the password stripped
	User models.User
}
