package auth

import (
	"context"
	"net/http"
	"time"

	"quillpost-api/internal/auth"
	"quillpost-api/internal/logger"
)

// AuthService is the subset of the auth service the handler drives
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password, clientIP string) (*auth.Session, error)
	GoogleLogin(ctx context.Context, input auth.GoogleLoginInput) (*auth.Session, error)
	SessionTTL() time.Duration
}

// CookieConfig describes how the session cookie is written and cleared
type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// Handler manages auth-related HTTP requests
type Handler struct {
	authService AuthService
	cookie      CookieConfig
	logger      *logger.Logger
}
