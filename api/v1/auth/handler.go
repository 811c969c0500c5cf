package auth

import (
	"errors"
	"net/http"

	"quillpost-api/internal/auth"
	"quillpost-api/internal/logger"
	"quillpost-api/internal/middleware"
	"quillpost-api/internal/user"
	"quillpost-api/pkg/status"

	"github.com/gin-gonic/gin"
)

// NewHandler creates a new auth handler
func NewHandler(authService AuthService, cookie CookieConfig, log *logger.Logger) *Handler {
	return &Handler{
		authService: authService,
		cookie:      cookie,
		logger:      log,
	}
}

// NewCookieConfig returns the session cookie policy: cross-site and secure in
// production, same-site only elsewhere
func NewCookieConfig(name, domain string, production bool) CookieConfig {
	cfg := CookieConfig{
		Name:     name,
		Domain:   domain,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		cfg.Secure = true
		cfg.SameSite = http.SameSiteNoneMode
	}
	return cfg
}

// HandleRegister handles user registration
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "register")
		c.JSON(http.StatusUnprocessableEntity, NewValidationError(err, http.StatusUnprocessableEntity, status.StatusValidationFailed))
		return
	}

	err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrUserAlreadyRegistered):
			statusCode = http.StatusConflict
			apiStatusCode = status.StatusEmailAlreadyExists
		case errors.Is(err, user.ErrInvalidName), errors.Is(err, user.ErrInvalidEmail), errors.Is(err, user.ErrWeakPassword):
			statusCode = http.StatusUnprocessableEntity
			apiStatusCode = status.StatusValidationFailed
		}

		h.logger.SecureLog(err, "Registration failed", "register")
		c.JSON(statusCode, NewErrorResponse(err.Error(), statusCode, apiStatusCode))
		return
	}

	c.JSON(http.StatusOK, NewMessageResponse("Registration successful.", status.StatusSignupSuccess))
}

// HandleLogin handles email and password login
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "login")
		c.JSON(http.StatusUnprocessableEntity, NewValidationError(err, http.StatusUnprocessableEntity, status.StatusValidationFailed))
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			statusCode = http.StatusNotFound
			apiStatusCode = status.StatusInvalidCredentials
		case errors.Is(err, auth.ErrTooManyAttempts):
			statusCode = http.StatusTooManyRequests
			apiStatusCode = status.StatusTooManyRequests
		}

		h.logger.SecureLog(err, "Login failed", "login")
		c.JSON(statusCode, NewErrorResponse(err.Error(), statusCode, apiStatusCode))
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, NewLoginResponse(session.User, "Login successful.", status.StatusLoginSuccess))
}

// HandleGoogleLogin handles sign-in with a Google profile
func (h *Handler) HandleGoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "googleLogin")
		c.JSON(http.StatusUnprocessableEntity, NewValidationError(err, http.StatusUnprocessableEntity, status.StatusValidationFailed))
		return
	}

	session, err := h.authService.GoogleLogin(c.Request.Context(), auth.GoogleLoginInput{
		Name:    req.Name,
		Email:   req.Email,
		Avatar:  req.Avatar,
		IDToken: req.IDToken,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrInvalidIdentity):
			statusCode = http.StatusUnauthorized
			apiStatusCode = status.StatusInvalidIdentity
		}

		h.logger.SecureLog(err, "Google login failed", "googleLogin")
		c.JSON(statusCode, NewErrorResponse(err.Error(), statusCode, apiStatusCode))
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, NewLoginResponse(session.User, "Login successful.", status.StatusLoginSuccess))
}

// HandleLogout clears the session cookie; it succeeds with or without a session
func (h *Handler) HandleLogout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, NewMessageResponse("Logout successful.", status.StatusLogoutSuccess))
}

// HandleMe returns the identity of the current session
func (h *Handler) HandleMe(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Authentication required", http.StatusUnauthorized, status.StatusUnauthorized))
		return
	}

	c.JSON(http.StatusOK, NewMeResponse(claims, status.StatusSessionActive))
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	maxAge := 0
	if ttl := h.authService.SessionTTL(); ttl > 0 {
		maxAge = int(ttl.Seconds())
	}

	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}
