package csrf

import (
	"errors"
	"net/http"
	"time"

	"quillpost-api/internal/logger"
	"quillpost-api/pkg/status"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

var errEmptyToken = errors.New("csrf middleware produced an empty token")

// Handler hands the masked CSRF token to the frontend before it submits forms
type Handler struct {
	maxAge time.Duration
	logger *logger.Logger
}

func NewHandler(maxAge time.Duration, logger *logger.Logger) *Handler {
	return &Handler{maxAge: maxAge, logger: logger}
}

// HandleCSRFToken returns the token in the body and in the X-CSRF-Token header.
// It only works behind Protect, which seeds the request with the token.
func (h *Handler) HandleCSRFToken(c *gin.Context) {
	token := csrf.Token(c.Request)
	if token == "" {
		h.logger.SecureLog(errEmptyToken, "Failed to issue CSRF token", "csrf")
		c.JSON(http.StatusInternalServerError, NewErrorResponse(
			http.StatusInternalServerError,
			status.StatusInternalServerError,
			"Internal server error, please try again later",
		))
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Header("X-CSRF-Token", token)
	c.JSON(http.StatusOK, NewResponse(token, time.Now().Add(h.maxAge).Unix()))
}
