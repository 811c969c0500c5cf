package middleware

import (
	"net/http"
	"strings"

	"quillpost-api/internal/jwt"
	"quillpost-api/pkg/status"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
	ContextClaims = "claims"
)

// TokenValidator validates a session token and returns its claims
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// SessionAuth rejects requests without a valid session token in the
// Authorization header or the session cookie
func SessionAuth(validator TokenValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			abortUnauthorized(c, status.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, status.StatusInvalidToken, "Session expired or invalid")
			return
		}

		setClaimsInContext(c, claims)
		c.Next()
	}
}

// CurrentClaims returns the claims stored by SessionAuth
func CurrentClaims(c *gin.Context) (*jwt.Claims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*jwt.Claims)
	return claims, ok
}

// extractToken prefers a bearer header over the cookie
func extractToken(c *gin.Context, cookieName string) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := c.Cookie(cookieName)
	if err == nil && cookie != "" {
		return cookie
	}

	return ""
}

func setClaimsInContext(c *gin.Context, claims *jwt.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextClaims, claims)
}

func abortUnauthorized(c *gin.Context, code int16, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":    false,
		"statusCode": http.StatusUnauthorized,
		"code":       code,
		"message":    message,
	})
}
