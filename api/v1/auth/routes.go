// api/v1/auth/routes.go
package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")

	// Public routes - no authentication required
	authGroup.POST("/register", h.HandleRegister)
	authGroup.POST("/login", h.HandleLogin)
	authGroup.POST("/google-login", h.HandleGoogleLogin)
	authGroup.GET("/logout", h.HandleLogout)
	authGroup.POST("/logout", h.HandleLogout)
}

// RegisterProtectedRoutes registers routes that need a session
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("")

	// Private routes - authentication required
	authGroup.GET("/me", h.HandleMe)
}
