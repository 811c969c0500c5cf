package blog

import (
	"github.com/gin-gonic/gin"
)

// RegisterProtectedRoutes registers blog routes; the group must carry session auth
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	blogGroup := r.Group("")

	blogGroup.POST("/generate", h.HandleGenerate)
}
