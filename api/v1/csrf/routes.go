package csrf

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes mounts GET /csrf on r
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/csrf", h.HandleCSRFToken)
}
