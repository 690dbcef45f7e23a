package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes expects r to already run the auth middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/auth/capabilities", handler.Capabilities)
	r.POST("/rbac/enforce", handler.Enforce)
}
