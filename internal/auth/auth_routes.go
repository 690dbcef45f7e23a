package auth

import (
	"aparthotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public auth endpoints on public and the
// authenticated ones on protected.
func RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup, handler *Handler) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 10), handler.Login)
		auth.POST("/forgot-password", middleware.RateLimitByIP(0.05, 3), handler.ForgotPassword)
		auth.POST("/reset-password/:token", middleware.RateLimitByIP(0.1, 5), handler.ResetPassword)
	}

	me := protected.Group("/auth")
	{
		me.GET("/me", handler.Me)
		me.POST("/change-password", handler.ChangePassword)
	}
}
