package task

import (
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	read := middleware.RequireCapability(rbacService, rbac.ResourceTask, rbac.ActionRead)
	write := middleware.RequireCapability(rbacService, rbac.ResourceTask, rbac.ActionWrite)
	complete := middleware.RequireCapability(rbacService, rbac.ResourceTask, rbac.ActionComplete)

	tasks := r.Group("/tasks")
	{
		tasks.POST("/create", write, h.Create)
		tasks.GET("", read, h.GetAll)
		tasks.GET("/my", read, h.GetMine)
		tasks.GET("/:id", read, h.GetByID)
		tasks.DELETE("/:id", write, h.Delete)
		tasks.PATCH("/:id/complete", complete, h.Complete)
		tasks.PATCH("/:id/status", complete, h.UpdateStatus)
	}
}
