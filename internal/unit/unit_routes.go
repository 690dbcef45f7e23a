package unit

import (
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	read := middleware.RequireCapability(rbacService, rbac.ResourceUnit, rbac.ActionRead)
	write := middleware.RequireCapability(rbacService, rbac.ResourceUnit, rbac.ActionWrite)

	units := r.Group("/units")
	{
		units.POST("/create", write, h.Create)
		units.GET("", read, h.GetAll)
		units.GET("/:unitId", read, h.GetByID)
		units.PUT("/update/:unitId", write, h.Update)
		units.DELETE("/:unitId", write, h.Delete)
	}
}
