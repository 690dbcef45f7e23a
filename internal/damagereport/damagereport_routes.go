package damagereport

import (
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	create := middleware.RequireCapability(rbacService, rbac.ResourceDamage, rbac.ActionCreate)
	read := middleware.RequireCapability(rbacService, rbac.ResourceDamage, rbac.ActionRead)
	manage := middleware.RequireCapability(rbacService, rbac.ResourceDamage, rbac.ActionManage)

	reports := r.Group("/damage-reports")
	{
		reports.POST("", create, h.Create)
		reports.GET("", read, h.GetAll)
		reports.GET("/:id", read, h.GetByID)
		reports.PATCH("/:id/status", manage, h.UpdateStatus)
		reports.DELETE("/:id", manage, h.Delete)
	}
}
