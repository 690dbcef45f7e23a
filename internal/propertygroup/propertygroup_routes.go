package propertygroup

import (
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	read := middleware.RequireCapability(rbacService, rbac.ResourceProperty, rbac.ActionRead)
	write := middleware.RequireCapability(rbacService, rbac.ResourceProperty, rbac.ActionWrite)

	groups := r.Group("/property-group")
	{
		groups.POST("/create", write, h.Create)
		groups.GET("/company/:companyId", read, h.GetByCompany)
		groups.GET("/:id", read, h.GetByID)
		groups.PUT("/update/:id", write, h.Update)
		groups.DELETE("/:id", write, h.Delete)
	}
}
