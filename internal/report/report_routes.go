package report

import (
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	general := middleware.RequireCapability(rbacService, rbac.ResourceReport, rbac.ActionGeneral)
	financial := middleware.RequireCapability(rbacService, rbac.ResourceReport, rbac.ActionFinancial)

	reports := r.Group("/reports")
	{
		reports.GET("/general", general, h.General)
		reports.GET("/general/export", general, h.ExportGeneral)
	}

	fin := r.Group("/financial-reports")
	{
		fin.POST("", financial, h.CreateFinancial)
		fin.GET("", financial, h.ListFinancial)
		fin.GET("/preview", financial, h.PreviewFinancial)
		fin.GET("/:id", financial, h.GetFinancial)
		fin.GET("/:id/export", financial, h.ExportFinancial)
	}
}
