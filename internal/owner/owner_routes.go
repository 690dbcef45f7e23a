package owner

import (
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	read := middleware.RequireCapability(rbacService, rbac.ResourceOwner, rbac.ActionRead)
	notes := middleware.RequireCapability(rbacService, rbac.ResourceOwner, rbac.ActionNotes)

	o := r.Group("/owner/:ownerId")
	{
		o.GET("/dashboard", read, h.Dashboard)
		o.GET("/apartments", read, h.Apartments)
		o.GET("/reports", read, h.Reports)
		o.GET("/bookings", read, h.Bookings)
		o.GET("/notes", notes, h.ListNotes)
		o.POST("/notes", notes, h.AddNote)
		o.DELETE("/notes/:noteId", notes, h.DeleteNote)
	}
}
