package booking

import (
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterPublicRoutes mounts the unauthenticated listing.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/bookings/general", h.General)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	read := middleware.RequireCapability(rbacService, rbac.ResourceBooking, rbac.ActionRead)
	write := middleware.RequireCapability(rbacService, rbac.ResourceBooking, rbac.ActionWrite)

	bookings := r.Group("/bookings")
	{
		bookings.POST("/create", write, middleware.Idempotency(rdb), h.Create)
		bookings.GET("", read, h.GetAll)
		bookings.GET("/unit/:unitId", read, h.GetByUnit)
		bookings.GET("/property/:propertyGroupId", read, h.GetByPropertyGroup)
		bookings.GET("/:id", read, h.GetByID)
		bookings.PUT("/update/:id", write, h.Update)
		bookings.DELETE("/:id", write, h.Delete)
		bookings.POST("/:id/notes", write, h.AddNote)
		bookings.DELETE("/:id/notes/:noteId", write, h.DeleteNote)
	}
}
