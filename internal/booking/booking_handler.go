package booking

import (
	"net/http"

	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"
	"aparthotel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	return NewHandlerWithRedis(service, nil, logger...)
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("booking.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func actorFrom(c *gin.Context) Actor {
	p := middleware.CurrentUser(c)
	actor := Actor{UserID: p.UserID, CompanyID: p.CompanyID}
	if rbac.Role(p.Role).ScopedToProperty() {
		actor.PropertyGroupID = p.PropertyGroupID
	}
	return actor
}

func (h *Handler) Create(c *gin.Context) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	middleware.StoreIdempotentResult(c, h.rdb, http.StatusCreated, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking deleted"}, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var query ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.List(c.Request.Context(), actorFrom(c), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, resp)
}

func (h *Handler) GetByUnit(c *gin.Context) {
	resp, err := h.service.ListByUnit(c.Request.Context(), actorFrom(c), c.Param("unitId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, resp)
}

func (h *Handler) GetByPropertyGroup(c *gin.Context) {
	resp, err := h.service.ListByPropertyGroup(c.Request.Context(), actorFrom(c), c.Param("propertyGroupId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, resp)
}

func (h *Handler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.AddNote(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) DeleteNote(c *gin.Context) {
	resp, err := h.service.DeleteNote(c.Request.Context(), actorFrom(c), c.Param("id"), c.Param("noteId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// General is mounted outside the auth group.
func (h *Handler) General(c *gin.Context) {
	var query GeneralBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.General(c.Request.Context(), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
