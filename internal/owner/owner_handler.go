package owner

import (
	"net/http"

	"aparthotel/internal/middleware"
	"aparthotel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("owner.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("owner.handler")
	}
	return &Handler{service: service, logger: l}
}

func actorFrom(c *gin.Context) Actor {
	p := middleware.CurrentUser(c)
	return Actor{UserID: p.UserID, CompanyID: p.CompanyID, Role: p.Role}
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context(), actorFrom(c), c.Param("ownerId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Apartments(c *gin.Context) {
	resp, err := h.service.Apartments(c.Request.Context(), actorFrom(c), c.Param("ownerId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, resp)
}

func (h *Handler) Reports(c *gin.Context) {
	resp, err := h.service.Reports(c.Request.Context(), actorFrom(c), c.Param("ownerId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, resp)
}

func (h *Handler) Bookings(c *gin.Context) {
	resp, err := h.service.Bookings(c.Request.Context(), actorFrom(c), c.Param("ownerId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, resp)
}

func (h *Handler) ListNotes(c *gin.Context) {
	resp, err := h.service.ListNotes(c.Request.Context(), actorFrom(c), c.Param("ownerId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.AddNote(c.Request.Context(), actorFrom(c), c.Param("ownerId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) DeleteNote(c *gin.Context) {
	err := h.service.DeleteNote(c.Request.Context(), actorFrom(c), c.Param("ownerId"), c.Param("noteId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Note deleted"}, nil)
}
