package damagereport

import (
	"errors"
	"net/http"

	damagereporterrors "aparthotel/internal/damagereport/errors"
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"
	"aparthotel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxFormSize leaves room for the text fields around the image.
const maxFormSize = MaxImageSize + 1<<20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("damagereport.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("damagereport.handler")
	}
	return &Handler{service: service, logger: l}
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
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormSize)

	var req CreateDamageReportRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.FromError(c, damagereporterrors.ErrImageTooLarge)
			return
		}
		response.BindError(c, err)
		return
	}

	var image *Image
	file, header, err := c.Request.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		response.BindError(c, err)
		return
	default:
		defer file.Close()
		image = &Image{Filename: header.Filename, Size: header.Size, Body: file}
	}

	resp, err := h.service.Create(c.Request.Context(), actorFrom(c), req, image)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), actorFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), req)
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

	response.Success(c, http.StatusOK, gin.H{"message": "Damage report deleted"}, nil)
}
