package unit

import (
	"net/http"

	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"
	"aparthotel/internal/shared/response"
	uniterrors "aparthotel/internal/unit/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("unit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("unit.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

// GetAll lists units. Property-scoped roles only ever see their own group,
// whatever propertyGroupId they ask for.
func (h *Handler) GetAll(c *gin.Context) {
	p := middleware.CurrentUser(c)

	propertyGroupID := c.Query("propertyGroupId")
	if rbac.Role(p.Role).ScopedToProperty() {
		propertyGroupID = p.PropertyGroupID
	}

	res, err := h.service.GetAll(c.Request.Context(), p.CompanyID, propertyGroupID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, res)
}

func (h *Handler) GetByID(c *gin.Context) {
	p := middleware.CurrentUser(c)

	res, err := h.service.GetByID(c.Request.Context(), p.CompanyID, c.Param("unitId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if rbac.Role(p.Role).ScopedToProperty() && res.PropertyGroupID != p.PropertyGroupID {
		response.FromError(c, uniterrors.ErrUnitNotFound)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), c.Param("unitId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("unitId")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Unit deleted"}, nil)
}
