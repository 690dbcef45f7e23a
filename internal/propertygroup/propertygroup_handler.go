package propertygroup

import (
	"net/http"

	propertygrouperrors "aparthotel/internal/propertygroup/errors"
	"aparthotel/internal/middleware"
	"aparthotel/internal/rbac"
	"aparthotel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("propertygroup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("propertygroup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req PropertyGroupRequest
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

func (h *Handler) GetByCompany(c *gin.Context) {
	p := middleware.CurrentUser(c)
	if c.Param("companyId") != p.CompanyID {
		response.FromError(c, propertygrouperrors.ErrCompanyMismatch)
		return
	}

	scope := ""
	if rbac.Role(p.Role).ScopedToProperty() {
		scope = p.PropertyGroupID
	}

	res, err := h.service.GetAllByCompany(c.Request.Context(), p.CompanyID, scope)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	p := middleware.CurrentUser(c)
	id := c.Param("id")
	if rbac.Role(p.Role).ScopedToProperty() && id != p.PropertyGroupID {
		response.FromError(c, propertygrouperrors.ErrPropertyGroupNotFound)
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), p.CompanyID, id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req PropertyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Property group deleted"}, nil)
}
