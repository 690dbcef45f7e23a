package report

import (
	"net/http"

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
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func bindGeneral(c *gin.Context) (GeneralReportQuery, bool) {
	var query GeneralReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return query, false
	}

	p := middleware.CurrentUser(c)
	if rbac.Role(p.Role).ScopedToProperty() {
		query.PropertyGroupID = p.PropertyGroupID
	}
	return query, true
}

func (h *Handler) General(c *gin.Context) {
	query, ok := bindGeneral(c)
	if !ok {
		return
	}

	resp, err := h.service.General(c.Request.Context(), c.GetString("company_id"), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportGeneral(c *gin.Context) {
	query, ok := bindGeneral(c)
	if !ok {
		return
	}

	out, err := h.service.ExportGeneral(c.Request.Context(), c.GetString("company_id"), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Attachment(c, out.Filename, out.ContentType, out.Data)
}

func (h *Handler) CreateFinancial(c *gin.Context) {
	var req CreateFinancialReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	p := middleware.CurrentUser(c)
	resp, err := h.service.CreateFinancial(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) PreviewFinancial(c *gin.Context) {
	var query PreviewFinancialReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.PreviewFinancial(c.Request.Context(), c.GetString("company_id"), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListFinancial(c *gin.Context) {
	var query ListFinancialReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.ListFinancial(c.Request.Context(), c.GetString("company_id"), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Paginate(c, resp)
}

func (h *Handler) GetFinancial(c *gin.Context) {
	resp, err := h.service.GetFinancial(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportFinancial(c *gin.Context) {
	out, err := h.service.ExportFinancial(c.Request.Context(), c.GetString("company_id"), c.Param("id"), c.Query("format"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Attachment(c, out.Filename, out.ContentType, out.Data)
}
