package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aparthotel/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  *PaginationMeta `json:"meta"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func run(t *testing.T, target string, h gin.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestFromError(t *testing.T) {
	w, env := run(t, "/x", func(c *gin.Context) {
		FromError(c, apperror.New(apperror.CodeConflict, "Unit already booked", http.StatusConflict))
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
	assert.Equal(t, "Unit already booked", env.Error.Message)

	w, env = run(t, "/x", func(c *gin.Context) {
		FromError(c, errors.New("pq: connection refused"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "pq: connection refused", env.Error.Details)
}

func TestBindError(t *testing.T) {
	type req struct {
		GuestEmail string `json:"guestEmail" binding:"required,email"`
	}
	apperror.Init()

	w, env := run(t, "/x", func(c *gin.Context) {
		c.Request.Body = http.NoBody
		var body req
		err := c.ShouldBindJSON(&body)
		BindError(c, err)
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	_, env := run(t, "/x", func(c *gin.Context) { Paginate(c, items) })
	assert.JSONEq(t, `[1,2,3,4,5]`, string(env.Data))
	assert.Nil(t, env.Meta)

	_, env = run(t, "/x?page=2&page_size=2", func(c *gin.Context) { Paginate(c, items) })
	assert.JSONEq(t, `[3,4]`, string(env.Data))
	assert.Equal(t, int64(5), env.Meta.Total)
	assert.Equal(t, 3, env.Meta.TotalPages)

	_, env = run(t, "/x?page=9&page_size=2", func(c *gin.Context) { Paginate(c, items) })
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		Attachment(c, "report-2025-06.pdf", "application/pdf", []byte("%PDF-1.3"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="report-2025-06.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}
