package damagereport_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aparthotel/internal/damagereport"
	damageMock "aparthotel/internal/damagereport/mock"
	"aparthotel/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupHandler(t *testing.T, role, propertyGroupID string) (*damageMock.MockService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	ctrl := gomock.NewController(t)
	svc := damageMock.NewMockService(ctrl)
	h := damagereport.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.NewString())
		c.Set("role", role)
		c.Set("company_id", uuid.NewString())
		c.Set("property_group_id", propertyGroupID)
		c.Next()
	})
	r.POST("/damage-reports", h.Create)
	r.GET("/damage-reports", h.GetAll)
	r.PATCH("/damage-reports/:id/status", h.UpdateStatus)
	return svc, r
}

func multipartBody(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		fw, err := w.CreateFormFile("image", "lamp.png")
		assert.NoError(t, err)
		_, err = fw.Write(image)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestDamageReportHandler_Create(t *testing.T) {
	fields := map[string]string{"unitNumber": "101", "owner": "Maria", "description": "Broken lamp", "date": "2025-06-03"}

	t.Run("image is passed through", func(t *testing.T) {
		svc, r := setupHandler(t, "housekeeping", uuid.NewString())
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ context.Context, _ damagereport.Actor, req damagereport.CreateDamageReportRequest, img *damagereport.Image) (damagereport.DamageReportResponse, error) {
				assert.Equal(t, "101", req.UnitNumber)
				assert.Equal(t, "lamp.png", img.Filename)
				data, _ := io.ReadAll(img.Body)
				assert.Equal(t, pngHeader, string(data))
				return damagereport.DamageReportResponse{ID: "d-1", Status: "open"}, nil
			})

		body, contentType := multipartBody(t, fields, []byte(pngHeader))
		req := httptest.NewRequest(http.MethodPost, "/damage-reports", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing description", func(t *testing.T) {
		_, r := setupHandler(t, "housekeeping", uuid.NewString())

		body, contentType := multipartBody(t, map[string]string{"unitNumber": "101", "date": "2025-06-03"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/damage-reports", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDamageReportHandler_GetAll(t *testing.T) {
	pg := uuid.NewString()
	svc, r := setupHandler(t, "owner", pg)
	svc.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, actor damagereport.Actor) ([]damagereport.DamageReportResponse, error) {
			assert.Equal(t, pg, actor.PropertyGroupID)
			return []damagereport.DamageReportResponse{{ID: "d-1"}}, nil
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/damage-reports", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDamageReportHandler_UpdateStatus(t *testing.T) {
	_, r := setupHandler(t, "manager", "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/damage-reports/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"closed"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
