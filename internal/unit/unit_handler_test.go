package unit_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/unit"
	unitMock "aparthotel/internal/unit/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupHandler(t *testing.T, role, propertyGroupID string) (*unitMock.MockService, *gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	ctrl := gomock.NewController(t)
	svc := unitMock.NewMockService(ctrl)
	h := unit.NewHandler(svc, zap.NewNop())
	companyID := uuid.New().String()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		c.Set("role", role)
		c.Set("company_id", companyID)
		c.Set("property_group_id", propertyGroupID)
		c.Next()
	})
	r.POST("/units/create", h.Create)
	r.GET("/units", h.GetAll)
	r.GET("/units/:unitId", h.GetByID)
	return svc, r, companyID
}

func TestUnitHandler_Create_Validation(t *testing.T) {
	_, r, _ := setupHandler(t, "manager", "")

	body := `{"unitNumber":"101","beds":0,"pricePerNight":100,"propertyGroupId":"` + uuid.New().String() + `"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/units/create", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestUnitHandler_GetAll(t *testing.T) {
	t.Run("manager filter is honored", func(t *testing.T) {
		svc, r, companyID := setupHandler(t, "manager", "")
		svc.EXPECT().GetAll(gomock.Any(), companyID, "pg-9").Return([]unit.UnitResponse{{ID: "u-1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/units?propertyGroupId=pg-9", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"u-1"`)
	})

	t.Run("scoped role is pinned to own group", func(t *testing.T) {
		svc, r, companyID := setupHandler(t, "housekeeping", "pg-own")
		svc.EXPECT().GetAll(gomock.Any(), companyID, "pg-own").Return([]unit.UnitResponse{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/units?propertyGroupId=pg-other", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUnitHandler_GetByID_OtherPropertyHidden(t *testing.T) {
	svc, r, companyID := setupHandler(t, "frontoffice", "pg-own")
	id := uuid.New().String()
	svc.EXPECT().GetByID(gomock.Any(), companyID, id).
		Return(unit.UnitResponse{ID: id, PropertyGroupID: "pg-other"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/units/"+id, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
