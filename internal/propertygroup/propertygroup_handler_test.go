package propertygroup_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aparthotel/internal/propertygroup"
	mock_propertygroup "aparthotel/internal/propertygroup/mock"
	"aparthotel/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupHandler(t *testing.T, role, companyID, propertyGroupID string) (*mock_propertygroup.MockService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	ctrl := gomock.NewController(t)
	svc := mock_propertygroup.NewMockService(ctrl)
	h := propertygroup.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		c.Set("role", role)
		c.Set("company_id", companyID)
		c.Set("property_group_id", propertyGroupID)
		c.Next()
	})
	r.POST("/property-group/create", h.Create)
	r.GET("/property-group/company/:companyId", h.GetByCompany)
	r.GET("/property-group/:id", h.GetByID)
	return svc, r
}

func TestPropertyGroupHandler_Create(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("created", func(t *testing.T) {
		svc, r := setupHandler(t, "manager", companyID, "")
		svc.EXPECT().Create(gomock.Any(), companyID, gomock.Any()).
			Return(propertygroup.PropertyGroupResponse{ID: "pg-1", Name: "Sea View"}, nil)

		body := `{"name":"Sea View","location":"Lisbon","address":"Rua 1","type":"hotel","companyShare":30,"ownerShare":70}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/property-group/create", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"pg-1"`)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, r := setupHandler(t, "manager", companyID, "")

		body := `{"name":"X","location":"Y","type":"castle","companyShare":30,"ownerShare":70}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/property-group/create", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPropertyGroupHandler_GetByCompany(t *testing.T) {
	companyID := uuid.New().String()
	groupID := uuid.New().String()

	t.Run("other company is forbidden", func(t *testing.T) {
		_, r := setupHandler(t, "manager", companyID, "")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/property-group/company/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("scoped role narrows to own group", func(t *testing.T) {
		svc, r := setupHandler(t, "frontoffice", companyID, groupID)
		svc.EXPECT().GetAllByCompany(gomock.Any(), companyID, groupID).
			Return([]propertygroup.PropertyGroupResponse{{ID: groupID}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/property-group/company/"+companyID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), groupID)
	})
}

func TestPropertyGroupHandler_GetByID_OtherGroupHidden(t *testing.T) {
	companyID := uuid.New().String()
	_, r := setupHandler(t, "housekeeping", companyID, uuid.New().String())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/property-group/"+uuid.New().String(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
