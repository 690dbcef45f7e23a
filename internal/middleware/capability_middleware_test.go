package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aparthotel/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	allowed bool
	err     error
	got     rbac.EnforceRequest
}

func (f *fakeRBAC) Enforce(req rbac.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func runCapability(svc RBACService, role string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}, RequireCapability(svc, "report", "financial"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestRequireCapability(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		w := runCapability(svc, "manager")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, rbac.RoleManager, svc.got.Role)
		assert.Equal(t, "report", svc.got.Resource)
		assert.Equal(t, "financial", svc.got.Action)
	})

	t.Run("denied", func(t *testing.T) {
		w := runCapability(&fakeRBAC{allowed: false}, "frontoffice")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "report:financial")
	})

	t.Run("no role in context", func(t *testing.T) {
		w := runCapability(&fakeRBAC{allowed: true}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := runCapability(&fakeRBAC{err: errors.New("boom")}, "manager")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequireCapability_WithRealRoleTable(t *testing.T) {
	svc, err := rbac.NewDefaultService()
	assert.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, runCapability(svc, "manager").Code)
	assert.Equal(t, http.StatusForbidden, runCapability(svc, "owner").Code)
}
