package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lge_services/internal/models"
)

func policyRouter() *gin.Engine {
	r := gin.New()
	gated := r.Group("/admin", RequireRoles(models.AdminRoles...), Authorize())
	gated.POST("/clusters/create", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	gated.POST("/users/:id/update-role", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	gated.GET("/clusters/list", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func post(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorizeSuperAdminOnlyRoutes(t *testing.T) {
	super, err := GenerateToken(1, models.RoleSuperAdmin)
	require.NoError(t, err)
	plain, err := GenerateToken(2, models.RoleAdmin)
	require.NoError(t, err)

	r := policyRouter()
	assert.Equal(t, http.StatusOK, post(r, "/admin/clusters/create", super).Code)
	assert.Equal(t, http.StatusForbidden, post(r, "/admin/clusters/create", plain).Code)

	// Parameterized paths match on the route pattern, not the raw URL
	assert.Equal(t, http.StatusOK, post(r, "/admin/users/7/update-role", super).Code)
	assert.Equal(t, http.StatusForbidden, post(r, "/admin/users/7/update-role", plain).Code)
}

func TestAuthorizeUnlistedRoutePassesAnyAdmin(t *testing.T) {
	for _, role := range models.AdminRoles {
		token, err := GenerateToken(1, role)
		require.NoError(t, err)
		w := get(policyRouter(), "/admin/clusters/list", token)
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}

func TestAuthorizeCitizenNeverPassesGate(t *testing.T) {
	token, err := GenerateToken(1, models.RoleCitizen)
	require.NoError(t, err)
	w := get(policyRouter(), "/admin/clusters/list", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
