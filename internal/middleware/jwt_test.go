package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lge_services/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c), "role": c.MustGet("role")})
	})
	r.GET("/admin-only", RequireRoles(models.AdminRoles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := GenerateToken(42, models.RoleCitizen)
	require.NoError(t, err)

	w := get(authedRouter(), "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), models.RoleCitizen)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	w := get(authedRouter(), "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthMalformedToken(t *testing.T) {
	w := get(authedRouter(), "/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 1,
		"role":    models.RoleCitizen,
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	w := get(authedRouter(), "/me", expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthWrongKey(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 1,
		"role":    models.RoleCitizen,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-key"))
	require.NoError(t, err)

	w := get(authedRouter(), "/me", forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	citizen, err := GenerateToken(1, models.RoleCitizen)
	require.NoError(t, err)
	admin, err := GenerateToken(2, models.RoleAdmin)
	require.NoError(t, err)

	r := authedRouter()
	assert.Equal(t, http.StatusForbidden, get(r, "/admin-only", citizen).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin-only", admin).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin-only", "").Code)
}
