package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lge_services/internal/config"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB points the global handle at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db
	return db
}

func performJSON(t *testing.T, r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	pid, err := generateUniquePID(db)
	require.NoError(t, err)

	user := models.User{
		FirstName:    "Ada",
		LastName:     "Obi",
		PhoneNumber:  "08012345678",
		EmailAddress: email,
		PID:          pid,
		Password:     string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestAdmin(t *testing.T, db *gorm.DB, username, role string) models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.Admin{Username: username, PasswordHash: string(hash), AdminRole: role}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func seedService(t *testing.T, db *gorm.DB, name string, price string) models.Service {
	t.Helper()
	service := models.Service{ServiceName: name, ServicePrice: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func citizenToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := middleware.GenerateToken(userID, models.RoleCitizen)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T, adminID uint, role string) string {
	t.Helper()
	token, err := middleware.GenerateToken(adminID, role)
	require.NoError(t, err)
	return token
}
