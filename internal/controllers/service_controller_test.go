package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lge_services/internal/config"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

func serviceRouter() *gin.Engine {
	r := gin.New()
	r.GET("/services", ListServices)
	r.GET("/services/:id/price", GetServicePrice)
	priced := r.Group("/services", middleware.RequireRoles(models.AdminRoles...), middleware.Authorize())
	priced.PATCH("/:id/price", UpdateServicePrice)
	return r
}

func TestListServices(t *testing.T) {
	db := setupTestDB(t)
	seedService(t, db, models.ServiceDeathCertificate, "5000.00")
	seedService(t, db, models.ServiceStreetRegistration, "800.00")
	r := serviceRouter()

	w := performJSON(t, r, http.MethodGet, "/services", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["services"], 2)
}

func TestGetServicePrice(t *testing.T) {
	db := setupTestDB(t)
	service := seedService(t, db, models.ServiceDeathCertificate, "5000.00")
	r := serviceRouter()

	w := performJSON(t, r, http.MethodGet, fmt.Sprintf("/services/%d/price", service.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	price, ok := decodeBody(t, w)["price"].(string)
	require.True(t, ok)
	assert.True(t, mustDecimal(t, price).Equal(mustDecimal(t, "5000.00")))

	w = performJSON(t, r, http.MethodGet, "/services/9999/price", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateServicePriceSuperAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	super := createTestAdmin(t, db, "root", models.RoleSuperAdmin)
	bursar := createTestAdmin(t, db, "bursar", models.RoleBursaryAdmin)
	service := seedService(t, db, models.ServiceDeathCertificate, "5000.00")
	r := serviceRouter()
	path := fmt.Sprintf("/services/%d/price", service.ID)

	w := performJSON(t, r, http.MethodPatch, path,
		gin.H{"servicePrice": "7500.00"}, adminToken(t, bursar.ID, models.RoleBursaryAdmin))
	require.Equal(t, http.StatusForbidden, w.Code)

	// Price must be untouched after the refused update
	var unchanged models.Service
	require.NoError(t, config.DB.First(&unchanged, service.ID).Error)
	assert.True(t, unchanged.ServicePrice.Equal(mustDecimal(t, "5000.00")))

	w = performJSON(t, r, http.MethodPatch, path,
		gin.H{"servicePrice": "7500.00"}, adminToken(t, super.ID, models.RoleSuperAdmin))
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Service
	require.NoError(t, config.DB.First(&updated, service.ID).Error)
	assert.True(t, updated.ServicePrice.Equal(mustDecimal(t, "7500.00")))

	// And the public read reflects the change
	w = performJSON(t, r, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	price := decodeBody(t, w)["price"].(string)
	assert.True(t, mustDecimal(t, price).Equal(mustDecimal(t, "7500.00")))
}

func TestUpdateServicePriceMissingService(t *testing.T) {
	db := setupTestDB(t)
	super := createTestAdmin(t, db, "root", models.RoleSuperAdmin)
	r := serviceRouter()

	w := performJSON(t, r, http.MethodPatch, "/services/9999/price",
		gin.H{"servicePrice": "7500.00"}, adminToken(t, super.ID, models.RoleSuperAdmin))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
