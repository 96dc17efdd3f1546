package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

func pdfRouter() *gin.Engine {
	r := gin.New()
	apps := r.Group("/applications", middleware.RequireRoles(models.RoleCitizen))
	apps.GET("/generate-pdf/:applicationType/:id", GeneratePDF)
	return r
}

func TestGeneratePDFDeathCertificate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "applicant@example.com")
	service := seedService(t, db, models.ServiceDeathCertificate, "5000.00")
	app := models.DeathCertificateApplication{
		UserID:            user.ID,
		ServiceID:         service.ID,
		DeceasedFirstName: "John",
		DeceasedLastName:  "Doe",
		DateOfDeath:       time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		PlaceOfDeath:      "Ikeja General Hospital",
	}
	require.NoError(t, db.Create(&app).Error)
	r := pdfRouter()

	w := performJSON(t, r, http.MethodGet,
		fmt.Sprintf("/applications/generate-pdf/death-certificate/%d", app.ID), nil, citizenToken(t, user.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, len(w.Body.Bytes()) > 4 && string(w.Body.Bytes()[:4]) == "%PDF")
}

func TestGeneratePDFUnknownType(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "applicant@example.com")
	r := pdfRouter()

	w := performJSON(t, r, http.MethodGet, "/applications/generate-pdf/parking-permit/1", nil, citizenToken(t, user.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePDFMissingRow(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "applicant@example.com")
	r := pdfRouter()

	w := performJSON(t, r, http.MethodGet, "/applications/generate-pdf/street-registration/9999", nil, citizenToken(t, user.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
