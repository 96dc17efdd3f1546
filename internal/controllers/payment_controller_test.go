package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lge_services/internal/config"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
	"lge_services/internal/paystack"
)

func paymentRouter() *gin.Engine {
	r := gin.New()
	citizen := r.Group("/payments", middleware.RequireRoles(models.RoleCitizen))
	citizen.POST("/payments", CreatePayment)
	citizen.GET("/payments/:id", GetPayment)
	citizen.POST("/api/verify-payment", VerifyPayment)
	admin := r.Group("/payments", middleware.RequireRoles(models.AdminRoles...), middleware.Authorize())
	admin.PATCH("/payments/:id/status", UpdatePaymentStatus)
	return r
}

// stubGateway points the package gateway at srv for the test's duration.
func stubGateway(t *testing.T, srv *httptest.Server) {
	t.Helper()
	t.Setenv("PAYSTACK_BASE_URL", srv.URL)
	gateway = paystack.NewClient()
	t.Cleanup(func() { gateway = nil })
}

func TestCreatePaymentFlipsRegistrationStatus(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com")
	service := seedService(t, db, models.ServiceDeathCertificate, "5000.00")
	app := models.DeathCertificateApplication{UserID: user.ID, ServiceID: service.ID}
	require.NoError(t, db.Create(&app).Error)
	r := paymentRouter()

	w := performJSON(t, r, http.MethodPost, "/payments/payments", gin.H{
		"registrationId": app.ID,
		"service_id":     service.ID,
		"payment_amount": "5000.00",
		"payment_method": "card",
	}, citizenToken(t, user.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	require.NotNil(t, body["paymentId"])

	var payment models.Payment
	require.NoError(t, config.DB.First(&payment).Error)
	assert.Equal(t, user.ID, payment.UserID)
	assert.Equal(t, app.ID, payment.RegistrationID)
	assert.Equal(t, "pending", payment.PaymentStatus)
	assert.True(t, payment.PaymentAmount.Equal(mustDecimal(t, "5000.00")))

	var reloaded models.DeathCertificateApplication
	require.NoError(t, config.DB.First(&reloaded, app.ID).Error)
	assert.Equal(t, models.StatusAwaitingApproval, reloaded.Status)
}

func TestCreatePaymentValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com")
	r := paymentRouter()

	w := performJSON(t, r, http.MethodPost, "/payments/payments", gin.H{"payment_method": "card"}, citizenToken(t, user.ID))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdatePaymentStatusVocabulary(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db, "bursar", models.RoleBursaryAdmin)
	user := createTestUser(t, db, "payer@example.com")
	service := seedService(t, db, models.ServiceDeathCertificate, "5000.00")
	payment := models.Payment{ServiceID: service.ID, UserID: user.ID, RegistrationID: 1}
	require.NoError(t, db.Create(&payment).Error)
	r := paymentRouter()
	token := adminToken(t, admin.ID, models.RoleBursaryAdmin)
	path := fmt.Sprintf("/payments/payments/%d/status", payment.ID)

	w := performJSON(t, r, http.MethodPatch, path, gin.H{"payment_status": "settled"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment status")

	w = performJSON(t, r, http.MethodPatch, path, gin.H{"payment_status": "approved"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Payment
	require.NoError(t, config.DB.First(&reloaded, payment.ID).Error)
	assert.Equal(t, "approved", reloaded.PaymentStatus)

	w = performJSON(t, r, http.MethodPatch, "/payments/payments/9999/status", gin.H{"payment_status": "approved"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPayment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com")
	service := seedService(t, db, models.ServiceDeathCertificate, "5000.00")
	payment := models.Payment{ServiceID: service.ID, UserID: user.ID, RegistrationID: 7}
	require.NoError(t, db.Create(&payment).Error)
	r := paymentRouter()
	token := citizenToken(t, user.ID)

	w := performJSON(t, r, http.MethodGet, fmt.Sprintf("/payments/payments/%d", payment.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	row := decodeBody(t, w)["payment"].(map[string]interface{})
	assert.EqualValues(t, 7, row["registration_id"])

	w = performJSON(t, r, http.MethodGet, "/payments/payments/9999", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyPaymentSuccess(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/transaction/verify/ref-123", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":true,"message":"Verification successful","data":{"status":"success","reference":"ref-123","amount":500000,"currency":"NGN"}}`)
	}))
	defer srv.Close()
	stubGateway(t, srv)

	r := paymentRouter()
	w := performJSON(t, r, http.MethodPost, "/payments/api/verify-payment",
		gin.H{"reference": "ref-123"}, citizenToken(t, user.ID))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ref-123", data["reference"])
}

func TestVerifyPaymentFailedTransaction(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":true,"message":"Verification successful","data":{"status":"failed","reference":"ref-456"}}`)
	}))
	defer srv.Close()
	stubGateway(t, srv)

	r := paymentRouter()
	w := performJSON(t, r, http.MethodPost, "/payments/api/verify-payment",
		gin.H{"reference": "ref-456"}, citizenToken(t, user.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Payment verification failed")
}

func TestVerifyPaymentMissingReference(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com")
	r := paymentRouter()

	w := performJSON(t, r, http.MethodPost, "/payments/api/verify-payment", gin.H{}, citizenToken(t, user.ID))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
