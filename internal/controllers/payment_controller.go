package controllers

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lge_services/internal/config"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
	"lge_services/internal/paystack"
)

// gateway is lazily built from the environment; tests swap it for a client
// pointed at a stub server.
var gateway *paystack.Client

func gatewayClient() *paystack.Client {
	if gateway == nil {
		gateway = paystack.NewClient()
	}
	return gateway
}

// CreatePayment records a pending payment against a registration. Creating
// the payment moves the referenced death-certificate application to
// "awaiting admin approval"; other application types keep their status.
func CreatePayment(c *gin.Context) {
	var input struct {
		RegistrationID       uint            `json:"registrationId" binding:"required"`
		ServiceID            uint            `json:"service_id" binding:"required"`
		PaymentAmount        decimal.Decimal `json:"payment_amount" binding:"required"`
		PaymentMethod        string          `json:"payment_method" binding:"required"`
		TransactionReference string          `json:"transaction_reference"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	payment := models.Payment{
		ServiceID:            input.ServiceID,
		UserID:               middleware.CurrentUserID(c),
		RegistrationID:       input.RegistrationID,
		PaymentAmount:        input.PaymentAmount,
		PaymentMethod:        input.PaymentMethod,
		TransactionReference: input.TransactionReference,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment record", "error": err.Error()})
		return
	}

	if err := config.DB.Model(&models.DeathCertificateApplication{}).
		Where("id = ?", input.RegistrationID).
		Update("status", models.StatusAwaitingApproval).Error; err != nil {
		logrus.WithError(err).WithField("registration_id", input.RegistrationID).
			Warn("payment created but registration status update failed")
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Payment record created successfully", "paymentId": payment.ID})
}

// UpdatePaymentStatus sets a payment's status from the fixed vocabulary.
func UpdatePaymentStatus(c *gin.Context) {
	var body struct {
		PaymentStatus string `json:"payment_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}
	if !slices.Contains(models.PaymentStatuses, body.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment status"})
		return
	}

	res := config.DB.Model(&models.Payment{}).Where("id = ?", c.Param("id")).Update("payment_status", body.PaymentStatus)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating payment status", "error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment record not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
}

// GetPayment returns one payment row.
func GetPayment(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching payment details", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// VerifyPayment asks the gateway for a transaction's verdict. It reports
// the verdict only; reconciling the local payment row stays a manual step.
func VerifyPayment(c *gin.Context) {
	var body struct {
		Reference string `json:"reference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "message": "Payment reference is required"})
		return
	}

	result, err := gatewayClient().VerifyTransaction(c.Request.Context(), body.Reference)
	if err != nil {
		logrus.WithError(err).WithField("reference", body.Reference).Error("gateway verification failed")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Error verifying payment", "error": err.Error()})
		return
	}

	if result.Status && result.Data.Status == "success" {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Payment verified", "data": result.Data})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Payment verification failed", "paystackData": result})
}
