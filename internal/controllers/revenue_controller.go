package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lge_services/internal/config"
	"lge_services/internal/models"
)

// wasteFeesRevenue sums completed waste-fee payment amounts.
func wasteFeesRevenue() (decimal.Decimal, error) {
	var total decimal.Decimal
	row := config.DB.Model(&models.WasteManagementFeePayment{}).
		Where("payment_status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(payment_amount), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// countedRevenue multiplies the completed-application count by the
// service's current catalog price. An unpriced service contributes zero.
func countedRevenue(model interface{}, serviceName string) (decimal.Decimal, error) {
	var count int64
	if err := config.DB.Model(model).Where("status = ?", models.StatusCompleted).Count(&count).Error; err != nil {
		return decimal.Zero, err
	}

	service, err := resolveService(serviceName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return service.ServicePrice.Mul(decimal.NewFromInt(count)), nil
}

// GetRevenueData computes a fresh per-service revenue snapshot.
func GetRevenueData(c *gin.Context) {
	fail := func(err error) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch revenue data", "error": err.Error()})
	}

	wasteFees, err := wasteFeesRevenue()
	if err != nil {
		fail(err)
		return
	}
	deathCert, err := countedRevenue(&models.DeathCertificateApplication{}, models.ServiceDeathCertificate)
	if err != nil {
		fail(err)
		return
	}
	localGovID, err := countedRevenue(&models.LocalGovernmentIDApplication{}, models.ServiceLocalGovernmentID)
	if err != nil {
		fail(err)
		return
	}
	clubReg, err := countedRevenue(&models.ClubAssociationRegistration{}, models.ServiceClubRegistration)
	if err != nil {
		fail(err)
		return
	}
	streetReg, err := countedRevenue(&models.StreetRegistration{}, models.ServiceStreetRegistration)
	if err != nil {
		fail(err)
		return
	}
	businessReg, err := countedRevenue(&models.BusinessRegistration{}, models.ServiceBusinessRegistration)
	if err != nil {
		fail(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revenueData": gin.H{
		"wasteManagementFees":         wasteFees,
		"deathCertificate":            deathCert,
		"localGovId":                  localGovID,
		"clubAssociationRegistration": clubReg,
		"streetRegistration":          streetReg,
		"businessRegistration":        businessReg,
	}})
}

type serviceRevenueRow struct {
	ServiceName  string          `json:"service_name"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type recentPaymentRow struct {
	ID             uint            `json:"id"`
	RegistrationID uint            `json:"registration_id"`
	ServiceName    string          `json:"service_name"`
	PaymentAmount  decimal.Decimal `json:"payment_amount"`
	PaymentDate    string          `json:"payment_date"`
	PaymentStatus  string          `json:"payment_status"`
}

// PaymentsDashboard reports revenue grouped by service, the overall total
// and the ten most recent payments.
func PaymentsDashboard(c *gin.Context) {
	var serviceRevenue []serviceRevenueRow
	if err := config.DB.Table("payments").
		Select("services.service_name AS service_name, SUM(payments.payment_amount) AS total_revenue").
		Joins("JOIN services ON payments.service_id = services.id").
		Group("services.service_name").
		Scan(&serviceRevenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payments dashboard", "error": err.Error()})
		return
	}

	var totalRevenue decimal.Decimal
	row := config.DB.Model(&models.Payment{}).Select("COALESCE(SUM(payment_amount), 0)").Row()
	if err := row.Scan(&totalRevenue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payments dashboard", "error": err.Error()})
		return
	}

	var recent []recentPaymentRow
	if err := config.DB.Table("payments").
		Select("payments.id, payments.registration_id, services.service_name AS service_name, payments.payment_amount, payments.payment_date, payments.payment_status").
		Joins("JOIN services ON payments.service_id = services.id").
		Order("payments.payment_date DESC").
		Limit(10).
		Scan(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payments dashboard", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"serviceRevenue": serviceRevenue,
		"totalRevenue":   totalRevenue,
		"recentPayments": recent,
	})
}
