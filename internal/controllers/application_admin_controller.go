package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lge_services/internal/config"
	"lge_services/internal/models"
)

// transition moves one row's status column to a fixed value. Every admin
// review action funnels through here so no endpoint can set an arbitrary
// status.
func transition(c *gin.Context, model interface{}, column, value, okMsg, missingMsg string) {
	res := config.DB.Model(model).Where("id = ?", c.Param("id")).Update(column, value)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status", "error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": missingMsg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMsg})
}

func removeRow(c *gin.Context, model interface{}, okMsg, missingMsg string) {
	res := config.DB.Unscoped().Delete(model, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete", "error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": missingMsg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMsg})
}

// ViewAllApplicationsAdmin lists every application in the system across all
// six tables for the admin dashboard.
func ViewAllApplicationsAdmin(c *gin.Context) {
	apps, err := applicationSummaries(nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch all applications for admin", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// Death certificates

func ListDeathCertificates(c *gin.Context) {
	var apps []models.DeathCertificateApplication
	if err := config.DB.Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications", "error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(apps))
	for _, a := range apps {
		out = append(out, gin.H{
			"id":            a.ID,
			"deceased_name": a.DeceasedFirstName + " " + a.DeceasedLastName,
			"created_at":    a.ApplicationDate,
			"status":        a.Status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"applications": out})
}

func ApproveDeathCertificate(c *gin.Context) {
	transition(c, &models.DeathCertificateApplication{}, "status", models.StatusApproved,
		"Application approved successfully", "Application not found")
}

func RejectDeathCertificate(c *gin.Context) {
	transition(c, &models.DeathCertificateApplication{}, "status", models.StatusRejected,
		"Application rejected successfully", "Application not found")
}

func DeleteDeathCertificate(c *gin.Context) {
	removeRow(c, &models.DeathCertificateApplication{}, "Application deleted successfully", "Application not found")
}

// Local-government IDs

func ListLocalGovernmentIDs(c *gin.Context) {
	var apps []models.LocalGovernmentIDApplication
	if err := config.DB.Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func ApproveLocalGovernmentID(c *gin.Context) {
	transition(c, &models.LocalGovernmentIDApplication{}, "status", models.StatusApproved,
		"Application approved successfully", "Application not found")
}

func RejectLocalGovernmentID(c *gin.Context) {
	transition(c, &models.LocalGovernmentIDApplication{}, "status", models.StatusRejected,
		"Application rejected successfully", "Application not found")
}

func DeleteLocalGovernmentID(c *gin.Context) {
	removeRow(c, &models.LocalGovernmentIDApplication{}, "Application deleted successfully", "Application not found")
}

// Club/association registrations

func ListClubRegistrations(c *gin.Context) {
	var apps []models.ClubAssociationRegistration
	if err := config.DB.Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func ApproveClubRegistration(c *gin.Context) {
	transition(c, &models.ClubAssociationRegistration{}, "status", models.StatusApproved,
		"Application approved successfully", "Application not found")
}

func RejectClubRegistration(c *gin.Context) {
	transition(c, &models.ClubAssociationRegistration{}, "status", models.StatusRejected,
		"Application rejected successfully", "Application not found")
}

func DeleteClubRegistration(c *gin.Context) {
	removeRow(c, &models.ClubAssociationRegistration{}, "Application deleted successfully", "Application not found")
}

// Waste-management fee payments; their status lives in payment_status.

func ListWasteFeePayments(c *gin.Context) {
	var apps []models.WasteManagementFeePayment
	if err := config.DB.Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func ApproveWasteFeePayment(c *gin.Context) {
	transition(c, &models.WasteManagementFeePayment{}, "payment_status", models.StatusApproved,
		"Payment approved successfully", "Payment not found")
}

func RejectWasteFeePayment(c *gin.Context) {
	transition(c, &models.WasteManagementFeePayment{}, "payment_status", models.StatusRejected,
		"Payment rejected successfully", "Payment not found")
}

func DeleteWasteFeePayment(c *gin.Context) {
	removeRow(c, &models.WasteManagementFeePayment{}, "Payment deleted successfully", "Payment not found")
}

// Street registrations

func ListStreetRegistrations(c *gin.Context) {
	var apps []models.StreetRegistration
	if err := config.DB.Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func ApproveStreetRegistration(c *gin.Context) {
	transition(c, &models.StreetRegistration{}, "status", models.StatusApproved,
		"Street registration approved successfully", "Registration not found")
}

func RejectStreetRegistration(c *gin.Context) {
	transition(c, &models.StreetRegistration{}, "status", models.StatusRejected,
		"Street registration rejected successfully", "Registration not found")
}

func DeleteStreetRegistration(c *gin.Context) {
	removeRow(c, &models.StreetRegistration{}, "Street registration deleted successfully", "Registration not found")
}

// Business registrations

func ListBusinessRegistrations(c *gin.Context) {
	var apps []models.BusinessRegistration
	if err := config.DB.Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func ApproveBusinessRegistration(c *gin.Context) {
	transition(c, &models.BusinessRegistration{}, "status", models.StatusApproved,
		"Business registration approved successfully", "Registration not found")
}

func RejectBusinessRegistration(c *gin.Context) {
	transition(c, &models.BusinessRegistration{}, "status", models.StatusRejected,
		"Business registration rejected successfully", "Registration not found")
}

func DeleteBusinessRegistration(c *gin.Context) {
	removeRow(c, &models.BusinessRegistration{}, "Business registration deleted successfully", "Registration not found")
}
