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

// ListServices returns the full catalog.
func ListServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch services", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServicePrice returns a single service's current price.
func GetServicePrice(c *gin.Context) {
	var service models.Service
	if err := config.DB.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching service price", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"price": service.ServicePrice})
}

// UpdateServicePrice sets a service's price. Both price-update routes map
// here; the superadmin requirement is enforced by the policy table at the
// gate.
func UpdateServicePrice(c *gin.Context) {
	var body struct {
		ServicePrice decimal.Decimal `json:"servicePrice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	res := config.DB.Model(&models.Service{}).Where("id = ?", c.Param("id")).Update("service_price", body.ServicePrice)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update service price", "error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service price updated successfully"})
}
