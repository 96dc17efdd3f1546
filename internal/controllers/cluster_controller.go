package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lge_services/internal/config"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

type createClusterInput struct {
	ClusterName string `json:"clusterName" binding:"required"`
	LGA         string `json:"lga" binding:"required"`
	Description string `json:"description"`
	AdminID     *uint  `json:"adminId"`
}

// CreateCluster registers a new cluster, optionally owned by an admin.
func CreateCluster(c *gin.Context) {
	var input createClusterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	var existing int64
	if err := config.DB.Model(&models.Cluster{}).Where("cluster_name = ?", input.ClusterName).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register cluster", "error": err.Error()})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Cluster name already exists"})
		return
	}

	cluster := models.Cluster{
		ClusterName: input.ClusterName,
		LGA:         input.LGA,
		Description: input.Description,
		AdminID:     input.AdminID,
	}
	if err := config.DB.Create(&cluster).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "Cluster name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register cluster", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cluster registered successfully", "clusterId": cluster.ID})
}

// UpdateCluster modifies a cluster's name, LGA and description.
func UpdateCluster(c *gin.Context) {
	var input struct {
		ClusterName string `json:"clusterName" binding:"required"`
		LGA         string `json:"lga" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	res := config.DB.Model(&models.Cluster{}).Where("id = ?", c.Param("id")).Updates(map[string]interface{}{
		"cluster_name": input.ClusterName,
		"lga":          input.LGA,
		"description":  input.Description,
	})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cluster", "error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cluster not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cluster updated successfully"})
}

// ListClusters returns every cluster with its owning admin's username.
func ListClusters(c *gin.Context) {
	var clusters []models.Cluster
	if err := config.DB.Preload("Admin").Find(&clusters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cluster list", "error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(clusters))
	for _, cl := range clusters {
		adminUsername := "Unassigned"
		if cl.Admin != nil {
			adminUsername = cl.Admin.Username
		}
		out = append(out, gin.H{
			"id":            cl.ID,
			"cluster_name":  cl.ClusterName,
			"lga":           cl.LGA,
			"description":   cl.Description,
			"createdAt":     cl.CreatedAt,
			"adminUsername": adminUsername,
		})
	}
	c.JSON(http.StatusOK, gin.H{"clusters": out})
}

// AssignClusters replaces an admin's cluster set. Clusters owned by the
// admin but absent from the new set are released first; every cluster in
// the set is then claimed, last write wins. An empty set clears everything.
func AssignClusters(c *gin.Context) {
	var input struct {
		AdminID    uint    `json:"admin_id" binding:"required"`
		ClusterIDs *[]uint `json:"cluster_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "admin_id and cluster_ids are required", "error": err.Error()})
		return
	}

	ids := *input.ClusterIDs
	if len(ids) > 0 {
		if err := config.DB.Model(&models.Cluster{}).
			Where("admin_id = ? AND id NOT IN ?", input.AdminID, ids).
			Update("admin_id", nil).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error assigning clusters", "error": err.Error()})
			return
		}
		if err := config.DB.Model(&models.Cluster{}).
			Where("id IN ?", ids).
			Update("admin_id", input.AdminID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error assigning clusters", "error": err.Error()})
			return
		}
	} else {
		if err := config.DB.Model(&models.Cluster{}).
			Where("admin_id = ?", input.AdminID).
			Update("admin_id", nil).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error assigning clusters", "error": err.Error()})
			return
		}
	}

	logrus.WithFields(logrus.Fields{"admin_id": input.AdminID, "clusters": ids}).Info("cluster assignment updated")
	c.JSON(http.StatusOK, gin.H{"message": "Clusters assigned successfully"})
}

// UnassignCluster clears a single cluster's owner.
func UnassignCluster(c *gin.Context) {
	var cluster models.Cluster
	if err := config.DB.First(&cluster, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cluster not found"})
		return
	}
	if err := config.DB.Model(&cluster).Update("admin_id", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing cluster assignment", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cluster assignment removed successfully"})
}

// ClusterDashboard returns the caller's clusters and the business
// registrations filed inside them.
func ClusterDashboard(c *gin.Context) {
	adminID := middleware.CurrentUserID(c)

	var clusters []models.Cluster
	if err := config.DB.Where("admin_id = ?", adminID).Find(&clusters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data", "error": err.Error()})
		return
	}

	businessRegistrations := []models.BusinessRegistration{}
	if len(clusters) > 0 {
		ids := make([]uint, 0, len(clusters))
		for _, cl := range clusters {
			ids = append(ids, cl.ID)
		}
		if err := config.DB.Where("cluster_id IN ?", ids).Find(&businessRegistrations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data", "error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"clusters":              clusters,
		"businessRegistrations": businessRegistrations,
	})
}
