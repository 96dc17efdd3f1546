package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lge_services/internal/config"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

type registerAdminInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	AdminRole string `json:"adminRole" binding:"omitempty,oneof=superadmin admin clusteradmin bursaryadmin"`
}

// RegisterAdmin creates an administrative account. The superadmin role is
// granted only while no superadmin row exists.
func RegisterAdmin(c *gin.Context) {
	var input registerAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	role := input.AdminRole
	if role == "" {
		role = models.RoleAdmin
	}

	var existing int64
	if err := config.DB.Model(&models.Admin{}).Where("username = ?", input.Username).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Admin registration failed", "error": err.Error()})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
		return
	}

	if role == models.RoleSuperAdmin {
		var superAdmins int64
		if err := config.DB.Model(&models.Admin{}).Where("admin_role = ?", models.RoleSuperAdmin).Count(&superAdmins).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Admin registration failed", "error": err.Error()})
			return
		}
		if superAdmins >= 1 {
			c.JSON(http.StatusForbidden, gin.H{"message": "Super Admin role already exists. Only one Super Admin allowed."})
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not hash password"})
		return
	}

	admin := models.Admin{Username: input.Username, PasswordHash: string(hash), AdminRole: role}
	if err := config.DB.Create(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Admin registration failed", "error": err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"admin_id": admin.ID, "role": admin.AdminRole}).Info("admin registered")
	c.JSON(http.StatusCreated, gin.H{"message": "Admin user registered successfully"})
}

// LoginAdmin checks credentials and issues an admin bearer token carrying
// the admin's role. Missing account and bad password are indistinguishable.
func LoginAdmin(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", body.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Admin login failed", "error": err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(admin.ID, admin.AdminRole)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"token":   token,
		"admin": gin.H{
			"id":        admin.ID,
			"username":  admin.Username,
			"adminRole": admin.AdminRole,
		},
	})
}

// UpdateAdminRole sets an admin's role to one of the fixed vocabulary.
func UpdateAdminRole(c *gin.Context) {
	var body struct {
		NewRole string `json:"newRole" binding:"required,oneof=superadmin admin clusteradmin bursaryadmin"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	res := config.DB.Model(&models.Admin{}).Where("id = ?", c.Param("id")).Update("admin_role", body.NewRole)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update admin role", "error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Admin user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin role updated successfully"})
}

// ListAdminUsers returns every admin with the ids of clusters assigned to it.
func ListAdminUsers(c *gin.Context) {
	var admins []models.Admin
	if err := config.DB.Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch admin users list", "error": err.Error()})
		return
	}

	var clusters []models.Cluster
	if err := config.DB.Where("admin_id IS NOT NULL").Find(&clusters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch admin users list", "error": err.Error()})
		return
	}
	assigned := make(map[uint][]uint)
	for _, cl := range clusters {
		assigned[*cl.AdminID] = append(assigned[*cl.AdminID], cl.ID)
	}

	out := make([]gin.H, 0, len(admins))
	for _, a := range admins {
		ids := assigned[a.ID]
		if ids == nil {
			ids = []uint{}
		}
		out = append(out, gin.H{
			"id":               a.ID,
			"username":         a.Username,
			"admin_role":       a.AdminRole,
			"created_at":       a.CreatedAt,
			"assignedClusters": ids,
		})
	}
	c.JSON(http.StatusOK, gin.H{"adminUsers": out})
}

// ListRegisteredUsers returns the citizen roster for the admin dashboard.
func ListRegisteredUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user list", "error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":            u.ID,
			"first_name":    u.FirstName,
			"last_name":     u.LastName,
			"email_address": u.EmailAddress,
			"pid":           u.PID,
			"created_at":    u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// DeleteUser removes a citizen row outright.
func DeleteUser(c *gin.Context) {
	res := config.DB.Unscoped().Delete(&models.User{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user", "error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
