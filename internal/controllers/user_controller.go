package controllers

import (
	"errors"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lge_services/internal/config"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

const profilePictureDir = "public/uploads/profile-pictures"

type registerUserInput struct {
	FirstName            string `json:"firstName" binding:"required"`
	LastName             string `json:"lastName" binding:"required"`
	OtherNames           string `json:"otherNames"`
	PhoneNumber          string `json:"phoneNumber" binding:"required"`
	EmailAddress         string `json:"emailAddress" binding:"required,email"`
	Nationality          string `json:"nationality"`
	HomeAddress          string `json:"homeAddress"`
	State                string `json:"state"`
	City                 string `json:"city"`
	LGA                  string `json:"lga"`
	IdentificationType   string `json:"identificationType"`
	IdentificationNumber string `json:"identificationNumber"`
	EmploymentStatus     string `json:"employmentStatus"`
	Password             string `json:"password" binding:"required,min=6"`
}

// generateUniquePID draws 8-digit numbers until one is free.
func generateUniquePID(db *gorm.DB) (string, error) {
	for {
		pid := strconv.Itoa(rand.Intn(90000000) + 10000000)
		var count int64
		if err := db.Model(&models.User{}).Where("pid = ?", pid).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return pid, nil
		}
	}
}

// RegisterUser creates a citizen account with a hashed password and a
// freshly drawn PID.
func RegisterUser(c *gin.Context) {
	var input registerUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	var existing int64
	if err := config.DB.Model(&models.User{}).Where("email_address = ?", input.EmailAddress).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Email address already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not hash password"})
		return
	}

	pid, err := generateUniquePID(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}

	user := models.User{
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		OtherNames:           input.OtherNames,
		PhoneNumber:          input.PhoneNumber,
		EmailAddress:         input.EmailAddress,
		Nationality:          input.Nationality,
		HomeAddress:          input.HomeAddress,
		State:                input.State,
		City:                 input.City,
		LGA:                  input.LGA,
		PID:                  pid,
		IdentificationType:   input.IdentificationType,
		IdentificationNumber: input.IdentificationNumber,
		EmploymentStatus:     input.EmploymentStatus,
		Password:             string(hash),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email address already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}

	logrus.WithField("user_id", user.ID).Info("citizen registered")
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "pid": user.PID})
}

// LoginUser checks credentials and issues a citizen bearer token. A missing
// account and a wrong password produce identical responses.
func LoginUser(c *gin.Context) {
	var body struct {
		EmailAddress string `json:"emailAddress" binding:"required,email"`
		Password     string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email_address = ?", body.EmailAddress).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed", "error": err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, models.RoleCitizen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    prepareUserResponse(user),
	})
}

// GetUserByEmail returns a sanitized profile for the given address.
func GetUserByEmail(c *gin.Context) {
	var user models.User
	if err := config.DB.Where("email_address = ?", c.Param("email")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user data", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": prepareUserResponse(user)})
}

// UploadProfilePicture stores the uploaded image under a unique name and
// records its relative path on the caller's row.
func UploadProfilePicture(c *gin.Context) {
	file, err := c.FormFile("profilePicture")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "profilePicture file is required"})
		return
	}

	userID := middleware.CurrentUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	relPath := "uploads/profile-pictures/" + filename
	if err := c.SaveUploadedFile(file, filepath.Join(profilePictureDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store profile picture", "error": err.Error()})
		return
	}

	if err := config.DB.Model(&user).Update("profile_picture_path", relPath).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store profile picture", "error": err.Error()})
		return
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":           "Profile picture uploaded successfully",
		"profilePictureUrl": baseURL + "/" + relPath,
	})
}

func prepareUserResponse(user models.User) gin.H {
	return gin.H{
		"id":                   user.ID,
		"firstName":            user.FirstName,
		"lastName":             user.LastName,
		"otherNames":           user.OtherNames,
		"phoneNumber":          user.PhoneNumber,
		"emailAddress":         user.EmailAddress,
		"nationality":          user.Nationality,
		"homeAddress":          user.HomeAddress,
		"state":                user.State,
		"city":                 user.City,
		"lga":                  user.LGA,
		"pid":                  user.PID,
		"identificationType":   user.IdentificationType,
		"identificationNumber": user.IdentificationNumber,
		"employmentStatus":     user.EmploymentStatus,
		"profilePicturePath":   user.ProfilePicturePath,
		"createdAt":            user.CreatedAt,
		"updatedAt":            user.UpdatedAt,
	}
}
