package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lge_services/internal/config"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

const dateLayout = "2006-01-02"

// currentUser loads the submitting citizen from the bearer token.
func currentUser(c *gin.Context) (models.User, bool) {
	var user models.User
	if err := config.DB.First(&user, middleware.CurrentUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found for application"})
		return user, false
	}
	return user, true
}

// serviceForSubmission resolves the catalog entry backing a submission,
// answering 404 when the service is unconfigured.
func serviceForSubmission(c *gin.Context, name string) (models.Service, bool) {
	service, err := resolveService(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service \"" + name + "\" not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve service", "error": err.Error()})
		}
		return service, false
	}
	return service, true
}

func submissionResponse(c *gin.Context, message string, id uint, service models.Service, extra gin.H) {
	body := gin.H{
		"message":        message,
		"registrationId": id,
		"service_id":     service.ID,
		"servicePrice":   service.ServicePrice,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusCreated, body)
}

// ApplyDeathCertificate files a death-certificate application.
func ApplyDeathCertificate(c *gin.Context) {
	var input struct {
		DeceasedFirstName     string `json:"deceasedFirstName" binding:"required"`
		DeceasedLastName      string `json:"deceasedLastName" binding:"required"`
		DeceasedOtherNames    string `json:"deceasedOtherNames"`
		DateOfDeath           string `json:"dateOfDeath" binding:"required,datetime=2006-01-02"`
		PlaceOfDeath          string `json:"placeOfDeath" binding:"required"`
		CauseOfDeath          string `json:"causeOfDeath"`
		ApplicantRelationship string `json:"applicantRelationship" binding:"required"`
		ApplicantPhoneNumber  string `json:"applicantPhoneNumber" binding:"required"`
		ApplicantEmailAddress string `json:"applicantEmailAddress" binding:"required,email"`
		ApplicantAddress      string `json:"applicantAddress" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}
	service, ok := serviceForSubmission(c, models.ServiceDeathCertificate)
	if !ok {
		return
	}

	dateOfDeath, _ := time.Parse(dateLayout, input.DateOfDeath)
	app := models.DeathCertificateApplication{
		UserID:                user.ID,
		ServiceID:             service.ID,
		DeceasedFirstName:     input.DeceasedFirstName,
		DeceasedLastName:      input.DeceasedLastName,
		DeceasedOtherNames:    input.DeceasedOtherNames,
		DateOfDeath:           dateOfDeath,
		PlaceOfDeath:          input.PlaceOfDeath,
		CauseOfDeath:          input.CauseOfDeath,
		ApplicantRelationship: input.ApplicantRelationship,
		ApplicantPhoneNumber:  input.ApplicantPhoneNumber,
		ApplicantEmailAddress: input.ApplicantEmailAddress,
		ApplicantAddress:      input.ApplicantAddress,
	}
	if err := config.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit Death Certificate Application", "error": err.Error()})
		return
	}

	submissionResponse(c, "Death Certificate Application submitted successfully", app.ID, service, nil)
}

// ApplyLocalGovernmentID files a local-government ID application.
func ApplyLocalGovernmentID(c *gin.Context) {
	var input struct {
		ApplicantFirstName  string `json:"applicantFirstName" binding:"required"`
		ApplicantLastName   string `json:"applicantLastName" binding:"required"`
		ApplicantOtherNames string `json:"applicantOtherNames"`
		DateOfBirth         string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
		Gender              string `json:"gender" binding:"required,oneof=male female other"`
		Occupation          string `json:"occupation"`
		HomeAddress         string `json:"homeAddress" binding:"required"`
		LGAOfOrigin         string `json:"lgaOfOrigin" binding:"required"`
		PhoneNumber         string `json:"phoneNumber" binding:"required"`
		EmailAddress        string `json:"applicantEmailAddress" binding:"required,email"`
		ApplicationReason   string `json:"applicationReason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}
	service, ok := serviceForSubmission(c, models.ServiceLocalGovernmentID)
	if !ok {
		return
	}

	dateOfBirth, _ := time.Parse(dateLayout, input.DateOfBirth)
	app := models.LocalGovernmentIDApplication{
		UserID:              user.ID,
		ServiceID:           service.ID,
		ApplicantFirstName:  input.ApplicantFirstName,
		ApplicantLastName:   input.ApplicantLastName,
		ApplicantOtherNames: input.ApplicantOtherNames,
		DateOfBirth:         dateOfBirth,
		Gender:              input.Gender,
		Occupation:          input.Occupation,
		HomeAddress:         input.HomeAddress,
		LGAOfOrigin:         input.LGAOfOrigin,
		PhoneNumber:         input.PhoneNumber,
		EmailAddress:        input.EmailAddress,
		ApplicationReason:   input.ApplicationReason,
	}
	if err := config.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit Local Government ID Application", "error": err.Error()})
		return
	}

	submissionResponse(c, "Local Government ID Application submitted successfully", app.ID, service, nil)
}

// RegisterClub files a club/association registration.
func RegisterClub(c *gin.Context) {
	var input struct {
		ClubAssociationName     string `json:"clubAssociationName" binding:"required"`
		NatureOfClubAssociation string `json:"natureOfClubAssociation"`
		RegistrationAddress     string `json:"registrationAddress" binding:"required"`
		LGAOfOperation          string `json:"lgaOfOperation" binding:"required"`
		ContactPersonName       string `json:"contactPersonName" binding:"required"`
		ContactPersonPhone      string `json:"contactPersonPhone" binding:"required"`
		ContactPersonEmail      string `json:"contactPersonEmail" binding:"required,email"`
		RegistrationDate        string `json:"registrationDate" binding:"required,datetime=2006-01-02"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}
	service, ok := serviceForSubmission(c, models.ServiceClubRegistration)
	if !ok {
		return
	}

	registrationDate, _ := time.Parse(dateLayout, input.RegistrationDate)
	app := models.ClubAssociationRegistration{
		UserID:                  user.ID,
		ServiceID:               service.ID,
		ClubAssociationName:     input.ClubAssociationName,
		NatureOfClubAssociation: input.NatureOfClubAssociation,
		RegistrationAddress:     input.RegistrationAddress,
		LGAOfOperation:          input.LGAOfOperation,
		ContactPersonName:       input.ContactPersonName,
		ContactPersonPhone:      input.ContactPersonPhone,
		ContactPersonEmail:      input.ContactPersonEmail,
		RegistrationDate:        registrationDate,
	}
	if err := config.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register Club/Association", "error": err.Error()})
		return
	}

	submissionResponse(c, "Club/Association registered successfully", app.ID, service, nil)
}

// PayWasteFees records a waste-management fee payment application.
func PayWasteFees(c *gin.Context) {
	var input struct {
		PropertyAddress string          `json:"propertyAddress" binding:"required"`
		PropertyType    string          `json:"propertyType" binding:"required,oneof=residential commercial"`
		PaymentAmount   decimal.Decimal `json:"paymentAmount" binding:"required"`
		PaymentMethod   string          `json:"paymentMethod" binding:"required,oneof=online bank_transfer"`
		PaymentDate     string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}
	service, ok := serviceForSubmission(c, models.ServiceWasteManagementFees)
	if !ok {
		return
	}

	paymentDate, _ := time.Parse(dateLayout, input.PaymentDate)
	app := models.WasteManagementFeePayment{
		UserID:               user.ID,
		ServiceID:            service.ID,
		PropertyAddress:      input.PropertyAddress,
		PropertyType:         input.PropertyType,
		PaymentAmount:        input.PaymentAmount,
		PaymentDate:          paymentDate,
		PaymentMethod:        input.PaymentMethod,
		TransactionReference: uuid.NewString(),
	}
	if err := config.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process Waste Management Fees payment", "error": err.Error()})
		return
	}

	logrus.WithField("transaction_reference", app.TransactionReference).Info("waste fee payment recorded")
	submissionResponse(c, "Waste Management Fees payment successful", app.ID, service, gin.H{
		"transactionReference": app.TransactionReference,
	})
}

// RegisterStreet files a street registration.
func RegisterStreet(c *gin.Context) {
	var input struct {
		StreetName                string  `json:"streetName" binding:"required"`
		LGALocation               string  `json:"lgaLocation" binding:"required"`
		CommunityName             string  `json:"communityName"`
		NumberOfHouses            int     `json:"numberOfHouses"`
		StreetLengthMeters        float64 `json:"streetLengthMeters"`
		StreetLightingStatus      string  `json:"streetLightingStatus"`
		WasteDisposalSystemStatus string  `json:"wasteDisposalSystemStatus"`
		RegistrationPurpose       string  `json:"registrationPurpose"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}
	service, ok := serviceForSubmission(c, models.ServiceStreetRegistration)
	if !ok {
		return
	}

	app := models.StreetRegistration{
		UserID:                    user.ID,
		ServiceID:                 service.ID,
		StreetName:                input.StreetName,
		LGALocation:               input.LGALocation,
		CommunityName:             input.CommunityName,
		NumberOfHouses:            input.NumberOfHouses,
		StreetLengthMeters:        input.StreetLengthMeters,
		StreetLightingStatus:      input.StreetLightingStatus,
		WasteDisposalSystemStatus: input.WasteDisposalSystemStatus,
		RegistrationPurpose:       input.RegistrationPurpose,
	}
	if err := config.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register street", "error": err.Error()})
		return
	}

	submissionResponse(c, "Street registered successfully", app.ID, service, nil)
}

// RegisterBusiness files a business registration inside a cluster.
func RegisterBusiness(c *gin.Context) {
	var input struct {
		BusinessName        string `json:"businessName" binding:"required"`
		BusinessType        string `json:"businessType" binding:"required,oneof=sole_proprietorship partnership limited_liability_company other"`
		BusinessSector      string `json:"businessSector" binding:"required"`
		BusinessAddress     string `json:"businessAddress" binding:"required"`
		ClusterID           uint   `json:"cluster_id" binding:"required"`
		ContactEmailAddress string `json:"contactEmailAddress" binding:"required,email"`
		ContactPhoneNumber  string `json:"contactPhoneNumber" binding:"required"`
		RegistrationDate    string `json:"registrationDate" binding:"required,datetime=2006-01-02"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation failed", "error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var cluster models.Cluster
	if err := config.DB.First(&cluster, input.ClusterID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cluster not found"})
		return
	}

	service, ok := serviceForSubmission(c, models.ServiceBusinessRegistration)
	if !ok {
		return
	}

	registrationDate, _ := time.Parse(dateLayout, input.RegistrationDate)
	app := models.BusinessRegistration{
		UserID:              user.ID,
		ServiceID:           service.ID,
		ClusterID:           cluster.ID,
		BusinessName:        input.BusinessName,
		BusinessType:        input.BusinessType,
		BusinessSector:      input.BusinessSector,
		BusinessAddress:     input.BusinessAddress,
		LGAOfOperation:      cluster.LGA,
		ContactEmailAddress: input.ContactEmailAddress,
		ContactPhoneNumber:  input.ContactPhoneNumber,
		RegistrationDate:    registrationDate,
	}
	if err := config.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register business", "error": err.Error()})
		return
	}

	submissionResponse(c, "Business registered successfully", app.ID, service, nil)
}

// fetchDetails answers a detail read for any application table.
func fetchDetails(c *gin.Context, dest interface{}, missingMsg string) {
	if err := config.DB.First(dest, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": missingMsg})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch application details", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": dest})
}

func DeathCertificateDetails(c *gin.Context) {
	fetchDetails(c, &models.DeathCertificateApplication{}, "Death Certificate Application not found")
}

func BusinessRegistrationDetails(c *gin.Context) {
	fetchDetails(c, &models.BusinessRegistration{}, "Business Registration Application not found")
}

func StreetRegistrationDetails(c *gin.Context) {
	fetchDetails(c, &models.StreetRegistration{}, "Street Registration Application not found")
}

func ClubRegistrationDetails(c *gin.Context) {
	fetchDetails(c, &models.ClubAssociationRegistration{}, "Club Registration Application not found")
}

func LocalGovernmentIDDetails(c *gin.Context) {
	fetchDetails(c, &models.LocalGovernmentIDApplication{}, "Local Government ID Application not found")
}

func WasteFeePaymentDetails(c *gin.Context) {
	fetchDetails(c, &models.WasteManagementFeePayment{}, "Waste Management Registration Application not found")
}

// GetRegistration returns the slim death-certificate row the payment page
// needs to build a payment record.
func GetRegistration(c *gin.Context) {
	var app models.DeathCertificateApplication
	if err := config.DB.Select("id", "user_id", "service_id").First(&app, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Registration not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch registration details", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"registration": gin.H{
		"id":         app.ID,
		"user_id":    app.UserID,
		"service_id": app.ServiceID,
	}})
}

// applicationSummaries collects id/date/status rows tagged with a type label.
func applicationSummaries(userID *uint) ([]gin.H, error) {
	out := []gin.H{}

	scoped := func(tx *gorm.DB) *gorm.DB {
		if userID != nil {
			return tx.Where("user_id = ?", *userID)
		}
		return tx
	}

	var deathCerts []models.DeathCertificateApplication
	if err := scoped(config.DB).Find(&deathCerts).Error; err != nil {
		return nil, err
	}
	for _, a := range deathCerts {
		out = append(out, gin.H{"id": a.ID, "application_date": a.ApplicationDate, "status": a.Status, "type": "Death Certificate"})
	}

	var lgaIDs []models.LocalGovernmentIDApplication
	if err := scoped(config.DB).Find(&lgaIDs).Error; err != nil {
		return nil, err
	}
	for _, a := range lgaIDs {
		out = append(out, gin.H{"id": a.ID, "application_date": a.ApplicationDate, "status": a.Status, "type": "Local Government ID"})
	}

	var clubs []models.ClubAssociationRegistration
	if err := scoped(config.DB).Find(&clubs).Error; err != nil {
		return nil, err
	}
	for _, a := range clubs {
		out = append(out, gin.H{"id": a.ID, "application_date": a.ApplicationDate, "status": a.Status, "type": "Club/Association Registration"})
	}

	var wasteFees []models.WasteManagementFeePayment
	if err := scoped(config.DB).Find(&wasteFees).Error; err != nil {
		return nil, err
	}
	for _, a := range wasteFees {
		out = append(out, gin.H{"id": a.ID, "application_date": a.ApplicationDate, "status": a.PaymentStatus, "type": "Waste Management Fees Payment"})
	}

	var streets []models.StreetRegistration
	if err := scoped(config.DB).Find(&streets).Error; err != nil {
		return nil, err
	}
	for _, a := range streets {
		out = append(out, gin.H{"id": a.ID, "application_date": a.ApplicationDate, "status": a.Status, "type": "Street Registration"})
	}

	var businesses []models.BusinessRegistration
	if err := scoped(config.DB).Find(&businesses).Error; err != nil {
		return nil, err
	}
	for _, a := range businesses {
		out = append(out, gin.H{"id": a.ID, "application_date": a.ApplicationDate, "status": a.Status, "type": "Business Registration"})
	}

	return out, nil
}

// ViewAllApplications lists the caller's applications across all six tables.
func ViewAllApplications(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	apps, err := applicationSummaries(&userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
