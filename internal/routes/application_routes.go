package routes

import (
	"github.com/gin-gonic/gin"

	"lge_services/internal/controllers"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

func ApplicationRoutes(r *gin.Engine) {
	apps := r.Group("/applications")
	apps.Use(middleware.RequireRoles(models.RoleCitizen))
	{
		apps.POST("/death-cert-apply", controllers.ApplyDeathCertificate)
		apps.POST("/lga-cert-apply", controllers.ApplyLocalGovernmentID)
		apps.POST("/club-register", controllers.RegisterClub)
		apps.POST("/pay-waste-fees", controllers.PayWasteFees)
		apps.POST("/street-register", controllers.RegisterStreet)
		apps.POST("/business-register", controllers.RegisterBusiness)

		apps.GET("/view-all", controllers.ViewAllApplications)
		apps.GET("/details/:id", controllers.DeathCertificateDetails)
		apps.GET("/business-register/details/:id", controllers.BusinessRegistrationDetails)
		apps.GET("/street-registration/details/:id", controllers.StreetRegistrationDetails)
		apps.GET("/club-registration/details/:id", controllers.ClubRegistrationDetails)
		apps.GET("/lga-registration/details/:id", controllers.LocalGovernmentIDDetails)
		apps.GET("/waste-management/details/:id", controllers.WasteFeePaymentDetails)
		apps.GET("/registrations/:id", controllers.GetRegistration)

		apps.GET("/generate-pdf/:applicationType/:id", controllers.GeneratePDF)
	}
}
