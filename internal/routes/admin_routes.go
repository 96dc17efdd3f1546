package routes

import (
	"github.com/gin-gonic/gin"

	"lge_services/internal/controllers"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	{
		admin.POST("/register", controllers.RegisterAdmin)
		admin.POST("/login", controllers.LoginAdmin)
	}

	gated := r.Group("/admin")
	gated.Use(middleware.RequireRoles(models.AdminRoles...), middleware.Authorize())
	{
		gated.PUT("/clusters/assign", controllers.AssignClusters)
		gated.DELETE("/clusters/:id/assignment", controllers.UnassignCluster)
		gated.GET("/clusters/list", controllers.ListClusters)
		gated.POST("/clusters/create", controllers.CreateCluster)
		gated.POST("/clusters/:id/update", controllers.UpdateCluster)
		gated.GET("/cluster/dashboard", controllers.ClusterDashboard)

		gated.GET("/users/list", controllers.ListAdminUsers)
		gated.POST("/users/:id/update-role", controllers.UpdateAdminRole)
		gated.GET("/registered-users/list", controllers.ListRegisteredUsers)
		gated.DELETE("/users/:id", controllers.DeleteUser)

		gated.GET("/services/list", controllers.ListServices)
		gated.POST("/services/:id/update-price", controllers.UpdateServicePrice)

		gated.GET("/revenue-data", controllers.GetRevenueData)
		gated.GET("/payments/dashboard", controllers.PaymentsDashboard)

		gated.GET("/view-all-applications", controllers.ViewAllApplicationsAdmin)

		apps := gated.Group("/applications")
		{
			apps.GET("/death-certificates", controllers.ListDeathCertificates)
			apps.POST("/death-certificates/:id/approve", controllers.ApproveDeathCertificate)
			apps.POST("/death-certificates/:id/reject", controllers.RejectDeathCertificate)
			apps.DELETE("/death-certificates/:id", controllers.DeleteDeathCertificate)

			apps.GET("/local-gov-ids", controllers.ListLocalGovernmentIDs)
			apps.POST("/local-gov-ids/:id/approve", controllers.ApproveLocalGovernmentID)
			apps.POST("/local-gov-ids/:id/reject", controllers.RejectLocalGovernmentID)
			apps.DELETE("/local-gov-ids/:id", controllers.DeleteLocalGovernmentID)

			apps.GET("/club-associations", controllers.ListClubRegistrations)
			apps.POST("/club-associations/:id/approve", controllers.ApproveClubRegistration)
			apps.POST("/club-associations/:id/reject", controllers.RejectClubRegistration)
			apps.DELETE("/club-associations/:id", controllers.DeleteClubRegistration)

			apps.GET("/waste-management-fees-payments", controllers.ListWasteFeePayments)
			apps.POST("/waste-management-fees-payments/:id/approve", controllers.ApproveWasteFeePayment)
			apps.POST("/waste-management-fees-payments/:id/reject", controllers.RejectWasteFeePayment)
			apps.DELETE("/waste-management-fees-payments/:id", controllers.DeleteWasteFeePayment)

			apps.GET("/street-registrations", controllers.ListStreetRegistrations)
			apps.POST("/street-registrations/:id/approve", controllers.ApproveStreetRegistration)
			apps.POST("/street-registrations/:id/reject", controllers.RejectStreetRegistration)
			apps.DELETE("/street-registrations/:id", controllers.DeleteStreetRegistration)

			apps.GET("/business-registrations", controllers.ListBusinessRegistrations)
			apps.POST("/business-registrations/:id/approve", controllers.ApproveBusinessRegistration)
			apps.POST("/business-registrations/:id/reject", controllers.RejectBusinessRegistration)
			apps.DELETE("/business-registrations/:id", controllers.DeleteBusinessRegistration)
		}
	}
}
