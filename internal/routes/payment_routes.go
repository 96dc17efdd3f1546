package routes

import (
	"github.com/gin-gonic/gin"

	"lge_services/internal/controllers"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

func PaymentRoutes(r *gin.Engine) {
	payments := r.Group("/payments")
	payments.Use(middleware.RequireRoles(models.RoleCitizen))
	{
		payments.POST("/payments", controllers.CreatePayment)
		payments.GET("/payments/:id", controllers.GetPayment)
		payments.POST("/api/verify-payment", controllers.VerifyPayment)
	}

	admin := r.Group("/payments")
	admin.Use(middleware.RequireRoles(models.AdminRoles...), middleware.Authorize())
	{
		admin.PATCH("/payments/:id/status", controllers.UpdatePaymentStatus)
	}
}
