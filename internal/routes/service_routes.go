package routes

import (
	"github.com/gin-gonic/gin"

	"lge_services/internal/controllers"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

func ServiceRoutes(r *gin.Engine) {
	services := r.Group("/services")
	{
		services.GET("", controllers.ListServices)
		services.GET("/:id/price", controllers.GetServicePrice)
	}

	priced := r.Group("/services")
	priced.Use(middleware.RequireRoles(models.AdminRoles...), middleware.Authorize())
	{
		priced.PATCH("/:id/price", controllers.UpdateServicePrice)
	}
}
