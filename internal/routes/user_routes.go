package routes

import (
	"github.com/gin-gonic/gin"

	"lge_services/internal/controllers"
	"lge_services/internal/middleware"
	"lge_services/internal/models"
)

func UserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("/register", controllers.RegisterUser)
		users.POST("/login", controllers.LoginUser)
	}

	// Profile reads and uploads require a citizen session
	protected := r.Group("/users")
	protected.Use(middleware.RequireRoles(models.RoleCitizen))
	{
		protected.GET("/user/:email", controllers.GetUserByEmail)
		protected.POST("/profile-picture", controllers.UploadProfilePicture)
	}
}
