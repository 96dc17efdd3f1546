package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter registers every route group and returns the engine.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	// Uploaded profile pictures and supporting documents
	r.Static("/uploads", "./public/uploads")

	UserRoutes(r)
	AdminRoutes(r)
	ApplicationRoutes(r)
	ServiceRoutes(r)
	PaymentRoutes(r)

	return r
}
