package main

import (
	"log"
	"net/http"

	"lge_services/internal/config"
	"lge_services/internal/logger"
	"lge_services/internal/middleware"
	"lge_services/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and migrate the schema
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
