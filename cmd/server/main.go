package main

import (
	"log"
	"os"
	"strings"
	"time"

	"resto_admin_backend/internal/gateway"
	"resto_admin_backend/internal/middleware"
	"resto_admin_backend/internal/router"
	"resto_admin_backend/internal/store"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; real deployments set env vars directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize Logger
	utils.InitLogger()

	// Load configuration from environment variables
	dataDir := utils.Getenv("DATA_DIR", "./data")
	gatewayBaseURL := utils.Getenv("GATEWAY_BASE_URL", "http://localhost:9090")
	gatewayTimeout := utils.Getenv("GATEWAY_TIMEOUT", "10s")
	adminUsername := utils.Getenv("ADMIN_USERNAME", "admin")
	adminPassword := utils.Getenv("ADMIN_PASSWORD", "admin123")

	// Initialize the local entity store
	st, err := store.NewFileStore(dataDir)
	if err != nil {
		utils.LogError(err, "Failed to initialize entity store")
		log.Fatalf("Failed to initialize entity store: %v", err)
	}
	utils.LogInfo("Entity store initialized", map[string]interface{}{"data_dir": dataDir})

	// Initialize the online store gateway
	timeout, err := time.ParseDuration(gatewayTimeout)
	if err != nil {
		utils.LogWarn("Invalid GATEWAY_TIMEOUT, using 10s", map[string]interface{}{"value": gatewayTimeout})
		timeout = 10 * time.Second
	}
	gw := gateway.NewClient(gatewayBaseURL, timeout)
	utils.LogInfo("Online store gateway configured", map[string]interface{}{"base_url": gatewayBaseURL})

	engine := gin.Default()

	// Request ID and request logging middleware
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	// Setup all application routes
	router.Setup(engine, st, gw, adminUsername, adminPassword)

	// Server port configuration
	port := utils.Getenv("PORT", "8080") // Default to 8080 if not set
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})
	utils.LogInfo("Frontend should be configured to make API calls", map[string]interface{}{"url": "http://localhost:" + port + "/api/v1"})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
