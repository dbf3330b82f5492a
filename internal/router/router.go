package router

import (
	"resto_admin_backend/internal/gateway"
	"resto_admin_backend/internal/handlers"
	"resto_admin_backend/internal/middleware"
	"resto_admin_backend/internal/services"
	"resto_admin_backend/internal/store"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, st *store.FileStore, gw gateway.Gateway, adminUsername, adminPassword string) {
	// Initialize Services
	staffService := services.NewStaffService(st)
	tableService := services.NewTableService(st)
	inventoryService := services.NewInventoryService(st)
	registerService := services.NewRegisterService(st)
	reportService := services.NewReportService(gw, staffService, tableService, registerService)
	orderService := services.NewOrderService(gw)
	menuService := services.NewMenuService(gw)
	authService := services.NewAuthService(adminUsername, adminPassword)

	// Seed starter records so a fresh install is usable right away.
	staffService.SeedDefaults()
	tableService.SeedDefaults()
	inventoryService.SeedDefaults()

	// Initialize Handlers
	staffHandler := handlers.NewStaffHandler(staffService)
	tableHandler := handlers.NewTableHandler(tableService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	registerHandler := handlers.NewRegisterHandler(registerService)
	reportHandler := handlers.NewReportHandler(reportService)
	orderHandler := handlers.NewOrderHandler(orderService)
	menuHandler := handlers.NewMenuHandler(menuService)
	authHandler := handlers.NewAuthHandler(authService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Authenticated routes, admin role only
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)

		SetupDashboardRoutes(authenticated, reportHandler)
		SetupStaffRoutes(authenticated, staffHandler)
		SetupTableRoutes(authenticated, tableHandler)
		SetupInventoryRoutes(authenticated, inventoryHandler)
		SetupRegisterRoutes(authenticated, registerHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupMenuRoutes(authenticated, menuHandler)
	}

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	utils.LogInfo("Router setup complete")
}

// SetupPublicAuthRoutes sets up the auth routes that need no token.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.LoginUser)
}

// SetupAuthenticatedAuthRoutes sets up the auth routes behind the middleware.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.LogoutUser)
}
