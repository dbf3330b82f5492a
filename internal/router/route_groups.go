package router

import (
	"resto_admin_backend/internal/handlers"
	"resto_admin_backend/internal/middleware"
	"resto_admin_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes sets up the dashboard overview route.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	dashboardRoutes.Use(middleware.RoleAuthMiddleware(services.AdminRole))
	{
		dashboardRoutes.GET("/overview", reportHandler.GetDashboardOverview)
	}
}

// SetupStaffRoutes sets up the staff routes.
func SetupStaffRoutes(authenticatedGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	staffRoutes := authenticatedGroup.Group("/staff")
	staffRoutes.Use(middleware.RoleAuthMiddleware(services.AdminRole))
	{
		staffRoutes.POST("", staffHandler.CreateStaffMember)
		staffRoutes.GET("", staffHandler.GetStaffMembers)
		staffRoutes.GET("/:id", staffHandler.GetStaffMemberByID)
		staffRoutes.PUT("/:id", staffHandler.UpdateStaffMember)
		staffRoutes.DELETE("/:id", staffHandler.DeleteStaffMember)
	}
}

// SetupTableRoutes sets up the dining table routes.
func SetupTableRoutes(authenticatedGroup *gin.RouterGroup, tableHandler *handlers.TableHandler) {
	tableRoutes := authenticatedGroup.Group("/tables")
	tableRoutes.Use(middleware.RoleAuthMiddleware(services.AdminRole))
	{
		tableRoutes.POST("", tableHandler.CreateTable)
		tableRoutes.GET("", tableHandler.GetTables)
		tableRoutes.GET("/:id", tableHandler.GetTableByID)
		tableRoutes.PUT("/:id", tableHandler.UpdateTable)
		tableRoutes.PATCH("/:id/status", tableHandler.CycleTableStatus)
		tableRoutes.DELETE("/:id", tableHandler.DeleteTable)
	}
}

// SetupInventoryRoutes sets up the inventory routes.
func SetupInventoryRoutes(authenticatedGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := authenticatedGroup.Group("/inventory")
	inventoryRoutes.Use(middleware.RoleAuthMiddleware(services.AdminRole))
	{
		inventoryRoutes.POST("", inventoryHandler.CreateInventoryItem)
		inventoryRoutes.GET("", inventoryHandler.GetInventoryItems)
		inventoryRoutes.GET("/low-stock", inventoryHandler.GetLowStockItems)
		inventoryRoutes.GET("/:id", inventoryHandler.GetInventoryItemByID)
		inventoryRoutes.PUT("/:id", inventoryHandler.UpdateInventoryItem)
		inventoryRoutes.POST("/:id/stock", inventoryHandler.AddStock)
		inventoryRoutes.DELETE("/:id", inventoryHandler.DeleteInventoryItem)
	}
}

// SetupRegisterRoutes sets up the cash register routes.
func SetupRegisterRoutes(authenticatedGroup *gin.RouterGroup, registerHandler *handlers.RegisterHandler) {
	registerRoutes := authenticatedGroup.Group("/register")
	registerRoutes.Use(middleware.RoleAuthMiddleware(services.AdminRole))
	{
		registerRoutes.GET("", registerHandler.GetRegister)
		registerRoutes.POST("/open", registerHandler.OpenRegister)
		registerRoutes.POST("/close", registerHandler.CloseRegister)
	}
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware(services.AdminRole))
	{
		reportRoutes.GET("/sales", reportHandler.GetSalesReport)
	}
}

// SetupOrderRoutes sets up the remote order routes.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	orderRoutes.Use(middleware.RoleAuthMiddleware(services.AdminRole))
	{
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
	}
}

// SetupMenuRoutes sets up the remote menu routes.
func SetupMenuRoutes(authenticatedGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	menuRoutes := authenticatedGroup.Group("/menu")
	menuRoutes.Use(middleware.RoleAuthMiddleware(services.AdminRole))
	{
		menuRoutes.GET("", menuHandler.GetMenu)
		menuRoutes.DELETE("/products/:id", menuHandler.DeleteMenuProduct)
	}
}
