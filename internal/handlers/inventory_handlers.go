package handlers

import (
	"errors"
	"net/http"

	"resto_admin_backend/internal/services"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// CreateInventoryItem handles the creation of a new inventory item.
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req services.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateInventoryItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.CreateInventoryItem(req)
	if err != nil {
		utils.LogError(err, "CreateInventoryItem: Error from inventoryService.CreateInventoryItem")
		if errors.Is(err, services.ErrInventoryValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create inventory item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetInventoryItems handles fetching all inventory items.
func (h *InventoryHandler) GetInventoryItems(c *gin.Context) {
	items := h.inventoryService.GetInventoryItems()
	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"total": len(items),
	})
}

// GetLowStockItems handles fetching items at or below their minimum stock.
func (h *InventoryHandler) GetLowStockItems(c *gin.Context) {
	items := h.inventoryService.LowStockItems()
	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"total": len(items),
	})
}

// GetInventoryItemByID handles fetching a single inventory item by ID.
func (h *InventoryHandler) GetInventoryItemByID(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid inventory item ID format.", err.Error()))
		return
	}

	item, err := h.inventoryService.GetInventoryItemByID(itemID)
	if err != nil {
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", err.Error()))
		} else {
			utils.LogError(err, "GetInventoryItemByID: Error from inventoryService.GetInventoryItemByID for ID "+idStr)
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch inventory item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateInventoryItem handles updating an inventory item.
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid inventory item ID format.", err.Error()))
		return
	}

	var req services.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateInventoryItem: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.UpdateInventoryItem(itemID, req)
	if err != nil {
		utils.LogError(err, "UpdateInventoryItem: Error from inventoryService.UpdateInventoryItem for ID "+idStr)
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrInventoryValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update inventory item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// AddStock handles incrementing an item's stock.
func (h *InventoryHandler) AddStock(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid inventory item ID format.", err.Error()))
		return
	}

	var req services.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AddStock: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.AddStock(itemID, req.Quantity)
	if err != nil {
		utils.LogError(err, "AddStock: Error from inventoryService.AddStock for ID "+idStr)
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidQuantity) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteInventoryItem handles deleting an inventory item.
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid inventory item ID format.", err.Error()))
		return
	}

	if err := h.inventoryService.DeleteInventoryItem(itemID); err != nil {
		utils.LogError(err, "DeleteInventoryItem: Error from inventoryService.DeleteInventoryItem for ID "+idStr)
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete inventory item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
