package handlers

import (
	"errors"
	"net/http"

	"resto_admin_backend/internal/services"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler holds the menu service.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ms services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

// GetMenu handles fetching the remote product catalog grouped by category.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	categories, err := h.menuService.GetMenu(c.Request.Context())
	if err != nil {
		if respondRemoteFailure(c, err, "GetMenu") {
			return
		}
		utils.LogError(err, "GetMenu: Error from menuService.GetMenu")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

// DeleteMenuProduct removes a product from the remote store.
func (h *MenuHandler) DeleteMenuProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.menuService.DeleteProduct(c.Request.Context(), productID); err != nil {
		if respondRemoteFailure(c, err, "DeleteMenuProduct") {
			return
		}
		if errors.Is(err, services.ErrMenuValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "DeleteMenuProduct: Error from menuService.DeleteProduct for product "+productID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete product.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
