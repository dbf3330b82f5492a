package handlers

import (
	"errors"
	"net/http"

	"resto_admin_backend/internal/services"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// GetOrders handles fetching all remote orders, most recent first.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders(c.Request.Context())
	if err != nil {
		if respondRemoteFailure(c, err, "GetOrders") {
			return
		}
		utils.LogError(err, "GetOrders: Error from orderService.GetOrders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  orders,
		"total": len(orders),
	})
}

// UpdateOrderStatus forwards a status change to the remote store.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateOrderStatus: Failed to bind JSON for order "+orderID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, req.Status); err != nil {
		if respondRemoteFailure(c, err, "UpdateOrderStatus") {
			return
		}
		if errors.Is(err, services.ErrOrderValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "UpdateOrderStatus: Error from orderService.UpdateOrderStatus for order "+orderID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update order status.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
