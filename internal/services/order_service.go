package services

import (
	"context"
	"errors"
	"fmt"

	"resto_admin_backend/internal/gateway"
	"resto_admin_backend/internal/models"
)

// --- Custom Service Errors for Orders ---
var (
	ErrOrderValidation = errors.New("order data validation error")
)

// --- Order DTOs ---
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// --- OrderService Interface ---
// Orders live in the remote store; this service only reads them and
// forwards status changes.
type OrderService interface {
	GetOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}

type orderService struct {
	gw      gateway.Gateway
	refresh inflightGuard
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(gw gateway.Gateway) OrderService {
	return &orderService{gw: gw}
}

// GetOrders fetches all remote orders sorted most recent first.
func (s *orderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	if err := s.refresh.acquire(); err != nil {
		return nil, err
	}
	defer s.refresh.release()

	orders, err := s.gw.FetchAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return SortOrdersByRecency(orders), nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if orderID == "" {
		return fmt.Errorf("%w: order id cannot be empty", ErrOrderValidation)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrOrderValidation, status)
	}
	return s.gw.SetOrderStatus(ctx, orderID, status)
}
