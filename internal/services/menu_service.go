package services

import (
	"context"
	"errors"
	"fmt"

	"resto_admin_backend/internal/gateway"
	"resto_admin_backend/internal/models"
)

// --- Custom Service Errors for the Menu ---
var (
	ErrMenuValidation = errors.New("menu data validation error")
)

// --- MenuService Interface ---
// Products live in the remote store; this service reads them grouped by
// category and forwards deletions.
type MenuService interface {
	GetMenu(ctx context.Context) ([]models.MenuCategory, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type menuService struct {
	gw      gateway.Gateway
	refresh inflightGuard
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(gw gateway.Gateway) MenuService {
	return &menuService{gw: gw}
}

func (s *menuService) GetMenu(ctx context.Context) ([]models.MenuCategory, error) {
	if err := s.refresh.acquire(); err != nil {
		return nil, err
	}
	defer s.refresh.release()

	products, err := s.gw.FetchAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	return GroupProductsByCategory(products), nil
}

func (s *menuService) DeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return fmt.Errorf("%w: product id cannot be empty", ErrMenuValidation)
	}
	return s.gw.DeleteProduct(ctx, productID)
}
