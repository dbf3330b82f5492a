package services

import (
	"errors"
	"fmt"
	"sync"

	"resto_admin_backend/internal/models"
	"resto_admin_backend/internal/store"
	"resto_admin_backend/pkg/utils"
)

// --- Custom Service Errors for Inventory ---
var (
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInventoryValidation   = errors.New("inventory data validation error")
	ErrInvalidQuantity       = errors.New("quantity must be a non-negative integer")
)

// --- Inventory DTOs ---
type CreateInventoryItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
	Unit     string `json:"unit" binding:"required"`
}

type UpdateInventoryItemRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Stock    *int    `json:"stock"`
	MinStock *int    `json:"min_stock"`
	Unit     *string `json:"unit"`
}

type AddStockRequest struct {
	Quantity int `json:"quantity"`
}

// --- InventoryService Interface ---
type InventoryService interface {
	CreateInventoryItem(req CreateInventoryItemRequest) (*models.InventoryItem, error)
	GetInventoryItemByID(itemID int64) (*models.InventoryItem, error)
	GetInventoryItems() []models.InventoryItem
	UpdateInventoryItem(itemID int64, req UpdateInventoryItemRequest) (*models.InventoryItem, error)
	DeleteInventoryItem(itemID int64) error
	// AddStock increments an item's stock by a non-negative quantity.
	AddStock(itemID int64, quantity int) (*models.InventoryItem, error)
	// LowStockItems returns every item at or below its minimum stock.
	LowStockItems() []models.InventoryItem
	SeedDefaults()
}

// --- inventoryService Implementation ---
type inventoryService struct {
	mu     sync.Mutex
	st     *store.FileStore
	items  []models.InventoryItem
	lastID int64
}

// NewInventoryService loads the inventory collection and returns a new InventoryService.
func NewInventoryService(st *store.FileStore) InventoryService {
	s := &inventoryService{st: st}
	st.Load(store.CollectionInventory, &s.items)
	for _, it := range s.items {
		if it.ID > s.lastID {
			s.lastID = it.ID
		}
	}
	return s
}

func (s *inventoryService) persist() {
	if err := s.st.Save(store.CollectionInventory, s.items); err != nil {
		utils.LogError(err, "Failed to persist inventory collection")
	}
}

func validateInventoryItem(it *models.InventoryItem) error {
	if utils.IsEmpty(it.Name) {
		return fmt.Errorf("%w: name cannot be empty", ErrInventoryValidation)
	}
	if utils.IsEmpty(it.Category) {
		return fmt.Errorf("%w: category cannot be empty", ErrInventoryValidation)
	}
	if it.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrInventoryValidation)
	}
	if it.MinStock < 0 {
		return fmt.Errorf("%w: minimum stock cannot be negative", ErrInventoryValidation)
	}
	if utils.IsEmpty(it.Unit) {
		return fmt.Errorf("%w: unit cannot be empty", ErrInventoryValidation)
	}
	return nil
}

func (s *inventoryService) CreateInventoryItem(req CreateInventoryItemRequest) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.InventoryItem{
		ID:       nextTimestampID(s.lastID),
		Name:     req.Name,
		Category: req.Category,
		Stock:    req.Stock,
		MinStock: req.MinStock,
		Unit:     req.Unit,
	}
	if err := validateInventoryItem(&item); err != nil {
		return nil, err
	}

	s.lastID = item.ID
	s.items = append(s.items, item)
	s.persist()
	return &item, nil
}

func (s *inventoryService) GetInventoryItemByID(itemID int64) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrInventoryItemNotFound
}

func (s *inventoryService) GetInventoryItems() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *inventoryService) UpdateInventoryItem(itemID int64, req UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.items {
		if s.items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrInventoryItemNotFound
	}

	session := BeginEdit(s.items[idx])
	draft := session.Draft()
	if req.Name != nil {
		draft.Name = *req.Name
	}
	if req.Category != nil {
		draft.Category = *req.Category
	}
	if req.Stock != nil {
		draft.Stock = *req.Stock
	}
	if req.MinStock != nil {
		draft.MinStock = *req.MinStock
	}
	if req.Unit != nil {
		draft.Unit = *req.Unit
	}
	if err := validateInventoryItem(draft); err != nil {
		session.Discard()
		return nil, err
	}

	s.items[idx] = session.Commit()
	s.persist()
	item := s.items[idx]
	return &item, nil
}

func (s *inventoryService) DeleteInventoryItem(itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrInventoryItemNotFound
}

func (s *inventoryService) AddStock(itemID int64, quantity int) (*models.InventoryItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Stock += quantity
			s.persist()
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrInventoryItemNotFound
}

func (s *inventoryService) LowStockItems() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	low := []models.InventoryItem{}
	for _, it := range s.items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low
}

// SeedDefaults populates the collection with the first-run pantry.
// It is a no-op when any items already exist.
func (s *inventoryService) SeedDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) > 0 {
		return
	}
	defaults := []models.InventoryItem{
		{Name: "Rice", Category: "ingredients", Stock: 50, MinStock: 10, Unit: "kg"},
		{Name: "Chicken", Category: "ingredients", Stock: 25, MinStock: 5, Unit: "kg"},
		{Name: "Cola", Category: "drinks", Stock: 100, MinStock: 20, Unit: "unit"},
		{Name: "Cooking oil", Category: "ingredients", Stock: 3, MinStock: 5, Unit: "l"},
	}
	for _, item := range defaults {
		item.ID = nextTimestampID(s.lastID)
		s.lastID = item.ID
		s.items = append(s.items, item)
	}
	s.persist()
	utils.LogInfo("Seeded default inventory", map[string]interface{}{"count": len(defaults)})
}
