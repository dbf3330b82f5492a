package models

import "encoding/json"

// StockLevel is the derived availability state of an inventory item.
// It is never stored; it is recomputed from stock and min_stock.
type StockLevel string

const (
	StockLevelNormal StockLevel = "normal"
	StockLevelLow    StockLevel = "low"
	StockLevelOut    StockLevel = "out-of-stock"
)

// InventoryItem represents a tracked ingredient or supply.
type InventoryItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
	Unit     string `json:"unit"` // e.g. "kg", "l", "unit"
}

// StockStatus derives the availability state:
// out-of-stock when stock is zero, low when stock is at or below the
// minimum, normal otherwise.
func (i InventoryItem) StockStatus() StockLevel {
	if i.Stock == 0 {
		return StockLevelOut
	}
	if i.Stock <= i.MinStock {
		return StockLevelLow
	}
	return StockLevelNormal
}

// IsLowStock reports whether the item should appear in the low-stock alert.
func (i InventoryItem) IsLowStock() bool {
	return i.Stock <= i.MinStock
}

// MarshalJSON includes the derived stock_status field so API consumers do
// not have to re-derive it.
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	type alias InventoryItem
	return json.Marshal(struct {
		alias
		StockStatus StockLevel `json:"stock_status"`
	}{alias(i), i.StockStatus()})
}
