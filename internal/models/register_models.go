package models

import "time"

// RegisterSession tracks a single cash-drawer period. At most one session
// exists process-wide; it is persisted as its own document rather than a
// collection.
type RegisterSession struct {
	IsOpen        bool           `json:"is_open"`
	InitialAmount float64        `json:"initial_amount"`
	Cashier       string         `json:"cashier"`
	OpenedAt      time.Time      `json:"opened_at"`
	ClosedAt      *time.Time     `json:"closed_at,omitempty"` // set only after the session closes
	Sales         []RegisterSale `json:"sales"`
}

// RegisterSale is a cash movement recorded against an open session.
type RegisterSale struct {
	OrderID    string        `json:"order_id"`
	Amount     float64       `json:"amount"`
	Method     PaymentMethod `json:"method"`
	RecordedAt time.Time     `json:"recorded_at"`
}
