package models

import (
	"encoding/json"
	"time"
)

// OrderStatus enumerates the lifecycle states of a remote order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether the status is one of the closed set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}

// PaymentMethod enumerates how an order was paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Valid reports whether the method is one of the closed set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// RemoteTime decodes the remote store's timestamps, which arrive either as
// a {"seconds": n} object or as an ISO-like string. Unparseable values are
// treated as absent rather than failing the whole payload.
type RemoteTime struct {
	Time  time.Time
	Valid bool
}

func (rt *RemoteTime) UnmarshalJSON(data []byte) error {
	rt.Valid = false

	var obj struct {
		Seconds *int64 `json:"seconds"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Seconds != nil {
		rt.Time = time.Unix(*obj.Seconds, 0)
		rt.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			rt.Time = t
			rt.Valid = true
			return nil
		}
	}
	return nil
}

func (rt RemoteTime) MarshalJSON() ([]byte, error) {
	if !rt.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(rt.Time.Format(time.RFC3339))
}

// OrderItem is one line of a remote order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is owned and mutated by the remote gateway; this system holds a
// transient, non-authoritative copy and may only change its status.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	Phone         string        `json:"phone,omitempty"`
	Items         []OrderItem   `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     *RemoteTime   `json:"created_at,omitempty"`
	Date          string        `json:"date,omitempty"` // legacy plain date field
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	OrderType     string        `json:"order_type,omitempty"`
}

// Product is owned by the remote gateway; delete-only from this system.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}
