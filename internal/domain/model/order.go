package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fixed order lifecycle enumeration.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the declared set.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a persisted purchase. TotalAmount is fixed at creation time and
// never recomputed from current prices.
type Order struct {
	ID          int64
	UserID      int64
	TotalAmount decimal.Decimal
	Status      OrderStatus
	CreatedAt   time.Time

	// Populated by admin listings only.
	UserName  string
	UserEmail string
}

// OrderItem snapshots product id, name, quantity and unit price at purchase
// time, decoupled from later catalog edits.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int64
	Price       decimal.Decimal
}
