package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one (customer, product, quantity) record pending purchase.
type CartLine struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int64
	CreatedAt time.Time
}

// CartView is a cart line joined with live product data for display.
// Available mirrors the product's tracked quantity (nil when untracked).
type CartView struct {
	LineID      int64
	ProductID   int64
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Quantity    int64
	InStock     bool
	Available   *int64
}

// Subtotal is quantity times current unit price.
func (v CartView) Subtotal() decimal.Decimal {
	return v.Price.Mul(decimal.NewFromInt(v.Quantity))
}

// StockWarning reports whether the line can no longer be fulfilled as-is:
// stock may have changed since the item was added.
func (v CartView) StockWarning() bool {
	if !v.InStock {
		return true
	}
	return v.Available != nil && v.Quantity > *v.Available
}
