package repository

import (
	"context"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Checkout converts the customer's entire cart into one order inside a
	// single transaction: validate against live stock, insert the order and
	// its line-item snapshots, decrement tracked quantities (floored at
	// zero), and clear the cart. Returns domain errors for an empty cart or
	// stock problems; any other failure rolls everything back.
	Checkout(ctx context.Context, userID int64) (*model.Order, error)

	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	GetByUser(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItem, error)

	ListAll(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, orderID int64) (*model.Order, []model.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	Delete(ctx context.Context, orderID int64) error
}
