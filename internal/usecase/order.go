package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/domain/repository"
)

// OrderUseCase covers checkout and the customer's own order history.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Checkout converts the customer's entire cart into one order. Stock and
// empty-cart problems pass through as-is; any storage fault is reported as a
// generic checkout failure so internals do not leak to the customer.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	order, err := u.orders.Checkout(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmptyCart) {
			return nil, err
		}
		if _, ok := domainErrors.AsStockError(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrCheckoutFailed, err)
	}
	return order, nil
}

// ListByUser returns the customer's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetByUser returns one of the customer's orders with its line items.
func (u *OrderUseCase) GetByUser(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItem, error) {
	return u.orders.GetByUser(ctx, userID, orderID)
}
