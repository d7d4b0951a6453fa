package repository

import (
	"context"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// CartRepository describes persistence operations with customer carts.
// Every operation is scoped to a single customer.
type CartRepository interface {
	ListWithProducts(ctx context.Context, userID int64) ([]model.CartView, error)
	GetLineByProduct(ctx context.Context, userID, productID int64) (*model.CartLine, error)
	Insert(ctx context.Context, userID, productID, quantity int64) error
	AddQuantity(ctx context.Context, lineID, delta int64) error
	UpdateQuantity(ctx context.Context, userID, lineID, quantity int64) error
	Remove(ctx context.Context, userID, lineID int64) error
	Clear(ctx context.Context, userID int64) error
	// DeleteArchived removes cart lines pointing at archived products across
	// all customers. Used by the background sweeper.
	DeleteArchived(ctx context.Context) (int64, error)
}
