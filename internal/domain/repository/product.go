package repository

import (
	"context"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog products.
type ProductRepository interface {
	// ListPublic returns in-stock, non-archived products, optionally filtered
	// by category, newest first.
	ListPublic(ctx context.Context, category string) ([]model.Product, error)
	// GetPublic returns a single non-archived product.
	GetPublic(ctx context.Context, id int64) (*model.Product, error)

	ListAdmin(ctx context.Context) ([]model.Product, error)
	ListArchived(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) (int64, error)
	Update(ctx context.Context, p *model.Product) error
	Archive(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}
