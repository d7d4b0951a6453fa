package usecase

import (
	"context"

	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/domain/repository"
)

// CatalogUseCase serves the public product catalog. Archived products are
// invisible here; they remain reachable through the admin use case only.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns in-stock, non-archived products, optionally filtered by category.
func (u *CatalogUseCase) List(ctx context.Context, category string) ([]model.Product, error) {
	return u.products.ListPublic(ctx, category)
}

// Get returns a single non-archived product.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetPublic(ctx, id)
}
