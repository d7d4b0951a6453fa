package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/domain/repository"
)

// CartUseCase manages the customer's pending purchases. Every operation takes
// the customer identifier explicitly; there is no ambient session state.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Add puts quantity units of a product into the customer's cart. The headroom
// check counts what is already in the cart, so repeated adds cannot creep past
// a tracked product's availability. Untracked products are never blocked.
func (u *CartUseCase) Add(ctx context.Context, userID, productID, quantity int64) error {
	if productID <= 0 || quantity <= 0 {
		return domainErrors.Validation("Invalid product or quantity")
	}

	product, err := u.products.GetPublic(ctx, productID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrProductUnavailable
		}
		return err
	}
	if !product.InStock {
		return domainErrors.ErrProductUnavailable
	}

	var inCart int64
	line, err := u.carts.GetLineByProduct(ctx, userID, productID)
	switch {
	case err == nil:
		inCart = line.Quantity
	case errors.Is(err, domainErrors.ErrNotFound):
	default:
		return err
	}

	if product.Quantity != nil && inCart+quantity > *product.Quantity {
		return &domainErrors.StockError{Issues: []domainErrors.StockIssue{{
			ProductName: product.Name,
			Requested:   inCart + quantity,
			Available:   *product.Quantity,
		}}}
	}

	if line != nil {
		return u.carts.AddQuantity(ctx, line.ID, quantity)
	}
	return u.carts.Insert(ctx, userID, productID, quantity)
}

// Get returns the customer's cart joined with live product data plus the
// running total at current prices.
func (u *CartUseCase) Get(ctx context.Context, userID int64) ([]model.CartView, decimal.Decimal, error) {
	views, err := u.carts.ListWithProducts(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, v := range views {
		total = total.Add(v.Subtotal())
	}
	return views, total, nil
}

// UpdateLine sets a cart line's quantity. Zero removes the line.
func (u *CartUseCase) UpdateLine(ctx context.Context, userID, lineID, quantity int64) error {
	if lineID <= 0 || quantity < 0 {
		return domainErrors.Validation("Invalid cart item or quantity")
	}
	if quantity == 0 {
		return u.carts.Remove(ctx, userID, lineID)
	}
	return u.carts.UpdateQuantity(ctx, userID, lineID, quantity)
}

// RemoveLine deletes a single cart line.
func (u *CartUseCase) RemoveLine(ctx context.Context, userID, lineID int64) error {
	if lineID <= 0 {
		return domainErrors.Validation("Invalid cart item")
	}
	return u.carts.Remove(ctx, userID, lineID)
}

// Clear empties the customer's cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}

// SweepArchived removes cart lines across all customers that reference
// archived products. Called by the background sweeper.
func (u *CartUseCase) SweepArchived(ctx context.Context) (int64, error) {
	return u.carts.DeleteArchived(ctx)
}
