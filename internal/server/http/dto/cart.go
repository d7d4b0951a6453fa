package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// AddToCartRequest describes the add-to-cart payload.
type AddToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// UpdateCartLineRequest describes the set-quantity payload.
type UpdateCartLineRequest struct {
	Quantity int64 `json:"quantity"`
}

// CartItemResponse is a cart line joined with live product data.
type CartItemResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	Quantity     int64           `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	StockWarning bool            `json:"stock_warning"`
}

// CartItemFromModel converts a joined cart view to its response shape.
func CartItemFromModel(v model.CartView) CartItemResponse {
	return CartItemResponse{
		ID:           v.LineID,
		ProductID:    v.ProductID,
		Name:         v.Name,
		Price:        v.Price,
		ImageURL:     v.ImageURL,
		Quantity:     v.Quantity,
		Subtotal:     v.Subtotal(),
		StockWarning: v.StockWarning(),
	}
}

// CartResponse lists the cart with its running total.
type CartResponse struct {
	Response
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
	Count int64              `json:"count"`
}
