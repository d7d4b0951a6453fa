package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// OrderItemResponse is a purchased line snapshot.
type OrderItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderResponse describes one persisted order.
type OrderResponse struct {
	ID          int64               `json:"id"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UserName    string              `json:"user_name,omitempty"`
	UserEmail   string              `json:"user_email,omitempty"`
	Items       []OrderItemResponse `json:"items,omitempty"`
}

// OrderFromModel converts a domain order, optionally with its items.
func OrderFromModel(o *model.Order, items []model.OrderItem) *OrderResponse {
	if o == nil {
		return nil
	}
	resp := &OrderResponse{
		ID:          o.ID,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UserName:    o.UserName,
		UserEmail:   o.UserEmail,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return resp
}

// OrdersFromModel converts a slice of domain orders without items.
func OrdersFromModel(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *OrderFromModel(&orders[i], nil))
	}
	return out
}

// UpdateOrderStatusRequest describes the admin status change payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrdersResponse lists orders.
type OrdersResponse struct {
	Response
	Orders []OrderResponse `json:"orders"`
}

// SingleOrderResponse wraps one order with its items.
type SingleOrderResponse struct {
	Response
	Order *OrderResponse `json:"order,omitempty"`
}
