package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// StatsResponse aggregates the dashboard counters and the latest orders.
type StatsResponse struct {
	Response
	Stats *StatsPayload `json:"stats,omitempty"`
}

// StatsPayload is the dashboard counter block.
type StatsPayload struct {
	Products        int64           `json:"products"`
	Customers       int64           `json:"customers"`
	Orders          int64           `json:"orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	PendingMessages int64           `json:"pending_messages"`
	RecentOrders    []OrderResponse `json:"recent_orders"`
}

// StatsFromModel converts domain dashboard stats to their response shape.
func StatsFromModel(s *model.DashboardStats) *StatsPayload {
	if s == nil {
		return nil
	}
	return &StatsPayload{
		Products:        s.Products,
		Customers:       s.Customers,
		Orders:          s.Orders,
		Revenue:         s.Revenue,
		PendingMessages: s.PendingMessages,
		RecentOrders:    OrdersFromModel(s.RecentOrders),
	}
}
