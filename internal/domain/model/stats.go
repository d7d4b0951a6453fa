package model

import "github.com/shopspring/decimal"

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	Products        int64
	Customers       int64
	Orders          int64
	Revenue         decimal.Decimal
	PendingMessages int64
	RecentOrders    []Order
}
