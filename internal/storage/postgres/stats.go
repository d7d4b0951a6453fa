package postgres

import (
	"context"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

func (r *statsRepository) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM products`, &stats.Products},
		{`SELECT COUNT(*) FROM users WHERE role='customer'`, &stats.Customers},
		{`SELECT COUNT(*) FROM orders`, &stats.Orders},
		{`SELECT COUNT(*) FROM contact_messages WHERE status='unread'`, &stats.PendingMessages},
	}
	for _, c := range counts {
		if err := r.storage.pool.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	const revenueQuery = `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status='completed'`
	if err := r.storage.pool.QueryRow(ctx, revenueQuery).Scan(&stats.Revenue); err != nil {
		return nil, err
	}

	const recentQuery = `SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at,
                                COALESCE(u.name, ''), COALESCE(u.email, '')
                         FROM orders o
                         LEFT JOIN users u ON u.id = o.user_id
                         ORDER BY o.created_at DESC
                         LIMIT 5`
	rows, err := r.storage.pool.Query(ctx, recentQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt,
			&o.UserName, &o.UserEmail); err != nil {
			return nil, err
		}
		stats.RecentOrders = append(stats.RecentOrders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &stats, nil
}
