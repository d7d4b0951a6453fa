package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
)

type checkoutLine struct {
	productID int64
	requested int64
	name      string
	price     decimal.Decimal
	inStock   bool
	archived  bool
	available *int64
}

// Checkout converts the customer's cart into one order atomically. The cart
// rows are read joined with their products under FOR UPDATE row locks, so the
// validation below stays authoritative until commit and two concurrent
// checkouts cannot both pass the stock check for the same product.
func (r *orderRepository) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectCart = `SELECT c.product_id, c.quantity, p.name, p.price, p.in_stock, p.archived, p.quantity
                            FROM cart c
                            JOIN products p ON p.id = c.product_id
                            WHERE c.user_id=$1
                            ORDER BY c.id
                            FOR UPDATE OF p`

		rows, err := tx.Query(ctx, selectCart, userID)
		if err != nil {
			return err
		}

		var lines []checkoutLine
		for rows.Next() {
			var l checkoutLine
			if err := rows.Scan(&l.productID, &l.requested, &l.name, &l.price,
				&l.inStock, &l.archived, &l.available); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, l)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		if len(lines) == 0 {
			return domainErrors.ErrEmptyCart
		}

		// Collect every offending line before failing, so the customer
		// sees all problems at once.
		var issues []domainErrors.StockIssue
		for _, l := range lines {
			switch {
			case l.archived || !l.inStock:
				issues = append(issues, domainErrors.StockIssue{ProductName: l.name, Unavailable: true})
			case l.available != nil && l.requested > *l.available:
				issues = append(issues, domainErrors.StockIssue{
					ProductName: l.name,
					Requested:   l.requested,
					Available:   *l.available,
				})
			}
		}
		if len(issues) > 0 {
			return &domainErrors.StockError{Issues: issues}
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.price.Mul(decimal.NewFromInt(l.requested)))
		}

		const insertOrder = `INSERT INTO orders (user_id, total_amount, status)
                             VALUES ($1, $2, $3)
                             RETURNING id, created_at`
		created := model.Order{UserID: userID, TotalAmount: total, Status: model.OrderStatusPending}
		if err := tx.QueryRow(ctx, insertOrder, userID, total, model.OrderStatusPending).
			Scan(&created.ID, &created.CreatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, product_name, quantity, price)
                            VALUES ($1, $2, $3, $4, $5)`
		// Saturating decrement evaluated by the store: quantity never goes
		// negative and in_stock flips false exactly when it reaches zero.
		// Untracked (NULL) quantities are left alone.
		const decrementStock = `UPDATE products
                                SET quantity = GREATEST(quantity - $2, 0),
                                    in_stock = CASE WHEN quantity - $2 <= 0 THEN FALSE ELSE in_stock END
                                WHERE id=$1 AND quantity IS NOT NULL`

		for _, l := range lines {
			if _, err := tx.Exec(ctx, insertItem, created.ID, l.productID, l.name, l.requested, l.price); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, decrementStock, l.productID, l.requested); err != nil {
				return err
			}
		}

		const clearCart = `DELETE FROM cart WHERE user_id=$1`
		if _, err := tx.Exec(ctx, clearCart, userID); err != nil {
			return err
		}

		order = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, total_amount, status, created_at
                   FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, userID)
}

func (r *orderRepository) items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, product_name, quantity, price
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetByUser(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItem, error) {
	const query = `SELECT id, user_id, total_amount, status, created_at
                   FROM orders WHERE id=$1 AND user_id=$2`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, orderID, userID).
		Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domainErrors.ErrNotFound
		}
		return nil, nil, err
	}

	items, err := r.items(ctx, o.ID)
	if err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at,
                          COALESCE(u.name, ''), COALESCE(u.email, '')
                   FROM orders o
                   LEFT JOIN users u ON u.id = o.user_id
                   ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt,
			&o.UserName, &o.UserEmail); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Get(ctx context.Context, orderID int64) (*model.Order, []model.OrderItem, error) {
	const query = `SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at,
                          COALESCE(u.name, ''), COALESCE(u.email, '')
                   FROM orders o
                   LEFT JOIN users u ON u.id = o.user_id
                   WHERE o.id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, orderID).
		Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UserName, &o.UserEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domainErrors.ErrNotFound
		}
		return nil, nil, err
	}

	items, err := r.items(ctx, o.ID)
	if err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, orderID int64) error {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
