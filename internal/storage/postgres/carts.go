package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
)

func (r *cartRepository) ListWithProducts(ctx context.Context, userID int64) ([]model.CartView, error) {
	const query = `SELECT c.id, c.product_id, p.name, p.description, p.price, p.image_url,
                          c.quantity, p.in_stock, p.quantity
                   FROM cart c
                   JOIN products p ON p.id = c.product_id
                   WHERE c.user_id=$1
                   ORDER BY c.created_at`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartView
	for rows.Next() {
		var v model.CartView
		if err := rows.Scan(&v.LineID, &v.ProductID, &v.Name, &v.Description, &v.Price,
			&v.ImageURL, &v.Quantity, &v.InStock, &v.Available); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) GetLineByProduct(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	const query = `SELECT id, user_id, product_id, quantity, created_at
                   FROM cart WHERE user_id=$1 AND product_id=$2`
	var line model.CartLine
	err := r.storage.pool.QueryRow(ctx, query, userID, productID).
		Scan(&line.ID, &line.UserID, &line.ProductID, &line.Quantity, &line.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) Insert(ctx context.Context, userID, productID, quantity int64) error {
	const query = `INSERT INTO cart (user_id, product_id, quantity) VALUES ($1, $2, $3)`
	_, err := r.storage.pool.Exec(ctx, query, userID, productID, quantity)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func (r *cartRepository) AddQuantity(ctx context.Context, lineID, delta int64) error {
	const query = `UPDATE cart SET quantity = quantity + $2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, lineID, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, lineID, quantity int64) error {
	const query = `UPDATE cart SET quantity=$3 WHERE id=$2 AND user_id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, lineID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, lineID int64) error {
	const query = `DELETE FROM cart WHERE id=$2 AND user_id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	const query = `DELETE FROM cart WHERE user_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}

func (r *cartRepository) DeleteArchived(ctx context.Context) (int64, error) {
	const query = `DELETE FROM cart USING products
                   WHERE cart.product_id = products.id AND products.archived`
	tag, err := r.storage.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
