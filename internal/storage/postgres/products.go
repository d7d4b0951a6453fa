package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
)

const productColumns = `id, name, description, price, category, image_url, hover_image_url,
                        featured_image_url, badge, in_stock, quantity, archived, archived_at, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL,
		&p.HoverImageURL, &p.FeaturedImageURL, &p.Badge, &p.InStock, &p.Quantity,
		&p.Archived, &p.ArchivedAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL,
			&p.HoverImageURL, &p.FeaturedImageURL, &p.Badge, &p.InStock, &p.Quantity,
			&p.Archived, &p.ArchivedAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) ListPublic(ctx context.Context, category string) ([]model.Product, error) {
	if category != "" {
		const query = `SELECT ` + productColumns + ` FROM products
                       WHERE NOT archived AND in_stock AND category=$1
                       ORDER BY created_at DESC`
		return r.queryProducts(ctx, query, category)
	}
	const query = `SELECT ` + productColumns + ` FROM products
                   WHERE NOT archived AND in_stock
                   ORDER BY created_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *productRepository) GetPublic(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1 AND NOT archived`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) ListAdmin(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products
                   WHERE NOT archived ORDER BY created_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *productRepository) ListArchived(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products
                   WHERE archived ORDER BY archived_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *productRepository) Get(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	const query = `INSERT INTO products (name, description, price, category, image_url,
                       hover_image_url, featured_image_url, badge, in_stock, quantity)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.Category,
		p.ImageURL, p.HoverImageURL, p.FeaturedImageURL, p.Badge, p.InStock, p.Quantity).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	const query = `UPDATE products SET name=$1, description=$2, price=$3, category=$4,
                       image_url=$5, hover_image_url=$6, featured_image_url=$7, badge=$8,
                       in_stock=$9, quantity=$10
                   WHERE id=$11`
	tag, err := r.storage.pool.Exec(ctx, query, p.Name, p.Description, p.Price, p.Category,
		p.ImageURL, p.HoverImageURL, p.FeaturedImageURL, p.Badge, p.InStock, p.Quantity, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Archive(ctx context.Context, id int64) error {
	const query = `UPDATE products SET archived=TRUE, archived_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Restore(ctx context.Context, id int64) error {
	const query = `UPDATE products SET archived=FALSE, archived_at=NULL WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
