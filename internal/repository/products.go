package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopkart/backend/internal/model"
)

const productColumns = "uniq_id, product_name, retail_price, discounted_price, images, description"

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.UniqID, &p.Name, &p.RetailPrice, &p.DiscountedPrice, &p.Images, &p.Description)
	return p, err
}

func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.getExecutor(ctx).Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY product_name")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

// UpsertProduct inserts a product unless one with the same uniq_id already
// exists, in which case the existing row is left untouched. It reports
// whether a row was inserted.
func (s *Store) UpsertProduct(ctx context.Context, p model.Product) (bool, error) {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	tag, err := s.getExecutor(ctx).Exec(ctx, `
		INSERT INTO products (uniq_id, product_name, retail_price, discounted_price, images, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (uniq_id) DO NOTHING`,
		p.UniqID, p.Name, p.RetailPrice, p.DiscountedPrice, images, p.Description)
	if err != nil {
		return false, fmt.Errorf("failed to upsert product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.getExecutor(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
