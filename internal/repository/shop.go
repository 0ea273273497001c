package repository

import (
	"context"
	"fmt"

	"shopkart/backend/internal/model"
)

// AddWishlistEntry records a product on the user's wishlist. Adding the same
// product twice is a no-op.
func (s *Store) AddWishlistEntry(ctx context.Context, username, uniqID string) error {
	_, err := s.getExecutor(ctx).Exec(ctx, `
		INSERT INTO wishlist (username, uniq_id)
		VALUES ($1, $2)
		ON CONFLICT (username, uniq_id) DO NOTHING`,
		username, uniqID)
	if err != nil {
		return fmt.Errorf("failed to add wishlist entry: %w", err)
	}
	return nil
}

// AddCartEntry inserts a cart row with quantity 1, or bumps the quantity when
// the (username, uniq_id) pair already exists. The merge is a single
// statement so concurrent adds cannot lose increments.
func (s *Store) AddCartEntry(ctx context.Context, username, uniqID string) error {
	_, err := s.getExecutor(ctx).Exec(ctx, `
		INSERT INTO cart (username, uniq_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (username, uniq_id)
		DO UPDATE SET quantity = cart.quantity + 1`,
		username, uniqID)
	if err != nil {
		return fmt.Errorf("failed to add cart entry: %w", err)
	}
	return nil
}

func (s *Store) WishlistProducts(ctx context.Context, username string) ([]model.Product, error) {
	rows, err := s.getExecutor(ctx).Query(ctx, `
		SELECT p.uniq_id, p.product_name, p.retail_price, p.discounted_price, p.images, p.description
		FROM products p
		JOIN wishlist w ON p.uniq_id = w.uniq_id
		WHERE w.username = $1`,
		username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wishlist product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}
	return products, nil
}

func (s *Store) CartProducts(ctx context.Context, username string) ([]model.CartProduct, error) {
	rows, err := s.getExecutor(ctx).Query(ctx, `
		SELECT p.uniq_id, p.product_name, p.retail_price, p.discounted_price, p.images, p.description, c.quantity
		FROM products p
		JOIN cart c ON p.uniq_id = c.uniq_id
		WHERE c.username = $1`,
		username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	defer rows.Close()

	var products []model.CartProduct
	for rows.Next() {
		var cp model.CartProduct
		err := rows.Scan(&cp.UniqID, &cp.Name, &cp.RetailPrice, &cp.DiscountedPrice,
			&cp.Images, &cp.Description, &cp.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart product: %w", err)
		}
		products = append(products, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	return products, nil
}

// CartLines returns the user's cart joined with current discounted prices,
// the shape checkout consumes.
func (s *Store) CartLines(ctx context.Context, username string) ([]model.CartLine, error) {
	rows, err := s.getExecutor(ctx).Query(ctx, `
		SELECT c.uniq_id, c.quantity, p.discounted_price
		FROM cart c
		JOIN products p ON c.uniq_id = p.uniq_id
		WHERE c.username = $1`,
		username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var ln model.CartLine
		if err := rows.Scan(&ln.UniqID, &ln.Quantity, &ln.DiscountedPrice); err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, ln)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart lines: %w", err)
	}
	return lines, nil
}

func (s *Store) ClearCart(ctx context.Context, username string) error {
	_, err := s.getExecutor(ctx).Exec(ctx, "DELETE FROM cart WHERE username = $1", username)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
