package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopkart/backend/internal/model"
)

// CreateOrder inserts an order with a zero placeholder total and returns the
// generated order id. The total is set once the line items are known.
func (s *Store) CreateOrder(ctx context.Context, username string) (int, error) {
	var orderID int
	err := s.getExecutor(ctx).QueryRow(ctx,
		"INSERT INTO orders (username, total_amount) VALUES ($1, 0) RETURNING order_id",
		username).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}
	return orderID, nil
}

// InsertOrderItem records one order line, capturing the price at time of
// purchase rather than a later-mutable product reference.
func (s *Store) InsertOrderItem(ctx context.Context, item model.OrderItem) error {
	_, err := s.getExecutor(ctx).Exec(ctx, `
		INSERT INTO order_items (order_id, uniq_id, quantity, price_per_unit, total_price)
		VALUES ($1, $2, $3, $4, $5)`,
		item.OrderID, item.UniqID, item.Quantity, item.PricePerUnit, item.TotalPrice)
	if err != nil {
		return fmt.Errorf("failed to insert order item: %w", err)
	}
	return nil
}

func (s *Store) SetOrderTotal(ctx context.Context, orderID int, total float64) error {
	_, err := s.getExecutor(ctx).Exec(ctx,
		"UPDATE orders SET total_amount = $1 WHERE order_id = $2", total, orderID)
	if err != nil {
		return fmt.Errorf("failed to set order total: %w", err)
	}
	return nil
}

func (s *Store) OrderByID(ctx context.Context, orderID int) (model.Order, error) {
	var o model.Order
	err := s.getExecutor(ctx).QueryRow(ctx,
		"SELECT order_id, username, total_amount FROM orders WHERE order_id = $1", orderID).
		Scan(&o.ID, &o.Username, &o.TotalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, ErrNotFound
		}
		return model.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}
