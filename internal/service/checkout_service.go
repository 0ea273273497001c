package service

import (
	"context"

	"shopkart/backend/internal/model"
	"shopkart/backend/internal/repository"
)

type CheckoutService struct {
	store *repository.Store
}

func NewCheckoutService(store *repository.Store) *CheckoutService {
	return &CheckoutService{store: store}
}

func (s *CheckoutService) AddToWishlist(ctx context.Context, username, productID string) error {
	return s.store.AddWishlistEntry(ctx, username, productID)
}

func (s *CheckoutService) AddToCart(ctx context.Context, username, productID string) error {
	return s.store.AddCartEntry(ctx, username, productID)
}

// PlaceOrder converts the user's cart into an order. The whole sequence runs
// in one transaction: either the order, all its items, the final total and
// the cart deletion commit together, or none of them do. An empty cart still
// yields an order with a zero total and no items.
func (s *CheckoutService) PlaceOrder(ctx context.Context, username string) (int, error) {
	var orderID int
	err := s.store.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		orderID, err = s.store.CreateOrder(ctx, username)
		if err != nil {
			return err
		}

		lines, err := s.store.CartLines(ctx, username)
		if err != nil {
			return err
		}

		var total float64
		for _, ln := range lines {
			lineTotal := ln.DiscountedPrice * float64(ln.Quantity)
			total += lineTotal

			item := model.OrderItem{
				OrderID:      orderID,
				UniqID:       ln.UniqID,
				Quantity:     ln.Quantity,
				PricePerUnit: ln.DiscountedPrice,
				TotalPrice:   lineTotal,
			}
			if err := s.store.InsertOrderItem(ctx, item); err != nil {
				return err
			}
		}

		if err := s.store.SetOrderTotal(ctx, orderID, total); err != nil {
			return err
		}

		return s.store.ClearCart(ctx, username)
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}
