package service

import (
	"context"
	"strconv"

	"shopkart/backend/internal/model"
	"shopkart/backend/internal/repository"
)

// DefaultImage is served when a product has no images.
const DefaultImage = "path/to/default-image.jpg"

// ProductView is the listing shape sent to the storefront: prices as
// two-decimal display strings and a single image.
type ProductView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RetailPrice     string `json:"retailPrice"`
	DiscountedPrice string `json:"discountedPrice"`
	Description     string `json:"description"`
	Image           string `json:"image"`
}

// CartItemView is a ProductView plus the cart quantity.
type CartItemView struct {
	ProductView
	Quantity int `json:"quantity"`
}

type CatalogService struct {
	store *repository.Store
}

func NewCatalogService(store *repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]ProductView, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return viewsOf(products), nil
}

func (s *CatalogService) Wishlist(ctx context.Context, username string) ([]ProductView, error) {
	products, err := s.store.WishlistProducts(ctx, username)
	if err != nil {
		return nil, err
	}
	return viewsOf(products), nil
}

func (s *CatalogService) Cart(ctx context.Context, username string) ([]CartItemView, error) {
	products, err := s.store.CartProducts(ctx, username)
	if err != nil {
		return nil, err
	}
	views := make([]CartItemView, 0, len(products))
	for _, cp := range products {
		views = append(views, CartItemView{
			ProductView: viewOf(cp.Product),
			Quantity:    cp.Quantity,
		})
	}
	return views, nil
}

func viewsOf(products []model.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, viewOf(p))
	}
	return views
}

func viewOf(p model.Product) ProductView {
	image := DefaultImage
	if len(p.Images) > 0 && p.Images[0] != "" {
		image = p.Images[0]
	}
	return ProductView{
		ID:              p.UniqID,
		Name:            p.Name,
		RetailPrice:     formatPrice(p.RetailPrice),
		DiscountedPrice: formatPrice(p.DiscountedPrice),
		Description:     p.Description,
		Image:           image,
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
