package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopkart/backend/internal/service"
)

type ShopHandler struct {
	catalog  *service.CatalogService
	checkout *service.CheckoutService
}

func NewShopHandler(catalog *service.CatalogService, checkout *service.CheckoutService) *ShopHandler {
	return &ShopHandler{catalog: catalog, checkout: checkout}
}

// requireUsername pulls the caller identity from the query string, writing a
// 401 when it is absent. Every shop endpoint requires it.
func requireUsername(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := r.URL.Query().Get("username")
	if username == "" {
		respondError(w, http.StatusUnauthorized, "User not logged in.")
		return "", false
	}
	return username, true
}

func (h *ShopHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUsername(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "productID")

	if err := h.checkout.AddToWishlist(r.Context(), user, productID); err != nil {
		log.Printf("Error adding to wishlist: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to add product to wishlist.")
		return
	}
	respondMessage(w, "Product added to wishlist successfully!")
}

func (h *ShopHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUsername(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "productID")

	if err := h.checkout.AddToCart(r.Context(), user, productID); err != nil {
		log.Printf("Error adding to cart: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to add product to cart.")
		return
	}
	respondMessage(w, "Product added to cart successfully!")
}

func (h *ShopHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUsername(w, r)
	if !ok {
		return
	}

	products, err := h.catalog.Wishlist(r.Context(), user)
	if err != nil {
		log.Printf("Error fetching wishlist: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch wishlist.")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ShopHandler) Cart(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUsername(w, r)
	if !ok {
		return
	}

	items, err := h.catalog.Cart(r.Context(), user)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch cart.")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *ShopHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUsername(w, r)
	if !ok {
		return
	}

	if _, err := h.checkout.PlaceOrder(r.Context(), user); err != nil {
		log.Printf("Error placing order: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to place order.")
		return
	}
	respondMessage(w, "Order placed successfully!")
}
