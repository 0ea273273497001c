package handler

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	router    *chi.Mux
	staticDir string

	accounts *AccountHandler
	catalog  *CatalogHandler
	shop     *ShopHandler
}

func NewHandler(staticDir string, accounts *AccountHandler, catalog *CatalogHandler, shop *ShopHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(newCompressor().Handler)

	h := &Handler{
		router:    router,
		staticDir: staticDir,
		accounts:  accounts,
		catalog:   catalog,
		shop:      shop,
	}

	h.registerRoutes()
	return h
}

// newCompressor builds the response compressor with brotli preferred over
// the stock gzip/deflate encoders.
func newCompressor() *middleware.Compressor {
	compressor := middleware.NewCompressor(5, "text/html", "application/json")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return compressor
}

func (h *Handler) registerRoutes() {
	h.router.Get("/", h.page("index.html"))
	h.router.Get("/register", h.page("register.html"))
	h.router.Get("/login", h.page("login.html"))

	h.router.Post("/register", h.accounts.Register)
	h.router.Post("/login", h.accounts.Login)

	h.router.Get("/products", h.catalog.Products)

	h.router.Post("/add-to-wishlist/{productID}", h.shop.AddToWishlist)
	h.router.Post("/add-to-cart/{productID}", h.shop.AddToCart)
	h.router.Get("/wishlist", h.shop.Wishlist)
	h.router.Get("/cart", h.shop.Cart)
	h.router.Post("/buy-now", h.shop.BuyNow)

	h.router.Get("/health", h.HealthCheck)

	// Remaining assets (products.html, scripts, images) come straight from
	// the static directory.
	h.router.Handle("/*", http.FileServer(http.Dir(h.staticDir)))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(h.staticDir, name))
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
