package model

type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type Product struct {
	UniqID          string   `json:"uniq_id"`
	Name            string   `json:"product_name"`
	RetailPrice     float64  `json:"retail_price"`
	DiscountedPrice float64  `json:"discounted_price"`
	Images          []string `json:"images"`
	Description     string   `json:"description"`
}

// CartProduct is a product row joined with the caller's cart quantity.
type CartProduct struct {
	Product
	Quantity int `json:"quantity"`
}

// CartLine is the slice of a cart row that checkout needs: the product,
// how many, and its discounted price at the moment of purchase.
type CartLine struct {
	UniqID          string
	Quantity        int
	DiscountedPrice float64
}

type Order struct {
	ID          int     `json:"order_id"`
	Username    string  `json:"username"`
	TotalAmount float64 `json:"total_amount"`
}

type OrderItem struct {
	OrderID      int     `json:"order_id"`
	UniqID       string  `json:"uniq_id"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalPrice   float64 `json:"total_price"`
}
