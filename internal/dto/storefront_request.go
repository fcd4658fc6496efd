package dto

import "github.com/aevohorology/storefront-service/internal/domain"

type ProductRequest struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	OriginalPrice *float64          `json:"original_price"`
	Category      string            `json:"category"`
	Images        []string          `json:"images"`
	Specs         map[string]string `json:"specs"`
	Features      []domain.Feature  `json:"features"`
	Tag           string            `json:"tag"`
	Stock         int               `json:"stock"`
	Rating        float64           `json:"rating"`
	ReviewCount   int               `json:"review_count"`
}

type BannerRequest struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	ImageURL     string `json:"image_url"`
	Tag          string `json:"tag"`
	DisplayOrder int    `json:"display_order"`
}

type CategoryRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductFilter struct {
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Q        string `query:"q"`
}

type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Items         []CheckoutItem `json:"items"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
