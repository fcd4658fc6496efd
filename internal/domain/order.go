package domain

// OrderStatus is advanced by an administrator. The console offers the
// forward sequence Pending, Artisan Prep, Shipped, Delivered but the
// remote service accepts any value, so no transition table is enforced.
type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "Pending"
	OrderStatusArtisanPrep OrderStatus = "Artisan Prep"
	OrderStatusShipped     OrderStatus = "Shipped"
	OrderStatusDelivered   OrderStatus = "Delivered"
)

type OrderItem struct {
	ProductID string  `json:"product_id" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Price     float64 `json:"price" db:"price"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Image     string  `json:"image" db:"image"`
}

type Order struct {
	ID                string      `json:"id" db:"id"`
	TransactionNumber string      `json:"transaction_number" db:"transaction_number"`
	CustomerName      string      `json:"customer_name" db:"customer_name"`
	CustomerEmail     string      `json:"customer_email" db:"customer_email"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total" db:"total"`
	Status            OrderStatus `json:"status" db:"status"`
	CreatedAt         int64       `json:"created_at" db:"created_at"`
}
