package domain

// ProductTag is the merchandising label rendered on product cards.
type ProductTag string

const (
	TagLatest     ProductTag = "Latest"
	TagBestSeller ProductTag = "Best Seller"
	TagOffer      ProductTag = "Offer"
	TagNewArrival ProductTag = "New Arrival"
	TagNone       ProductTag = "None"
)

type Feature struct {
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}

type Product struct {
	ID            string            `json:"id" db:"id"`
	Name          string            `json:"name" db:"name"`
	Description   string            `json:"description" db:"description"`
	Price         float64           `json:"price" db:"price"`
	OriginalPrice *float64          `json:"original_price,omitempty" db:"original_price"`
	Category      string            `json:"category" db:"category"`
	Images        []string          `json:"images"`
	Specs         map[string]string `json:"specs"`
	Features      []Feature         `json:"features"`
	Tag           ProductTag        `json:"tag" db:"tag"`
	Stock         int               `json:"stock" db:"stock"`
	Rating        float64           `json:"rating" db:"rating"`
	ReviewCount   int               `json:"review_count" db:"review_count"`
	CreatedAt     int64             `json:"created_at" db:"created_at"`
}

type Banner struct {
	ID           string `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Subtitle     string `json:"subtitle" db:"subtitle"`
	ImageURL     string `json:"image_url" db:"image_url"`
	Tag          string `json:"tag" db:"tag"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
}

type Category struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
