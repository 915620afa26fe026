package domain

import "fmt"

// ProductRecord is a single product listing as retrieved from a platform.
// Records are immutable once retrieval completes; later stages only read them.
type ProductRecord struct {
	ID              string    `json:"id"`
	Platform        string    `json:"platform"`
	Title           string    `json:"title"`
	Brand           string    `json:"brand,omitempty"`
	Price           float64   `json:"price"`
	OriginalPrice   float64   `json:"original_price"`
	SellerRating    float64   `json:"seller_rating"`
	DeliveryDays    int       `json:"delivery_days"`
	Warranty        string    `json:"warranty"`
	ProductURL      string    `json:"product_url"`
	HistoricalPrice []float64 `json:"historical_price"`
	ReviewSnippets  []string  `json:"review_snippets"`
}

// Normalize fills the defaults for fields an external search result may omit.
// index is the zero-based position in the batch, used to synthesize an ID.
func (p *ProductRecord) Normalize(index int) {
	if p.ID == "" {
		p.ID = fmt.Sprintf("p%d", index+1)
	}
	if p.Platform == "" {
		p.Platform = "Unknown"
	}
	if p.Title == "" {
		p.Title = "Unknown Product"
	}
	if p.OriginalPrice <= 0 {
		p.OriginalPrice = p.Price
	}
	if p.SellerRating <= 0 {
		p.SellerRating = 4.0
	}
	if p.SellerRating > 5 {
		p.SellerRating = 5
	}
	if p.DeliveryDays <= 0 {
		p.DeliveryDays = 3
	}
	if p.Warranty == "" {
		p.Warranty = "1 year"
	}
	if p.ProductURL == "" {
		p.ProductURL = "#"
	}
	if p.ReviewSnippets == nil {
		p.ReviewSnippets = []string{}
	}
	if len(p.HistoricalPrice) == 0 {
		p.HistoricalPrice = []float64{p.OriginalPrice, p.Price}
	}
}
