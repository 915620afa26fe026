package domain

// Durability is the review-derived longevity assessment of a product.
type Durability string

const (
	DurabilityLow    Durability = "Low"
	DurabilityMedium Durability = "Medium"
	DurabilityHigh   Durability = "High"
)

// ReviewInsight is the structured summary extracted from a product's review
// snippets. One insight exists per product in a batch, joined by ProductID.
type ReviewInsight struct {
	ProductID            string     `json:"productId"`
	Pros                 []string   `json:"pros"`
	Cons                 []string   `json:"cons"`
	SentimentScore       float64    `json:"sentiment_score"`
	CommonComplaints     []string   `json:"common_complaints"`
	DurabilityAssessment Durability `json:"durability_assessment"`
}
