package domain

// BuyRecommendation is the timing verdict for a product's current price.
type BuyRecommendation string

const (
	BuyRecommendationBuy     BuyRecommendation = "Buy"
	BuyRecommendationWait    BuyRecommendation = "Wait"
	BuyRecommendationNeutral BuyRecommendation = "Neutral"
)

// PriceRiskLevel grades how likely the shown price is to move against the buyer.
type PriceRiskLevel string

const (
	PriceRiskLow    PriceRiskLevel = "Low"
	PriceRiskMedium PriceRiskLevel = "Medium"
	PriceRiskHigh   PriceRiskLevel = "High"
)

// PriceInsight is the price-fairness verdict for one product, joined by ProductID.
type PriceInsight struct {
	ProductID         string            `json:"productId"`
	DiscountAuthentic bool              `json:"discount_authentic"`
	PriceScore        float64           `json:"price_score"`
	BuyRecommendation BuyRecommendation `json:"buy_recommendation"`
	PriceRiskLevel    PriceRiskLevel    `json:"price_risk_level"`
}
