package domain

import (
	"math"
	"sort"
)

// WeightVector holds the caller's preference weights for the four scoring
// dimensions. Weights are not validated to sum to 1; the smart score scales
// with whatever positive values the caller supplies.
type WeightVector struct {
	Price    float64 `json:"price"`
	Reviews  float64 `json:"reviews"`
	Rating   float64 `json:"rating"`
	Delivery float64 `json:"delivery"`
}

// DefaultWeights are applied when the caller supplies no weights at all.
var DefaultWeights = WeightVector{Price: 0.3, Reviews: 0.3, Rating: 0.2, Delivery: 0.2}

// WithDefaults fills every unset weight with its default, so callers may
// override a subset of the weights and keep the rest.
func (w WeightVector) WithDefaults() WeightVector {
	if w.Price == 0 {
		w.Price = DefaultWeights.Price
	}
	if w.Reviews == 0 {
		w.Reviews = DefaultWeights.Reviews
	}
	if w.Rating == 0 {
		w.Rating = DefaultWeights.Rating
	}
	if w.Delivery == 0 {
		w.Delivery = DefaultWeights.Delivery
	}
	return w
}

// ScoreComponents records the normalized sub-scores and the weights that
// produced a smart score, for transparency in the API response.
type ScoreComponents struct {
	PriceScore     float64      `json:"price_score"`
	SentimentScore float64      `json:"sentiment_score"`
	RatingScore    float64      `json:"rating_score"`
	DeliveryScore  float64      `json:"delivery_score"`
	Weights        WeightVector `json:"weights"`
}

// ScoredProduct is a ProductRecord with its weighted smart score, the score
// breakdown, its dense rank, and the joined review/price insights.
type ScoredProduct struct {
	ProductRecord
	SmartScore    float64         `json:"smart_score"`
	Components    ScoreComponents `json:"components"`
	Rank          int             `json:"rank"`
	ReviewSummary *ReviewInsight  `json:"review_summary"`
	PriceIntel    *PriceInsight   `json:"price_intel"`
}

// Scorer combines products with their insights into ranked smart scores.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score joins the insight slices to the products by product ID, computes the
// weighted smart score on a 0-100 scale, and returns the list sorted by
// descending score with dense 1-based ranks. The sort is stable: products
// with equal scores keep their input order. A missed join falls back to a
// neutral sentiment of 7 and price score of 5 rather than failing.
func (s *Scorer) Score(
	products []ProductRecord,
	reviewInsights []ReviewInsight,
	priceInsights []PriceInsight,
	weights WeightVector,
) []ScoredProduct {
	weights = weights.WithDefaults()

	reviewByID := make(map[string]ReviewInsight, len(reviewInsights))
	for _, r := range reviewInsights {
		reviewByID[r.ProductID] = r
	}
	priceByID := make(map[string]PriceInsight, len(priceInsights))
	for _, p := range priceInsights {
		priceByID[p.ProductID] = p
	}

	scored := make([]ScoredProduct, 0, len(products))
	for _, p := range products {
		sentimentScore := 7.0
		var reviewSummary *ReviewInsight
		if r, ok := reviewByID[p.ID]; ok {
			sentimentScore = r.SentimentScore
			reviewSummary = &r
		}

		priceScore := 5.0
		var priceIntel *PriceInsight
		if pi, ok := priceByID[p.ID]; ok {
			priceScore = pi.PriceScore
			priceIntel = &pi
		}

		ratingScore := normalizeRating(p.SellerRating)
		deliveryScore := normalizeDeliveryDays(p.DeliveryDays)

		smartScore := priceScore*weights.Price +
			sentimentScore*weights.Reviews +
			ratingScore*weights.Rating +
			deliveryScore*weights.Delivery

		scored = append(scored, ScoredProduct{
			ProductRecord: p,
			SmartScore:    round2(smartScore * 10),
			Components: ScoreComponents{
				PriceScore:     priceScore,
				SentimentScore: sentimentScore,
				RatingScore:    ratingScore,
				DeliveryScore:  deliveryScore,
				Weights:        weights,
			},
			ReviewSummary: reviewSummary,
			PriceIntel:    priceIntel,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SmartScore > scored[j].SmartScore
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// normalizeRating converts a 0-5 seller rating to a 0-10 score.
func normalizeRating(rating float64) float64 {
	if rating <= 0 {
		return 5
	}
	return rating / 5 * 10
}

// normalizeDeliveryDays maps delivery time to a 0-10 score, fewer days scoring higher.
func normalizeDeliveryDays(days int) float64 {
	switch {
	case days <= 0:
		return 5
	case days <= 1:
		return 10
	case days <= 2:
		return 9
	case days <= 3:
		return 8
	case days <= 5:
		return 7
	case days <= 7:
		return 6
	default:
		return 5
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
