// Package catalog holds the hand-authored fallback product data served when
// the external search collaborator is unavailable or returns unusable output.
package catalog

import (
	"strings"

	"buywise-orchestrator/internal/domain"
)

// StaticCatalog serves immutable, versioned product tables keyed by a coarse
// query category. Tables are package data built once at process start.
type StaticCatalog struct{}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

var _ domain.ProductCatalog = (*StaticCatalog)(nil)

// Lookup matches the query against a small keyword set and returns a copy of
// the category's fixed product list. The default category guarantees the
// result is never empty.
func (c *StaticCatalog) Lookup(query string) []domain.ProductRecord {
	q := strings.ToLower(query)

	var source []domain.ProductRecord
	switch {
	case strings.Contains(q, "phone") || strings.Contains(q, "mobile") || strings.Contains(q, "smartphone"):
		source = phoneProducts
	case strings.Contains(q, "tv") || strings.Contains(q, "television"):
		source = tvProducts
	default:
		source = defaultProducts
	}

	// Copies keep the package tables immutable across pipeline runs.
	out := make([]domain.ProductRecord, len(source))
	copy(out, source)
	return out
}

var phoneProducts = []domain.ProductRecord{
	{
		ID:            "p1",
		Platform:      "Amazon",
		Title:         "GamingPro X1 8GB RAM 128GB",
		Price:         18999,
		OriginalPrice: 24999,
		SellerRating:  4.5,
		DeliveryDays:  2,
		Warranty:      "1 year",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Excellent gaming performance, no lag in PUBG or COD.",
			"Battery lasts all day with moderate gaming.",
			"Display is bright and colors are vibrant.",
			"Build quality is solid, feels premium.",
			"Fast charging works great, 0-100% in 45 minutes.",
		},
		HistoricalPrice: []float64{24999, 22999, 20999, 19999, 18999},
	},
	{
		ID:            "p2",
		Platform:      "Flipkart",
		Title:         "BudgetGamer Y2 6GB RAM 64GB",
		Price:         14999,
		OriginalPrice: 19999,
		SellerRating:  4.2,
		DeliveryDays:  4,
		Warranty:      "1 year",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Great value for money, handles games well.",
			"Camera is decent for the price.",
			"Battery could be better, needs charging twice a day.",
			"Some heating during extended gaming sessions.",
			"Good for casual gamers on a budget.",
		},
		HistoricalPrice: []float64{19999, 17999, 16999, 15999, 14999},
	},
	{
		ID:            "p3",
		Platform:      "Amazon",
		Title:         "EliteGamer Z3 12GB RAM 256GB",
		Price:         24999,
		OriginalPrice: 29999,
		SellerRating:  4.7,
		DeliveryDays:  3,
		Warranty:      "2 years",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Best gaming phone under 25k, handles everything smoothly.",
			"Premium build with metal frame, feels durable.",
			"120Hz display is buttery smooth for gaming.",
			"No heating issues even after 2 hours of gaming.",
			"Worth every rupee, highly recommended.",
		},
		HistoricalPrice: []float64{29999, 27999, 26999, 25999, 24999},
	},
}

var tvProducts = []domain.ProductRecord{
	{
		ID:            "p1",
		Platform:      "Amazon",
		Title:         `Acme 55" 4K Smart TV`,
		Price:         49999,
		OriginalPrice: 64999,
		SellerRating:  4.4,
		DeliveryDays:  2,
		Warranty:      "1 year",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Great picture quality and vibrant colors.",
			"Sound could be better but decent for the price.",
			"Setup was easy and UI is smooth.",
			"Build quality feels solid, no issues after 6 months.",
			"Remote control is responsive and intuitive.",
		},
		HistoricalPrice: []float64{64999, 62999, 59999, 54999, 49999},
	},
	{
		ID:            "p2",
		Platform:      "Flipkart",
		Title:         `BudgetView 50" 4K LED TV`,
		Price:         32999,
		OriginalPrice: 42999,
		SellerRating:  4.1,
		DeliveryDays:  5,
		Warranty:      "1 year",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Excellent value for money.",
			"Remote feels a bit cheap.",
			"Good brightness for well-lit rooms.",
			"Some users report backlight bleeding after a year.",
			"Great for budget-conscious buyers.",
		},
		HistoricalPrice: []float64{42999, 39999, 37999, 34999, 32999},
	},
	{
		ID:            "p3",
		Platform:      "Amazon",
		Title:         `PremiumVision 65" OLED TV`,
		Price:         119999,
		OriginalPrice: 139999,
		SellerRating:  4.8,
		DeliveryDays:  3,
		Warranty:      "3 years",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Blacks are truly deep, cinema-like experience.",
			"Expensive but worth it for movie lovers.",
			"Dolby Atmos support is fantastic.",
			"Premium build quality, should last many years.",
			"Best TV I've ever owned, no regrets.",
		},
		HistoricalPrice: []float64{139999, 134999, 129999, 124999, 119999},
	},
}

var defaultProducts = []domain.ProductRecord{
	{
		ID:            "p1",
		Platform:      "Amazon",
		Title:         "Top Rated Product Option A",
		Price:         2999,
		OriginalPrice: 4999,
		SellerRating:  4.5,
		DeliveryDays:  2,
		Warranty:      "1 year",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Excellent quality for the price.",
			"Works perfectly, exceeded expectations.",
			"Good build quality and finish.",
			"Fast delivery and great packaging.",
			"Would recommend to friends.",
		},
		HistoricalPrice: []float64{4999, 4499, 3999, 3499, 2999},
	},
	{
		ID:            "p2",
		Platform:      "Flipkart",
		Title:         "Budget Friendly Product Option B",
		Price:         1499,
		OriginalPrice: 2499,
		SellerRating:  4.1,
		DeliveryDays:  4,
		Warranty:      "6 months",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Great value for money.",
			"Decent quality at this price.",
			"Does the job, nothing fancy.",
			"Packaging could be better.",
			"Good for basic needs.",
		},
		HistoricalPrice: []float64{2499, 2199, 1999, 1699, 1499},
	},
	{
		ID:            "p3",
		Platform:      "Croma",
		Title:         "Premium Choice Product Option C",
		Price:         5999,
		OriginalPrice: 7999,
		SellerRating:  4.7,
		DeliveryDays:  3,
		Warranty:      "2 years",
		ProductURL:    "#",
		ReviewSnippets: []string{
			"Premium quality, feels luxurious.",
			"Best in class, no comparison.",
			"Durability is outstanding.",
			"Slightly expensive but worth it.",
			"Highly recommended for serious users.",
		},
		HistoricalPrice: []float64{7999, 7499, 6999, 6499, 5999},
	},
}
