package domain

import (
	"fmt"
	"math"
	"sort"
)

// premiumRatingTolerance treats seller ratings within this distance as tied,
// letting price decide which product reads as more premium.
const premiumRatingTolerance = 0.1

// Pick is a ScoredProduct chosen for one of the three recommendation slots,
// annotated with exactly two selection reasons and one trade-off.
type Pick struct {
	ScoredProduct
	WhySelected []string `json:"why_selected"`
	TradeOff    string   `json:"trade_off"`
}

// TopPicks holds the three labeled recommendations. Slots may point at the
// same underlying product when the candidate pool is small; that is a
// designed degenerate case, not an error. All three are nil for empty input.
type TopPicks struct {
	BestOverall *Pick `json:"best_overall"`
	BestBudget  *Pick `json:"best_budget"`
	PremiumPick *Pick `json:"premium_pick"`
}

// Selector reduces a ranked product list to the three representative picks.
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

// Select picks best-overall, best-budget and premium from a score-ranked list.
//
// Best overall is the top-ranked product. Best budget is the cheapest product
// other than best overall, or best overall itself for a single-product pool.
// Premium is chosen from products excluding both, ordered by rating with
// near-ties broken toward the higher price; the fallback chain widens the
// pool step by step until something qualifies.
func (s *Selector) Select(scored []ScoredProduct) TopPicks {
	if len(scored) == 0 {
		return TopPicks{}
	}

	byScore := make([]ScoredProduct, len(scored))
	copy(byScore, scored)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].SmartScore > byScore[j].SmartScore
	})

	byPrice := make([]ScoredProduct, len(scored))
	copy(byPrice, scored)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].Price < byPrice[j].Price
	})

	bestOverall := byScore[0]

	bestBudget := byPrice[0]
	for _, p := range byPrice {
		if p.ID != bestOverall.ID {
			bestBudget = p
			break
		}
	}

	premium, ok := headByPremium(scored, bestOverall.ID, bestBudget.ID)
	if !ok {
		premium, ok = headByPremium(scored, bestOverall.ID)
		if !ok {
			if len(byScore) > 1 {
				premium = byScore[1]
			} else {
				premium = byScore[0]
			}
		}
	}

	budgetSameAsOverall := bestBudget.ID == bestOverall.ID
	premiumSameAsOverall := premium.ID == bestOverall.ID
	premiumSameAsBudget := premium.ID == bestBudget.ID

	return TopPicks{
		BestOverall: &Pick{
			ScoredProduct: bestOverall,
			WhySelected: []string{
				fmt.Sprintf("Highest Smart Score (%.1f) based on your preferences", bestOverall.SmartScore),
				"Best balance across all factors: price, reviews, rating, and delivery",
			},
			TradeOff: "May not be the cheapest or most premium, but offers the best overall value",
		},
		BestBudget:  budgetPick(bestBudget, budgetSameAsOverall),
		PremiumPick: premiumPick(premium, premiumSameAsOverall || premiumSameAsBudget),
	}
}

// headByPremium sorts the products not excluded by ID in premium order and
// returns the head, reporting false when every product was excluded.
func headByPremium(scored []ScoredProduct, excludeIDs ...string) (ScoredProduct, bool) {
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	candidates := make([]ScoredProduct, 0, len(scored))
	for _, p := range scored {
		if _, skip := excluded[p.ID]; !skip {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return ScoredProduct{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if math.Abs(candidates[i].SellerRating-candidates[j].SellerRating) > premiumRatingTolerance {
			return candidates[i].SellerRating > candidates[j].SellerRating
		}
		return candidates[i].Price > candidates[j].Price
	})
	return candidates[0], true
}

func budgetPick(p ScoredProduct, sameAsOverall bool) *Pick {
	if sameAsOverall {
		return &Pick{
			ScoredProduct: p,
			WhySelected: []string{
				fmt.Sprintf("Lowest price (₹%s) with highest Smart Score", FormatPrice(p.Price)),
				"This product offers the best value at the lowest price point",
			},
			TradeOff: "Same as Best Overall - offers best value at lowest price",
		}
	}
	return &Pick{
		ScoredProduct: p,
		WhySelected: []string{
			fmt.Sprintf("Lowest price (₹%s) with acceptable quality", FormatPrice(p.Price)),
			fmt.Sprintf("Maintains Smart Score of %.1f while being most affordable", p.SmartScore),
		},
		TradeOff: "Lower price may mean longer delivery time or fewer premium features",
	}
}

func premiumPick(p ScoredProduct, coincides bool) *Pick {
	if coincides {
		return &Pick{
			ScoredProduct: p,
			WhySelected: []string{
				fmt.Sprintf("Highest rating (%s) with premium features", FormatRating(p.SellerRating)),
				"Optimized for quality and long-term value",
			},
			TradeOff: "Same product selected for multiple categories due to limited options",
		}
	}
	return &Pick{
		ScoredProduct: p,
		WhySelected: []string{
			fmt.Sprintf("Highest rating (%s) with premium build quality", FormatRating(p.SellerRating)),
			"Optimized for long-term value and premium experience",
		},
		TradeOff: "Higher price point, but offers superior quality and longevity",
	}
}
