package domain

import "fmt"

const maxReasoningBullets = 5

// NoRecommendationsMessage is the single bullet returned when the pipeline
// produced no picks to explain.
const NoRecommendationsMessage = "No recommendations available at this time."

// Explainer turns the picks into plain-language reasoning bullets. It only
// templates fields the earlier stages already computed.
type Explainer struct{}

func NewExplainer() *Explainer {
	return &Explainer{}
}

// Explain produces at most five bullets covering why best overall won, why
// the other slots did not, and the quantified budget trade-off.
func (e *Explainer) Explain(picks TopPicks, scored []ScoredProduct) []string {
	if picks.BestOverall == nil {
		return []string{NoRecommendationsMessage}
	}

	overall := picks.BestOverall
	budget := picks.BestBudget
	premium := picks.PremiumPick

	reasoning := []string{
		fmt.Sprintf(
			"Best Overall selected because it scored highest (%.1f) when balancing all your preferences: price, reviews, rating, and delivery speed.",
			overall.SmartScore,
		),
	}

	if budget != nil && budget.ID != overall.ID {
		reasoning = append(reasoning, fmt.Sprintf(
			"Budget option (%s) was not top because while it's the cheapest, it scored lower overall (%.1f vs %.1f).",
			budget.Title, budget.SmartScore, overall.SmartScore,
		))
	}

	if premium != nil && premium.ID != overall.ID {
		reasoning = append(reasoning, fmt.Sprintf(
			"Premium option (%s) was not top because its higher price (₹%s) didn't justify the score difference compared to Best Overall.",
			premium.Title, FormatPrice(premium.Price),
		))
	}

	if budget != nil && budget.ID != overall.ID {
		if priceDiff := overall.Price - budget.Price; priceDiff > 0 {
			reasoning = append(reasoning, fmt.Sprintf(
				"Consider: You could save ₹%s with the budget option, but you'd sacrifice %.1f points in overall quality.",
				FormatPrice(priceDiff), overall.SmartScore-budget.SmartScore,
			))
		}
	}

	reasoning = append(reasoning,
		"Recommendation: Choose Best Overall if you want balanced value. Choose Budget if price is your top priority. Choose Premium if you prioritize long-term quality and durability.",
	)

	if len(reasoning) > maxReasoningBullets {
		reasoning = reasoning[:maxReasoningBullets]
	}
	return reasoning
}
