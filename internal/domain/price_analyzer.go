package domain

// PriceAnalyzer derives price-fairness verdicts from listed, original and
// historical prices. Pure arithmetic, no external calls.
type PriceAnalyzer struct{}

func NewPriceAnalyzer() *PriceAnalyzer {
	return &PriceAnalyzer{}
}

// Analyze returns one PriceInsight per input product, in input order.
func (a *PriceAnalyzer) Analyze(products []ProductRecord) []PriceInsight {
	insights := make([]PriceInsight, 0, len(products))
	for _, p := range products {
		insights = append(insights, a.analyzeOne(p))
	}
	return insights
}

func (a *PriceAnalyzer) analyzeOne(p ProductRecord) PriceInsight {
	current := p.Price
	original := p.OriginalPrice
	if original <= 0 {
		original = current
	}

	avgHistorical := mean(p.HistoricalPrice)

	var discountPercent float64
	if original > 0 {
		discountPercent = (original - current) / original * 100
	}
	var vsHistoryPercent float64
	if avgHistorical > 0 {
		vsHistoryPercent = (avgHistorical - current) / avgHistorical * 100
	}

	authentic := discountPercent > 10 && vsHistoryPercent > 5

	priceScore := 5.0
	switch {
	case authentic && discountPercent > 20:
		priceScore = 8.5
	case authentic:
		priceScore = 7.5
	case discountPercent > 5:
		priceScore = 6.5
	}

	recommendation := BuyRecommendationNeutral
	if authentic {
		recommendation = BuyRecommendationBuy
	} else if vsHistoryPercent < -5 {
		recommendation = BuyRecommendationWait
	}

	// "Low" is the fallthrough default. The authentic big-discount branch
	// also forces Low; both paths are intentional and kept distinct.
	risk := PriceRiskLow
	switch {
	case vsHistoryPercent < -10:
		risk = PriceRiskHigh
	case vsHistoryPercent < -5:
		risk = PriceRiskMedium
	case authentic && discountPercent > 20:
		risk = PriceRiskLow
	}

	return PriceInsight{
		ProductID:         p.ID,
		DiscountAuthentic: authentic,
		PriceScore:        priceScore,
		BuyRecommendation: recommendation,
		PriceRiskLevel:    risk,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
