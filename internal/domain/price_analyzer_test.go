package domain_test

import (
	"testing"

	"buywise-orchestrator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceAnalyzer_Analyze_Policy(t *testing.T) {
	analyzer := domain.NewPriceAnalyzer()

	tests := []struct {
		name           string
		product        domain.ProductRecord
		authentic      bool
		priceScore     float64
		recommendation domain.BuyRecommendation
		risk           domain.PriceRiskLevel
	}{
		{
			name: "authentic deep discount",
			// discount 24%, history average well above current
			product: domain.ProductRecord{
				ID:              "p1",
				Price:           18999,
				OriginalPrice:   24999,
				HistoricalPrice: []float64{24999, 22999, 20999, 19999, 18999},
			},
			authentic:      true,
			priceScore:     8.5,
			recommendation: domain.BuyRecommendationBuy,
			risk:           domain.PriceRiskLow,
		},
		{
			name: "authentic moderate discount",
			// discount 15%, history 10% above current
			product: domain.ProductRecord{
				ID:              "p2",
				Price:           8500,
				OriginalPrice:   10000,
				HistoricalPrice: []float64{9500, 9400, 9450},
			},
			authentic:      true,
			priceScore:     7.5,
			recommendation: domain.BuyRecommendationBuy,
			risk:           domain.PriceRiskLow,
		},
		{
			name: "large sticker discount but price above history",
			// discount 20% yet current sits 9.09% above the historical average
			product: domain.ProductRecord{
				ID:              "p3",
				Price:           12000,
				OriginalPrice:   15000,
				HistoricalPrice: []float64{11000, 11000, 11000},
			},
			authentic:      false,
			priceScore:     6.5,
			recommendation: domain.BuyRecommendationWait,
			risk:           domain.PriceRiskMedium,
		},
		{
			name: "price far above history is high risk",
			product: domain.ProductRecord{
				ID:              "p4",
				Price:           12000,
				OriginalPrice:   12500,
				HistoricalPrice: []float64{10000, 10000},
			},
			authentic:      false,
			priceScore:     5.0,
			recommendation: domain.BuyRecommendationWait,
			risk:           domain.PriceRiskHigh,
		},
		{
			name: "small discount is neutral",
			product: domain.ProductRecord{
				ID:              "p5",
				Price:           930,
				OriginalPrice:   1000,
				HistoricalPrice: []float64{940, 950},
			},
			authentic:      false,
			priceScore:     6.5,
			recommendation: domain.BuyRecommendationNeutral,
			risk:           domain.PriceRiskLow,
		},
		{
			name: "no history and no discount",
			product: domain.ProductRecord{
				ID:            "p6",
				Price:         1000,
				OriginalPrice: 1000,
			},
			authentic:      false,
			priceScore:     5.0,
			recommendation: domain.BuyRecommendationNeutral,
			risk:           domain.PriceRiskLow,
		},
		{
			name: "zero original price does not divide by zero",
			product: domain.ProductRecord{
				ID:              "p7",
				Price:           500,
				HistoricalPrice: []float64{500},
			},
			authentic:      false,
			priceScore:     5.0,
			recommendation: domain.BuyRecommendationNeutral,
			risk:           domain.PriceRiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := analyzer.Analyze([]domain.ProductRecord{tt.product})
			require.Len(t, insights, 1)

			insight := insights[0]
			assert.Equal(t, tt.product.ID, insight.ProductID)
			assert.Equal(t, tt.authentic, insight.DiscountAuthentic)
			assert.InDelta(t, tt.priceScore, insight.PriceScore, 1e-9)
			assert.Equal(t, tt.recommendation, insight.BuyRecommendation)
			assert.Equal(t, tt.risk, insight.PriceRiskLevel)
		})
	}
}

func TestPriceAnalyzer_Analyze_OnePerProductInOrder(t *testing.T) {
	analyzer := domain.NewPriceAnalyzer()

	products := []domain.ProductRecord{
		{ID: "a", Price: 100, OriginalPrice: 100},
		{ID: "b", Price: 200, OriginalPrice: 300, HistoricalPrice: []float64{280, 290}},
		{ID: "c", Price: 50, OriginalPrice: 50},
	}

	insights := analyzer.Analyze(products)
	require.Len(t, insights, 3)
	assert.Equal(t, "a", insights[0].ProductID)
	assert.Equal(t, "b", insights[1].ProductID)
	assert.Equal(t, "c", insights[2].ProductID)
}
