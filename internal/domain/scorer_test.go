package domain_test

import (
	"testing"

	"buywise-orchestrator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_Score_WeightedFormula(t *testing.T) {
	scorer := domain.NewScorer()

	products := []domain.ProductRecord{
		{ID: "a", Price: 18999, SellerRating: 4.5, DeliveryDays: 2},
		{ID: "b", Price: 14999, SellerRating: 4.2, DeliveryDays: 4},
	}
	reviews := []domain.ReviewInsight{
		{ProductID: "a", SentimentScore: 8},
		{ProductID: "b", SentimentScore: 7},
	}
	prices := []domain.PriceInsight{
		{ProductID: "a", PriceScore: 7.5},
		{ProductID: "b", PriceScore: 6.5},
	}
	weights := domain.WeightVector{Price: 0.3, Reviews: 0.3, Rating: 0.2, Delivery: 0.2}

	scored := scorer.Score(products, reviews, prices, weights)
	require.Len(t, scored, 2)

	// a: (7.5*0.3 + 8*0.3 + 9*0.2 + 9*0.2) * 10
	assert.Equal(t, "a", scored[0].ID)
	assert.InDelta(t, 82.5, scored[0].SmartScore, 1e-9)
	assert.Equal(t, 1, scored[0].Rank)

	// b: (6.5*0.3 + 7*0.3 + 8.4*0.2 + 7*0.2) * 10
	assert.Equal(t, "b", scored[1].ID)
	assert.InDelta(t, 71.3, scored[1].SmartScore, 1e-9)
	assert.Equal(t, 2, scored[1].Rank)

	// component breakdown is echoed for transparency
	assert.InDelta(t, 9.0, scored[0].Components.RatingScore, 1e-9)
	assert.InDelta(t, 9.0, scored[0].Components.DeliveryScore, 1e-9)
	assert.Equal(t, weights, scored[0].Components.Weights)
	require.NotNil(t, scored[0].ReviewSummary)
	require.NotNil(t, scored[0].PriceIntel)
	assert.Equal(t, "a", scored[0].ReviewSummary.ProductID)
}

func TestScorer_Score_DefaultWeights(t *testing.T) {
	scorer := domain.NewScorer()

	products := []domain.ProductRecord{{ID: "a", SellerRating: 5, DeliveryDays: 1}}
	reviews := []domain.ReviewInsight{{ProductID: "a", SentimentScore: 10}}
	prices := []domain.PriceInsight{{ProductID: "a", PriceScore: 10}}

	scored := scorer.Score(products, reviews, prices, domain.WeightVector{})
	require.Len(t, scored, 1)
	assert.Equal(t, domain.DefaultWeights, scored[0].Components.Weights)
	assert.InDelta(t, 100, scored[0].SmartScore, 1e-9)
}

func TestScorer_Score_PartialWeightsGetDefaults(t *testing.T) {
	scorer := domain.NewScorer()

	products := []domain.ProductRecord{{ID: "a", SellerRating: 4.5, DeliveryDays: 2}}
	reviews := []domain.ReviewInsight{{ProductID: "a", SentimentScore: 8}}
	prices := []domain.PriceInsight{{ProductID: "a", PriceScore: 7.5}}

	// only price specified; the other three keep their defaults
	scored := scorer.Score(products, reviews, prices, domain.WeightVector{Price: 0.5})
	require.Len(t, scored, 1)

	assert.Equal(t, domain.WeightVector{Price: 0.5, Reviews: 0.3, Rating: 0.2, Delivery: 0.2},
		scored[0].Components.Weights)
	// (7.5*0.5 + 8*0.3 + 9*0.2 + 9*0.2) * 10
	assert.InDelta(t, 97.5, scored[0].SmartScore, 1e-9)
}

func TestScorer_Score_MissedJoinFallsBackToNeutral(t *testing.T) {
	scorer := domain.NewScorer()

	products := []domain.ProductRecord{{ID: "orphan", SellerRating: 4, DeliveryDays: 3}}

	scored := scorer.Score(products, nil, nil, domain.DefaultWeights)
	require.Len(t, scored, 1)

	// sentiment defaults to 7 and price score to 5 when the join misses
	assert.InDelta(t, 7.0, scored[0].Components.SentimentScore, 1e-9)
	assert.InDelta(t, 5.0, scored[0].Components.PriceScore, 1e-9)
	assert.Nil(t, scored[0].ReviewSummary)
	assert.Nil(t, scored[0].PriceIntel)
	// (5*0.3 + 7*0.3 + 8*0.2 + 8*0.2) * 10
	assert.InDelta(t, 68.0, scored[0].SmartScore, 1e-9)
}

func TestScorer_Score_StableOnTies(t *testing.T) {
	scorer := domain.NewScorer()

	// identical inputs produce identical scores; input order must hold
	products := []domain.ProductRecord{
		{ID: "first", SellerRating: 4, DeliveryDays: 3},
		{ID: "second", SellerRating: 4, DeliveryDays: 3},
		{ID: "third", SellerRating: 4, DeliveryDays: 3},
	}

	scored := scorer.Score(products, nil, nil, domain.DefaultWeights)
	require.Len(t, scored, 3)
	assert.Equal(t, "first", scored[0].ID)
	assert.Equal(t, "second", scored[1].ID)
	assert.Equal(t, "third", scored[2].ID)
	assert.Equal(t, []int{1, 2, 3}, []int{scored[0].Rank, scored[1].Rank, scored[2].Rank})
}

func TestScorer_Score_MonotoneInSubScores(t *testing.T) {
	scorer := domain.NewScorer()

	base := []domain.ProductRecord{{ID: "a", SellerRating: 3, DeliveryDays: 5}}
	weights := domain.WeightVector{Price: 0.25, Reviews: 0.25, Rating: 0.25, Delivery: 0.25}

	low := scorer.Score(base, []domain.ReviewInsight{{ProductID: "a", SentimentScore: 4}},
		[]domain.PriceInsight{{ProductID: "a", PriceScore: 5}}, weights)
	high := scorer.Score(base, []domain.ReviewInsight{{ProductID: "a", SentimentScore: 9}},
		[]domain.PriceInsight{{ProductID: "a", PriceScore: 5}}, weights)

	assert.Greater(t, high[0].SmartScore, low[0].SmartScore)
}

func TestScorer_Score_DeliveryStepFunction(t *testing.T) {
	scorer := domain.NewScorer()

	tests := []struct {
		days  int
		score float64
	}{
		{0, 5}, {1, 10}, {2, 9}, {3, 8}, {4, 7}, {5, 7}, {6, 6}, {7, 6}, {8, 5}, {30, 5},
	}

	for _, tt := range tests {
		scored := scorer.Score(
			[]domain.ProductRecord{{ID: "a", SellerRating: 4, DeliveryDays: tt.days}},
			nil, nil, domain.DefaultWeights)
		require.Len(t, scored, 1)
		assert.InDelta(t, tt.score, scored[0].Components.DeliveryScore, 1e-9,
			"delivery_days=%d", tt.days)
	}
}
