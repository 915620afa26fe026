package domain_test

import (
	"testing"

	"buywise-orchestrator/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestProductRecord_Normalize_Defaults(t *testing.T) {
	p := domain.ProductRecord{Price: 12999}
	p.Normalize(0)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Unknown", p.Platform)
	assert.Equal(t, "Unknown Product", p.Title)
	assert.Equal(t, 12999.0, p.OriginalPrice)
	assert.Equal(t, 4.0, p.SellerRating)
	assert.Equal(t, 3, p.DeliveryDays)
	assert.Equal(t, "1 year", p.Warranty)
	assert.Equal(t, "#", p.ProductURL)
	assert.Equal(t, []float64{12999, 12999}, p.HistoricalPrice)
	assert.NotNil(t, p.ReviewSnippets)
}

func TestProductRecord_Normalize_KeepsProvidedFields(t *testing.T) {
	p := domain.ProductRecord{
		ID:              "x9",
		Platform:        "Flipkart",
		Title:           "Something",
		Price:           100,
		OriginalPrice:   150,
		SellerRating:    3.8,
		DeliveryDays:    1,
		Warranty:        "2 years",
		ProductURL:      "https://example.test/p",
		HistoricalPrice: []float64{150, 120, 100},
		ReviewSnippets:  []string{"fine"},
	}
	p.Normalize(4)

	assert.Equal(t, "x9", p.ID)
	assert.Equal(t, "Flipkart", p.Platform)
	assert.Equal(t, 3.8, p.SellerRating)
	assert.Equal(t, []float64{150, 120, 100}, p.HistoricalPrice)
}

func TestProductRecord_Normalize_CapsRating(t *testing.T) {
	p := domain.ProductRecord{Price: 100, SellerRating: 9.7}
	p.Normalize(1)

	assert.Equal(t, 5.0, p.SellerRating)
}
