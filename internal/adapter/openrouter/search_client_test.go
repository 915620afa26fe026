package openrouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchContent_PlainArray(t *testing.T) {
	content := `[
		{"id": "p1", "platform": "Amazon", "title": "Phone A", "price": 12999,
		 "original_price": 17999, "seller_rating": 4.3, "delivery_days": 2,
		 "warranty": "1 year", "product_url": "https://amazon.in/a",
		 "review_snippets": ["nice"], "historical_price": [17999, 12999]},
		{"id": "p2", "platform": "Flipkart", "title": "Phone B", "price": 8999}
	]`

	products, err := parseSearchContent(content)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, 4.3, products[0].SellerRating)

	// sparse records get normalized defaults
	assert.Equal(t, 8999.0, products[1].OriginalPrice)
	assert.Equal(t, 4.0, products[1].SellerRating)
	assert.Equal(t, 3, products[1].DeliveryDays)
	assert.Equal(t, "1 year", products[1].Warranty)
	assert.Equal(t, "#", products[1].ProductURL)
	assert.Equal(t, []float64{8999, 8999}, products[1].HistoricalPrice)
}

func TestParseSearchContent_StripsCodeFences(t *testing.T) {
	content := "```json\n[{\"title\": \"Fenced Product\", \"price\": 100}]\n```"

	products, err := parseSearchContent(content)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Fenced Product", products[0].Title)
	assert.Equal(t, "p1", products[0].ID)
}

func TestParseSearchContent_MissingIDsAreSynthesized(t *testing.T) {
	content := `[{"title": "A", "price": 1}, {"title": "B", "price": 2}, {"title": "C", "price": 3}]`

	products, err := parseSearchContent(content)
	require.NoError(t, err)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
	assert.Equal(t, "p3", products[2].ID)
}

func TestParseSearchContent_RatingCappedAtFive(t *testing.T) {
	content := `[{"title": "A", "price": 1, "seller_rating": 8.9}]`

	products, err := parseSearchContent(content)
	require.NoError(t, err)
	assert.Equal(t, 5.0, products[0].SellerRating)
}

func TestParseSearchContent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "sorry, I can't help with that"},
		{"object instead of array", `{"products": []}`},
		{"empty array", "[]"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSearchContent(tt.content)
			assert.Error(t, err)
		})
	}
}
