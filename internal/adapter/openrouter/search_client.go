// Package openrouter implements the two LLM collaborators against an
// OpenAI-compatible chat-completions API.
package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared"

	"buywise-orchestrator/internal/domain"
)

const searchSystemPrompt = `You are a Multi-Website Product Search Agent for Indian e-commerce.

Your job: Given a user's product query, simulate searching across major Indian e-commerce platforms and return realistic product listings.

PLATFORMS TO SEARCH (pick 3-5 most relevant):
- Amazon India
- Flipkart
- Croma
- Reliance Digital
- Myntra
- Nykaa
- Ajio
- Tata CLiQ
- JioMart
- Meesho

RULES:
1. Return EXACTLY 6 products from at least 3 different platforms.
2. Include a mix: 2 budget options, 2 mid-range, 2 premium.
3. Use realistic Indian pricing (INR). No currency symbols in the number fields.
4. Each product MUST include ALL fields listed below. No missing fields.
5. Generate realistic but varied review snippets (5 per product).
6. Historical prices should show a realistic downward trend over 5 data points.
7. Prices must be realistic for the Indian market.
8. product_url can be a realistic-looking URL for that platform.
9. Return ONLY a valid JSON array. No markdown code fences, no explanation text.

REQUIRED JSON FORMAT (array of objects):
[
  {
    "id": "p1",
    "platform": "Amazon",
    "title": "Product Name Brand Model",
    "brand": "BrandName",
    "price": 12999,
    "original_price": 17999,
    "seller_rating": 4.3,
    "delivery_days": 2,
    "warranty": "1 year",
    "product_url": "https://www.amazon.in/dp/EXAMPLE",
    "image_placeholder": "product image",
    "review_snippets": [
      "Review 1 text here",
      "Review 2 text here",
      "Review 3 text here",
      "Review 4 text here",
      "Review 5 text here"
    ],
    "historical_price": [17999, 16499, 15999, 14499, 12999]
  }
]

IMPORTANT: Return ONLY the JSON array. No other text.`

var codeFenceRe = regexp.MustCompile("(?i)```(?:json)?\\s*")

// SearchClient asks the chat model to simulate a multi-platform product
// search and parses the JSON array it returns.
type SearchClient struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

func NewSearchClient(client openai.Client, model string, logger *slog.Logger) *SearchClient {
	return &SearchClient{
		client: client,
		model:  model,
		logger: logger,
	}
}

var _ domain.ProductSearcher = (*SearchClient)(nil)

// Search runs one chat completion and returns the normalized listings.
// Any transport, status or parse failure is returned as an error so the
// retrieval usecase can substitute fallback data.
func (s *SearchClient) Search(ctx context.Context, query string) ([]domain.ProductRecord, error) {
	startTime := time.Now()
	s.logger.Info("product_search_started",
		slog.String("query", truncateString(query, 100)),
		slog.String("model", s.model))

	userPrompt := fmt.Sprintf(`Search across multiple Indian e-commerce websites for: %q

Return 6 realistic product listings from different platforms, with varied pricing (budget to premium). All prices in INR.`, query)

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(searchSystemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       shared.ChatModel(s.model),
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(4000),
	})
	if err != nil {
		s.logger.Warn("product_search_failed",
			slog.String("error", err.Error()),
			slog.Int64("elapsed_ms", time.Since(startTime).Milliseconds()))
		return nil, fmt.Errorf("failed to call search completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("search completion returned no choices")
	}

	products, err := parseSearchContent(completion.Choices[0].Message.Content)
	if err != nil {
		s.logger.Warn("product_search_unparseable",
			slog.String("error", err.Error()),
			slog.Int64("elapsed_ms", time.Since(startTime).Milliseconds()))
		return nil, err
	}

	s.logger.Info("product_search_completed",
		slog.Int("product_count", len(products)),
		slog.Int64("elapsed_ms", time.Since(startTime).Milliseconds()))
	return products, nil
}

// parseSearchContent strips markdown fences, decodes the JSON array and
// normalizes every record's optional fields.
func parseSearchContent(content string) ([]domain.ProductRecord, error) {
	raw := strings.TrimSpace(codeFenceRe.ReplaceAllString(content, ""))

	var products []domain.ProductRecord
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("search response contained no products")
	}

	for i := range products {
		products[i].Normalize(i)
	}
	return products, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
