package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared"

	"buywise-orchestrator/internal/domain"
)

const reviewSystemPrompt = `You are the Review Intelligence Agent.

You analyze customer reviews and extract meaningful patterns.

Extract:
- Top 5 recurring pros
- Top 5 recurring cons
- Overall sentiment score (0-10)
- Most frequent complaints
- Product durability assessment (Low/Medium/High)

Rules:
- Be objective.
- Do NOT exaggerate.
- Do NOT recommend purchasing.
- Focus only on review-derived insights.
- Return structured JSON.`

// reviewProductPayload is the per-product input handed to the model.
type reviewProductPayload struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	ReviewSnippets []string `json:"review_snippets"`
}

// reviewInsightWire mirrors domain.ReviewInsight with schema annotations for
// the strict response format.
type reviewInsightWire struct {
	ProductID            string   `json:"productId" jsonschema:"title=productId,description=same id as the product in the input"`
	Pros                 []string `json:"pros" jsonschema:"title=pros,description=top recurring pros,maxItems=5"`
	Cons                 []string `json:"cons" jsonschema:"title=cons,description=top recurring cons,maxItems=5"`
	SentimentScore       float64  `json:"sentiment_score" jsonschema:"title=sentiment_score,description=overall sentiment from 0 to 10"`
	CommonComplaints     []string `json:"common_complaints" jsonschema:"title=common_complaints,description=most frequent complaints"`
	DurabilityAssessment string   `json:"durability_assessment" jsonschema:"title=durability_assessment,description=Low or Medium or High"`
}

// reviewAnalysisResponse is the object-rooted wrapper required by the strict
// JSON-schema response format.
type reviewAnalysisResponse struct {
	Insights []reviewInsightWire `json:"insights" jsonschema:"title=insights,description=one insight per input product"`
}

// ReviewClient extracts structured review insights through a chat completion
// with a strict JSON-schema response format.
type ReviewClient struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

func NewReviewClient(client openai.Client, model string, logger *slog.Logger) *ReviewClient {
	return &ReviewClient{
		client: client,
		model:  model,
		logger: logger,
	}
}

var _ domain.ReviewAnalyzer = (*ReviewClient)(nil)

// Analyze sends all products in one completion and returns the parsed
// insights with per-field defaults applied. Any failure is returned as an
// error; the caller substitutes the heuristic fallback.
func (c *ReviewClient) Analyze(ctx context.Context, products []domain.ProductRecord) ([]domain.ReviewInsight, error) {
	startTime := time.Now()
	c.logger.Info("review_analysis_started",
		slog.Int("product_count", len(products)),
		slog.String("model", c.model))

	payload := make([]reviewProductPayload, 0, len(products))
	for _, p := range products {
		payload = append(payload, reviewProductPayload{
			ID:             p.ID,
			Title:          p.Title,
			ReviewSnippets: p.ReviewSnippets,
		})
	}
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal review payload: %w", err)
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(reviewSystemPrompt),
			openai.UserMessage(fmt.Sprintf("Products:\n%s", encoded)),
		},
		Model:          shared.ChatModel(c.model),
		ResponseFormat: reviewResponseFormat(),
		Temperature:    openai.Float(0.3),
	})
	if err != nil {
		c.logger.Warn("review_analysis_failed",
			slog.String("error", err.Error()),
			slog.Int64("elapsed_ms", time.Since(startTime).Milliseconds()))
		return nil, fmt.Errorf("failed to call review completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("review completion returned no choices")
	}

	var parsed reviewAnalysisResponse
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &parsed); err != nil {
		c.logger.Warn("review_analysis_unparseable",
			slog.String("error", err.Error()),
			slog.Int64("elapsed_ms", time.Since(startTime).Milliseconds()))
		return nil, fmt.Errorf("failed to decode review response: %w", err)
	}
	if len(parsed.Insights) == 0 {
		return nil, fmt.Errorf("review response contained no insights")
	}

	insights := make([]domain.ReviewInsight, 0, len(parsed.Insights))
	for _, item := range parsed.Insights {
		insights = append(insights, normalizeInsight(item))
	}

	c.logger.Info("review_analysis_completed",
		slog.Int("insight_count", len(insights)),
		slog.Int64("elapsed_ms", time.Since(startTime).Milliseconds()))
	return insights, nil
}

func reviewResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "review_insights",
		Description: openai.String("structured review insights per product"),
		Schema:      GenerateSchema[reviewAnalysisResponse](),
		Strict:      openai.Bool(true),
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			JSONSchema: schemaParam,
		},
	}
}

// normalizeInsight fills the defaults the original pipeline applied to each
// parsed entry.
func normalizeInsight(w reviewInsightWire) domain.ReviewInsight {
	insight := domain.ReviewInsight{
		ProductID:            w.ProductID,
		Pros:                 w.Pros,
		Cons:                 w.Cons,
		SentimentScore:       w.SentimentScore,
		CommonComplaints:     w.CommonComplaints,
		DurabilityAssessment: domain.Durability(w.DurabilityAssessment),
	}
	if insight.Pros == nil {
		insight.Pros = []string{}
	}
	if insight.Cons == nil {
		insight.Cons = []string{}
	}
	if insight.CommonComplaints == nil {
		insight.CommonComplaints = []string{}
	}
	if insight.SentimentScore == 0 {
		insight.SentimentScore = 7.5
	}
	switch insight.DurabilityAssessment {
	case domain.DurabilityLow, domain.DurabilityMedium, domain.DurabilityHigh:
	default:
		insight.DurabilityAssessment = domain.DurabilityMedium
	}
	return insight
}
