package usecase

import (
	"context"
	"log/slog"

	"buywise-orchestrator/internal/domain"
)

// AnalyzeReviewsOutput carries one insight per product plus which path
// produced them.
type AnalyzeReviewsOutput struct {
	Insights []domain.ReviewInsight
	Fallback bool
	Reason   string
}

// AnalyzeReviewsUsecase turns review snippets into structured insights.
type AnalyzeReviewsUsecase interface {
	Execute(ctx context.Context, products []domain.ProductRecord) *AnalyzeReviewsOutput
}

type analyzeReviewsUsecase struct {
	analyzer domain.ReviewAnalyzer
	logger   *slog.Logger
}

// NewAnalyzeReviewsUsecase builds the review stage. analyzer may be nil when
// no LLM capability is configured; the heuristic then covers every request.
func NewAnalyzeReviewsUsecase(analyzer domain.ReviewAnalyzer, logger *slog.Logger) AnalyzeReviewsUsecase {
	return &analyzeReviewsUsecase{
		analyzer: analyzer,
		logger:   logger,
	}
}

// Execute delegates to the external analyzer once; on any failure it
// substitutes the fixed neutral heuristic, one entry per product.
func (u *analyzeReviewsUsecase) Execute(ctx context.Context, products []domain.ProductRecord) *AnalyzeReviewsOutput {
	if u.analyzer == nil {
		return u.fallback(ctx, products, "review analyzer not configured")
	}

	insights, err := u.analyzer.Analyze(ctx, products)
	if err != nil {
		return u.fallback(ctx, products, err.Error())
	}
	if len(insights) == 0 {
		return u.fallback(ctx, products, "analyzer returned no insights")
	}

	u.logger.InfoContext(ctx, "review_analysis_completed",
		slog.String("source", "llm"),
		slog.Int("insight_count", len(insights)))
	return &AnalyzeReviewsOutput{Insights: insights}
}

func (u *analyzeReviewsUsecase) fallback(ctx context.Context, products []domain.ProductRecord, reason string) *AnalyzeReviewsOutput {
	insights := make([]domain.ReviewInsight, 0, len(products))
	for _, p := range products {
		insights = append(insights, heuristicInsight(p.ID))
	}
	u.logger.WarnContext(ctx, "review_analysis_fallback",
		slog.String("reason", reason),
		slog.Int("insight_count", len(insights)))
	return &AnalyzeReviewsOutput{
		Insights: insights,
		Fallback: true,
		Reason:   reason,
	}
}

// heuristicInsight is the canned neutral summary used when the LLM is
// unavailable or returned an unusable payload.
func heuristicInsight(productID string) domain.ReviewInsight {
	return domain.ReviewInsight{
		ProductID: productID,
		Pros: []string{
			"Good value",
			"Solid performance",
			"Easy setup",
			"Reliable brand",
			"Good customer support",
		},
		Cons: []string{
			"Some minor drawbacks in build or sound",
			"Remote could be better",
			"Limited connectivity options",
			"Average picture quality",
			"Warranty could be longer",
		},
		SentimentScore: 7.5,
		CommonComplaints: []string{
			"Occasional quality variance between units",
			"Delivery delays in some regions",
		},
		DurabilityAssessment: domain.DurabilityMedium,
	}
}
