package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"buywise-orchestrator/internal/domain"
)

// RecommendInput is one shopping query with the caller's preferences.
type RecommendInput struct {
	Query       string
	Weights     domain.WeightVector
	UserProfile map[string]interface{}
}

// RecommendOutput is the complete pipeline result for one query. Either the
// whole structure is populated or the request failed; no partial results.
type RecommendOutput struct {
	Query       string
	Weights     domain.WeightVector
	UserProfile map[string]interface{}
	Products    []domain.ScoredProduct
	TopPicks    domain.TopPicks
	Reasoning   []string

	// Stage provenance, for logging and tests.
	RunID             string
	RetrievalFallback bool
	RetrievalReason   string
	ReviewFallback    bool
	ReviewReason      string
}

// RecommendUsecase coordinates the six pipeline stages for one query.
type RecommendUsecase interface {
	Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error)
}

type recommendUsecase struct {
	retrieve      RetrieveProductsUsecase
	analyzeReview AnalyzeReviewsUsecase
	priceAnalyzer *domain.PriceAnalyzer
	scorer        *domain.Scorer
	selector      *domain.Selector
	explainer     *domain.Explainer
	logger        *slog.Logger
}

// NewRecommendUsecase wires the stage services into the coordinator.
func NewRecommendUsecase(
	retrieve RetrieveProductsUsecase,
	analyzeReview AnalyzeReviewsUsecase,
	priceAnalyzer *domain.PriceAnalyzer,
	scorer *domain.Scorer,
	selector *domain.Selector,
	explainer *domain.Explainer,
	logger *slog.Logger,
) RecommendUsecase {
	return &recommendUsecase{
		retrieve:      retrieve,
		analyzeReview: analyzeReview,
		priceAnalyzer: priceAnalyzer,
		scorer:        scorer,
		selector:      selector,
		explainer:     explainer,
		logger:        logger,
	}
}

// Execute runs retrieval, review insight, price insight, scoring, selection
// and explanation strictly in order. Each stage consumes the complete output
// of its predecessor; nothing is shared across concurrent runs.
func (u *recommendUsecase) Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, fmt.Errorf("query is required")
	}

	weights := input.Weights.WithDefaults()
	userProfile := input.UserProfile
	if userProfile == nil {
		userProfile = map[string]interface{}{}
	}

	runID := uuid.New().String()
	u.logger.InfoContext(ctx, "pipeline_started",
		slog.String("run_id", runID),
		slog.String("query", input.Query))

	retrieval := u.retrieve.Execute(ctx, input.Query)
	u.logStage(ctx, runID, 1, "retrieval", slog.Int("product_count", len(retrieval.Products)))

	reviews := u.analyzeReview.Execute(ctx, retrieval.Products)
	u.logStage(ctx, runID, 2, "review_insight", slog.Int("insight_count", len(reviews.Insights)))

	priceInsights := u.priceAnalyzer.Analyze(retrieval.Products)
	u.logStage(ctx, runID, 3, "price_insight", slog.Int("insight_count", len(priceInsights)))

	scored := u.scorer.Score(retrieval.Products, reviews.Insights, priceInsights, weights)
	u.logStage(ctx, runID, 4, "scoring", slog.Int("scored_count", len(scored)))

	picks := u.selector.Select(scored)
	u.logStage(ctx, runID, 5, "selection")

	reasoning := u.explainer.Explain(picks, scored)
	u.logStage(ctx, runID, 6, "explanation", slog.Int("bullet_count", len(reasoning)))

	u.logger.InfoContext(ctx, "pipeline_completed",
		slog.String("run_id", runID),
		slog.Bool("retrieval_fallback", retrieval.Fallback),
		slog.Bool("review_fallback", reviews.Fallback))

	return &RecommendOutput{
		Query:             input.Query,
		Weights:           weights,
		UserProfile:       userProfile,
		Products:          scored,
		TopPicks:          picks,
		Reasoning:         reasoning,
		RunID:             runID,
		RetrievalFallback: retrieval.Fallback,
		RetrievalReason:   retrieval.Reason,
		ReviewFallback:    reviews.Fallback,
		ReviewReason:      reviews.Reason,
	}, nil
}

func (u *recommendUsecase) logStage(ctx context.Context, runID string, step int, stage string, attrs ...slog.Attr) {
	base := []slog.Attr{
		slog.String("run_id", runID),
		slog.String("stage", stage),
		slog.String("step", fmt.Sprintf("%d/6", step)),
	}
	u.logger.LogAttrs(ctx, slog.LevelInfo, "pipeline_stage_completed", append(base, attrs...)...)
}
