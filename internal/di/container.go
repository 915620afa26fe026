package di

import (
	"log/slog"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"buywise-orchestrator/internal/adapter/catalog"
	"buywise-orchestrator/internal/adapter/openrouter"
	"buywise-orchestrator/internal/domain"
	"buywise-orchestrator/internal/infra/config"
	"buywise-orchestrator/internal/infra/httpclient"
	"buywise-orchestrator/internal/usecase"
)

// ApplicationComponents holds all wired dependencies for the application.
type ApplicationComponents struct {
	Catalog          domain.ProductCatalog
	RetrieveUsecase  usecase.RetrieveProductsUsecase
	ReviewsUsecase   usecase.AnalyzeReviewsUsecase
	RecommendUsecase usecase.RecommendUsecase
}

// NewApplicationComponents wires all dependencies from config. When no
// OpenRouter API key is configured both LLM collaborators stay nil and every
// request runs on fallback data.
func NewApplicationComponents(cfg *config.Config, log *slog.Logger) *ApplicationComponents {
	staticCatalog := catalog.NewStaticCatalog()

	var searcher domain.ProductSearcher
	var analyzer domain.ReviewAnalyzer
	if cfg.OpenRouterAPIKey != "" {
		searchClient := newOpenRouterClient(cfg, cfg.SearchTimeout)
		reviewClient := newOpenRouterClient(cfg, cfg.ReviewTimeout)
		searcher = openrouter.NewSearchClient(searchClient, cfg.SearchModel, log)
		analyzer = openrouter.NewReviewClient(reviewClient, cfg.ReviewModel, log)
		log.Info("openrouter_enabled",
			slog.String("base_url", cfg.OpenRouterBaseURL),
			slog.String("search_model", cfg.SearchModel),
			slog.String("review_model", cfg.ReviewModel))
	} else {
		log.Warn("openrouter_disabled", slog.String("reason", "no API key configured"))
	}

	retrieveUsecase := usecase.NewRetrieveProductsUsecase(searcher, staticCatalog, log)
	reviewsUsecase := usecase.NewAnalyzeReviewsUsecase(analyzer, log)

	recommendUsecase := usecase.NewRecommendUsecase(
		retrieveUsecase,
		reviewsUsecase,
		domain.NewPriceAnalyzer(),
		domain.NewScorer(),
		domain.NewSelector(),
		domain.NewExplainer(),
		log,
	)

	return &ApplicationComponents{
		Catalog:          staticCatalog,
		RetrieveUsecase:  retrieveUsecase,
		ReviewsUsecase:   reviewsUsecase,
		RecommendUsecase: recommendUsecase,
	}
}

func newOpenRouterClient(cfg *config.Config, timeoutSec int) openai.Client {
	return openai.NewClient(
		option.WithBaseURL(cfg.OpenRouterBaseURL),
		option.WithAPIKey(cfg.OpenRouterAPIKey),
		option.WithHTTPClient(httpclient.NewPooledClient(time.Duration(timeoutSec)*time.Second)),
		option.WithHeader("HTTP-Referer", cfg.AppReferer),
		option.WithHeader("X-Title", cfg.AppTitle),
	)
}
