package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"buywise-orchestrator/internal/domain"
	"buywise-orchestrator/internal/usecase"
)

// RecommendationRequest is the inbound payload for a recommendation run.
// Weights and userProfile are optional; defaults are injected server-side.
type RecommendationRequest struct {
	Query       string                 `json:"query"`
	Weights     *domain.WeightVector   `json:"weights"`
	UserProfile map[string]interface{} `json:"userProfile"`
}

// RecommendationResponse echoes the query and effective preferences next to
// the full scored list, the three picks and the reasoning bullets.
type RecommendationResponse struct {
	Query       string                 `json:"query"`
	Weights     domain.WeightVector    `json:"weights"`
	UserProfile map[string]interface{} `json:"userProfile"`
	Products    []domain.ScoredProduct `json:"products"`
	TopPicks    domain.TopPicks        `json:"topPicks"`
	Explanation Explanation            `json:"explanation"`
}

// Explanation wraps the reasoning bullets.
type Explanation struct {
	Reasoning []string `json:"reasoning"`
}

type Handler struct {
	recommendUsecase usecase.RecommendUsecase
	logger           *slog.Logger
}

func NewHandler(recommendUsecase usecase.RecommendUsecase, logger *slog.Logger) *Handler {
	return &Handler{
		recommendUsecase: recommendUsecase,
		logger:           logger,
	}
}

// Register wires the routes onto the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.POST("/api/recommendations", h.Recommendations)
}

// Health returns the static liveness payload.
// (GET /health)
func (h *Handler) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"name":    "BuyWise - Agentic AI Buying Assistant",
		"status":  "ok",
		"message": "Backend is running.",
	})
}

// Recommendations runs the full pipeline for one query.
// (POST /api/recommendations)
func (h *Handler) Recommendations(ctx echo.Context) error {
	var req RecommendationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Missing or invalid 'query' field"})
	}
	if strings.TrimSpace(req.Query) == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Missing or invalid 'query' field"})
	}

	input := usecase.RecommendInput{
		Query:       req.Query,
		UserProfile: req.UserProfile,
	}
	if req.Weights != nil {
		input.Weights = *req.Weights
	}

	output, err := h.recommendUsecase.Execute(ctx.Request().Context(), input)
	if err != nil {
		// The cause stays server-side; clients get an opaque error.
		h.logger.ErrorContext(ctx.Request().Context(), "recommendation_failed",
			slog.String("error", err.Error()))
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return ctx.JSON(http.StatusOK, RecommendationResponse{
		Query:       output.Query,
		Weights:     output.Weights,
		UserProfile: output.UserProfile,
		Products:    output.Products,
		TopPicks:    output.TopPicks,
		Explanation: Explanation{Reasoning: output.Reasoning},
	})
}
