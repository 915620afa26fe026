package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"buywise-orchestrator/internal/adapter/rest"
	"buywise-orchestrator/internal/di"
	"buywise-orchestrator/internal/domain"
	"buywise-orchestrator/internal/infra/config"
	"buywise-orchestrator/internal/infra/logger"
	"buywise-orchestrator/internal/usecase"
)

var (
	version = "dev"

	// Run command flags
	weightPrice    float64
	weightReviews  float64
	weightRating   float64
	weightDelivery float64
	timeoutSec     int
	pretty         bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "advise",
	Short:   "Run the product recommendation pipeline from the command line",
	Version: version,
}

var runCmd = &cobra.Command{
	Use:   "run [query]",
	Short: "Run one recommendation pipeline for a query",
	Long: `Run the full recommendation pipeline for a single shopping query and
print the structured result as JSON.

Without an OPENROUTER_API_KEY the pipeline runs entirely on the static
fallback catalog, which is useful for trying out scoring weights offline.

Examples:
  # Default weights (price 0.3, reviews 0.3, rating 0.2, delivery 0.2)
  advise run "gaming phone under 20000"

  # Weight price heavily
  advise run "budget 4k tv" --price 0.6 --reviews 0.2 --rating 0.1 --delivery 0.1`,
	Args: cobra.ExactArgs(1),
	RunE: runAdvise,
}

func init() {
	runCmd.Flags().Float64Var(&weightPrice, "price", 0, "weight for price fairness")
	runCmd.Flags().Float64Var(&weightReviews, "reviews", 0, "weight for review sentiment")
	runCmd.Flags().Float64Var(&weightRating, "rating", 0, "weight for seller rating")
	runCmd.Flags().Float64Var(&weightDelivery, "delivery", 0, "weight for delivery speed")
	runCmd.Flags().IntVar(&timeoutSec, "timeout", 120, "overall pipeline timeout in seconds")
	runCmd.Flags().BoolVar(&pretty, "pretty", true, "indent the JSON output")

	rootCmd.AddCommand(runCmd)
}

func runAdvise(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.New()
	slog.SetDefault(log)

	components := di.NewApplicationComponents(cfg, log)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	output, err := components.RecommendUsecase.Execute(ctx, usecase.RecommendInput{
		Query: args[0],
		Weights: domain.WeightVector{
			Price:    weightPrice,
			Reviews:  weightReviews,
			Rating:   weightRating,
			Delivery: weightDelivery,
		},
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	response := rest.RecommendationResponse{
		Query:       output.Query,
		Weights:     output.Weights,
		UserProfile: output.UserProfile,
		Products:    output.Products,
		TopPicks:    output.TopPicks,
		Explanation: rest.Explanation{Reasoning: output.Reasoning},
	}

	encoder := json.NewEncoder(os.Stdout)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(response)
}
