package domain

import "context"

// ReviewAnalyzer is the external capability that converts review snippets
// into structured insights, one per product. A failed call or malformed
// response surfaces as an error; the caller substitutes the heuristic
// fallback.
type ReviewAnalyzer interface {
	Analyze(ctx context.Context, products []ProductRecord) ([]ReviewInsight, error)
}
