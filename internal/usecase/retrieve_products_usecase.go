package usecase

import (
	"context"
	"log/slog"

	"buywise-orchestrator/internal/domain"
)

// RetrieveProductsOutput carries the retrieved batch plus which path produced
// it, so callers and tests can assert fallback behavior instead of guessing
// from the data.
type RetrieveProductsOutput struct {
	Products []domain.ProductRecord
	Fallback bool
	Reason   string
}

// RetrieveProductsUsecase resolves a query into a non-empty product batch.
type RetrieveProductsUsecase interface {
	Execute(ctx context.Context, query string) *RetrieveProductsOutput
}

type retrieveProductsUsecase struct {
	searcher domain.ProductSearcher
	catalog  domain.ProductCatalog
	logger   *slog.Logger
}

// NewRetrieveProductsUsecase builds the retrieval stage. searcher may be nil
// when no external search capability is configured; the static catalog then
// serves every request.
func NewRetrieveProductsUsecase(
	searcher domain.ProductSearcher,
	catalog domain.ProductCatalog,
	logger *slog.Logger,
) RetrieveProductsUsecase {
	return &retrieveProductsUsecase{
		searcher: searcher,
		catalog:  catalog,
		logger:   logger,
	}
}

// Execute tries the external searcher once and falls back to the static
// catalog on any failure. The collaborator error never surfaces to the
// caller; it is recorded as the fallback reason and logged.
func (u *retrieveProductsUsecase) Execute(ctx context.Context, query string) *RetrieveProductsOutput {
	if u.searcher == nil {
		return u.fallback(ctx, query, "product searcher not configured")
	}

	products, err := u.searcher.Search(ctx, query)
	if err != nil {
		return u.fallback(ctx, query, err.Error())
	}
	if len(products) == 0 {
		return u.fallback(ctx, query, "searcher returned no products")
	}

	u.logger.InfoContext(ctx, "retrieval_completed",
		slog.String("source", "search"),
		slog.Int("product_count", len(products)))
	return &RetrieveProductsOutput{Products: products}
}

func (u *retrieveProductsUsecase) fallback(ctx context.Context, query, reason string) *RetrieveProductsOutput {
	products := u.catalog.Lookup(query)
	u.logger.WarnContext(ctx, "retrieval_fallback",
		slog.String("reason", reason),
		slog.Int("product_count", len(products)))
	return &RetrieveProductsOutput{
		Products: products,
		Fallback: true,
		Reason:   reason,
	}
}
