package domain

import "context"

// ProductSearcher is the external capability that turns a free-text query
// into structured product listings. Implementations return an error on any
// failure (network, bad status, unparseable payload); the retrieval usecase
// decides what to substitute.
type ProductSearcher interface {
	Search(ctx context.Context, query string) ([]ProductRecord, error)
}
