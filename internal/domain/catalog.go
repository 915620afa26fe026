package domain

// ProductCatalog serves hand-authored fallback products when the external
// searcher is unavailable. Lookup never returns an empty list.
type ProductCatalog interface {
	Lookup(query string) []ProductRecord
}
