package domain

import "github.com/heartmarshall/goods-search/internal/translit"

// SearchTier tells which group of query variants produced a search result.
type SearchTier string

const (
	TierPriority SearchTier = "priority"
	TierFallback SearchTier = "fallback"
	TierNone     SearchTier = "none"
)

// SearchParams describes a product search request.
type SearchParams struct {
	// Query is the raw user input.
	Query string
	// Brand, when set, restricts results to one brand (exact, case-insensitive).
	Brand *string
	// Limit is clamped by the service.
	Limit int
}

// SearchResult is the outcome of a two-phase product search.
type SearchResult struct {
	Products  []Product
	Tier      SearchTier
	Variants  []string
	Expansion translit.Expansion
}
