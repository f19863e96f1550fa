package catalog

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/heartmarshall/goods-search/internal/domain"
	"github.com/heartmarshall/goods-search/internal/translit"
)

// Search runs a two-phase product search. The priority variants (the query
// and its semantic transliterations) are tried first; keyboard-layout
// variants are tried only when the priority tier finds nothing.
func (s *Service) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	query := domain.NormalizeQuery(params.Query)
	limit := s.clampLimit(params.Limit)
	brand := trimOrNil(params.Brand)

	if query == "" {
		return domain.SearchResult{
			Products:  []domain.Product{},
			Tier:      domain.TierNone,
			Variants:  []string{},
			Expansion: translit.ExpandQuery(""),
		}, nil
	}

	exp := translit.ExpandQuery(query)
	result := domain.SearchResult{Expansion: exp}

	products, err := s.products.Search(ctx, exp.Priority, brand, limit)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("search priority variants: %w", err)
	}
	if len(products) > 0 {
		result.Products = rank(products, exp.Priority)
		result.Tier = domain.TierPriority
		result.Variants = exp.Priority
		s.logTier(ctx, query, result)
		return result, nil
	}

	if len(exp.Fallback) > 0 {
		products, err = s.products.Search(ctx, exp.Fallback, brand, limit)
		if err != nil {
			return domain.SearchResult{}, fmt.Errorf("search fallback variants: %w", err)
		}
		if len(products) > 0 {
			result.Products = rank(products, exp.Fallback)
			result.Tier = domain.TierFallback
			result.Variants = exp.Fallback
			s.logTier(ctx, query, result)
			return result, nil
		}
	}

	result.Products = []domain.Product{}
	result.Tier = domain.TierNone
	result.Variants = exp.All
	s.logTier(ctx, query, result)
	return result, nil
}

func (s *Service) logTier(ctx context.Context, query string, r domain.SearchResult) {
	s.log.DebugContext(ctx, "search served",
		slog.String("query", query),
		slog.String("tier", string(r.Tier)),
		slog.Int("variants", len(r.Variants)),
		slog.Int("hits", len(r.Products)),
	)
}

// rank orders products by their best Jaro-Winkler similarity to any of the
// variants, highest first; ties are broken by name, then ID.
func rank(products []domain.Product, variants []string) []domain.Product {
	type scored struct {
		p     domain.Product
		score float32
	}

	items := make([]scored, len(products))
	for i, p := range products {
		items[i] = scored{p: p, score: bestSimilarity(p.Name, variants)}
	}

	slices.SortStableFunc(items, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.p.Name, b.p.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.p.ID.String(), b.p.ID.String())
	})

	out := make([]domain.Product, len(items))
	for i, it := range items {
		out[i] = it.p
	}
	return out
}

func bestSimilarity(name string, variants []string) float32 {
	name = strings.ToLower(name)

	var best float32
	for _, v := range variants {
		sim, err := edlib.StringsSimilarity(name, strings.ToLower(v), edlib.JaroWinkler)
		if err != nil {
			continue
		}
		best = max(best, sim)
	}
	return best
}
