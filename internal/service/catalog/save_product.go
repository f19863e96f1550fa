package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/goods-search/internal/domain"
)

// SaveProduct creates or replaces the product identified by input.ExtID
// and recomputes its search text.
func (s *Service) SaveProduct(ctx context.Context, input SaveProductInput) (domain.Product, error) {
	if err := requireAdmin(ctx); err != nil {
		return domain.Product{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Product{}, err
	}

	p := input.toProduct()
	p.SearchText = p.BuildSearchText()

	saved, err := s.products.Upsert(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("upsert product: %w", err)
	}

	s.log.InfoContext(ctx, "product saved",
		slog.String("product_id", saved.ID.String()),
		slog.String("ext_id", saved.ExtID),
	)
	return saved, nil
}

// GetProduct returns a product by ID.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, domain.NewValidationError("id", "required")
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// DeleteProduct removes a product from search.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.InfoContext(ctx, "product deleted", slog.String("product_id", id.String()))
	return nil
}
