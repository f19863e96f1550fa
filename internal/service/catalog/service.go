// Package catalog implements product management and two-phase
// transliterated product search.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/goods-search/internal/config"
	"github.com/heartmarshall/goods-search/internal/domain"
	"github.com/heartmarshall/goods-search/pkg/ctxutil"
)

type productRepo interface {
	Upsert(ctx context.Context, p domain.Product) (domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, variants []string, brand *string, limit int) ([]domain.Product, error)
	ListAfter(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Product, error)
	UpdateSearchText(ctx context.Context, id uuid.UUID, text string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog operations.
type Service struct {
	products productRepo
	tx       txManager
	cfg      config.SearchConfig
	log      *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	products productRepo,
	tx txManager,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		products: products,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "catalog"),
	}
}

// clampLimit applies the configured default and upper bound.
func (s *Service) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		limit = s.cfg.DefaultLimit
	case limit > s.cfg.MaxLimit:
		limit = s.cfg.MaxLimit
	}
	return max(limit, 1)
}

// requireAdmin returns ErrUnauthorized for anonymous callers and
// ErrForbidden for authenticated non-admins.
func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
