package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/goods-search/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ProductOption customizes a product before SeedProduct stores it.
type ProductOption func(*domain.Product)

// WithName sets the product name.
func WithName(name string) ProductOption {
	return func(p *domain.Product) { p.Name = name }
}

// WithBrand sets the brand name.
func WithBrand(brand string) ProductOption {
	return func(p *domain.Product) { p.BrandName = brand }
}

// WithTechParams sets the technical parameters.
func WithTechParams(params map[string]string) ProductOption {
	return func(p *domain.Product) { p.TechParams = params }
}

// SeedProduct inserts a product with a unique ext_id and name; search_text is
// computed the same way the service does it. Returns the stored product.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, opts ...ProductOption) domain.Product {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	p := domain.Product{
		ID:           uuid.New(),
		ExtID:        "ext-" + suffix,
		Name:         "P" + suffix,
		SubgroupName: "Test subgroup",
		GroupName:    "Test group",
		TechParams:   map[string]string{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	p.SearchText = p.BuildSearchText()

	err := pool.QueryRow(ctx,
		`INSERT INTO products (id, ext_id, name, complex_name, brand_name, subgroup_name,
		                       group_name, tech_params, search_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		p.ID, p.ExtID, p.Name, p.ComplexName, p.BrandName, p.SubgroupName,
		p.GroupName, p.TechParams, p.SearchText,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return p
}
