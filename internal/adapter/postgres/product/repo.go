// Package product implements the product repository using PostgreSQL.
// Products are soft-deleted; every read ignores rows with deleted_at set.
package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/goods-search/internal/adapter/postgres"
	"github.com/heartmarshall/goods-search/internal/domain"
)

const table = "products"

var columns = []string{
	"id", "ext_id", "name", "complex_name", "description",
	"brand_name", "subgroup_name", "group_name", "tech_params",
	"product_manager", "brand_manager", "subgroup_manager",
	"search_text", "created_at", "updated_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new product repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the product or, when a product with the same ExtID exists,
// overwrites it and clears its deleted mark. The stored ID and CreatedAt of
// an existing row are kept. Returns the persisted product.
func (r *Repo) Upsert(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	techParams := p.TechParams
	if techParams == nil {
		techParams = map[string]string{}
	}

	query, args, err := builder.
		Insert(table).
		Columns(
			"id", "ext_id", "name", "complex_name", "description",
			"brand_name", "subgroup_name", "group_name", "tech_params",
			"product_manager", "brand_manager", "subgroup_manager", "search_text",
		).
		Values(
			p.ID, p.ExtID, p.Name, p.ComplexName, p.Description,
			p.BrandName, p.SubgroupName, p.GroupName, techParams,
			p.ProductManager, p.BrandManager, p.SubgroupManager, p.SearchText,
		).
		Suffix(`ON CONFLICT (ext_id) DO UPDATE SET
			name = EXCLUDED.name,
			complex_name = EXCLUDED.complex_name,
			description = EXCLUDED.description,
			brand_name = EXCLUDED.brand_name,
			subgroup_name = EXCLUDED.subgroup_name,
			group_name = EXCLUDED.group_name,
			tech_params = EXCLUDED.tech_params,
			product_manager = EXCLUDED.product_manager,
			brand_manager = EXCLUDED.brand_manager,
			subgroup_manager = EXCLUDED.subgroup_manager,
			search_text = EXCLUDED.search_text,
			updated_at = now(),
			deleted_at = NULL
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Product{}, fmt.Errorf("build upsert product: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	saved, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, postgres.MapError(err, "product", p.ExtID)
	}
	return saved, nil
}

// UpdateSearchText overwrites the stored search_text of a live product.
func (r *Repo) UpdateSearchText(ctx context.Context, id uuid.UUID, text string) error {
	query, args, err := builder.
		Update(table).
		Set("search_text", text).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update search_text: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "product", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "product", id)
	}
	return nil
}

// Delete marks the product as deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := builder.
		Update(table).
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete product: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "product", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "product", id)
	}
	return nil
}

// HardDeleteOld physically removes products soft-deleted before threshold.
// Returns the number of removed rows.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := builder.
		Delete(table).
		Where(sq.NotEq{"deleted_at": nil}).
		Where(sq.Lt{"deleted_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build hard delete products: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("hard delete products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a live product by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	query, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return domain.Product{}, fmt.Errorf("build get product: %w", err)
	}

	p, err := scanProduct(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Product{}, postgres.MapError(err, "product", id)
	}
	return p, nil
}

// Search returns live products matching any of the variants. A product
// matches a variant when every word of the variant occurs, case-insensitively,
// in its name, complex name, brand or search text. Results are ordered by
// name and capped at limit.
func (r *Repo) Search(ctx context.Context, variants []string, brand *string, limit int) ([]domain.Product, error) {
	match := sq.Or{}
	for _, v := range variants {
		words := strings.Fields(v)
		if len(words) == 0 {
			continue
		}
		all := make(sq.And, 0, len(words))
		for _, w := range words {
			all = append(all, sq.ILike{"search_document": "%" + likeEscaper.Replace(w) + "%"})
		}
		match = append(match, all)
	}
	if len(match) == 0 || limit <= 0 {
		return []domain.Product{}, nil
	}

	qb := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"deleted_at": nil}).
		Where(match).
		OrderBy("name", "id").
		Limit(uint64(limit))
	if brand != nil && *brand != "" {
		qb = qb.Where(sq.Expr("lower(brand_name) = lower(?)", *brand))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search products: %w", err)
	}
	return r.queryProducts(ctx, "search products", query, args)
}

// ListAfter returns up to limit live products with IDs greater than afterID,
// ordered by ID. Pass uuid.Nil to start from the beginning.
func (r *Repo) ListAfter(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Product, error) {
	query, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Gt{"id": afterID}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	return r.queryProducts(ctx, "list products", query, args)
}

func (r *Repo) queryProducts(ctx context.Context, op, query string, args []any) ([]domain.Product, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.ExtID, &p.Name, &p.ComplexName, &p.Description,
		&p.BrandName, &p.SubgroupName, &p.GroupName, &p.TechParams,
		&p.ProductManager, &p.BrandManager, &p.SubgroupManager,
		&p.SearchText, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	if p.TechParams == nil {
		p.TechParams = map[string]string{}
	}
	return p, nil
}
