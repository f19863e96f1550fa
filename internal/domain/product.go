package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/goods-search/internal/translit"
)

// Product is a catalog item as stored in the search index.
// Brand, subgroup and group are denormalized by name; the upstream system
// owns those hierarchies.
type Product struct {
	ID           uuid.UUID
	ExtID        string
	Name         string
	ComplexName  string
	Description  string
	BrandName    string
	SubgroupName string
	GroupName    string
	TechParams   map[string]string

	// Manager assignments at each level of the hierarchy. Manager resolves
	// the effective one.
	ProductManager  *string
	BrandManager    *string
	SubgroupManager *string

	SearchText string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Manager returns the responsible product manager: the one assigned to the
// product itself, otherwise the brand's, otherwise the subgroup's.
// Returns "" if none is assigned.
func (p *Product) Manager() string {
	for _, m := range []*string{p.ProductManager, p.BrandManager, p.SubgroupManager} {
		if m != nil && *m != "" {
			return *m
		}
	}
	return ""
}

// TechParamsSearchable joins all non-empty technical parameter values with
// spaces, ordered by parameter name.
func (p *Product) TechParamsSearchable() string {
	if len(p.TechParams) == 0 {
		return ""
	}

	keys := make([]string, 0, len(p.TechParams))
	for k := range p.TechParams {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := strings.TrimSpace(p.TechParams[k]); v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, " ")
}

// BuildSearchText computes the transliterated search field from the
// product's name, brand, subgroup, group, manager and technical parameters.
func (p *Product) BuildSearchText() string {
	return translit.SearchText(
		p.Name,
		p.BrandName,
		p.SubgroupName,
		p.GroupName,
		p.Manager(),
		p.TechParamsSearchable(),
	)
}
