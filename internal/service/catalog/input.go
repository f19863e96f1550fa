package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/goods-search/internal/domain"
)

const (
	maxNameLen        = 200
	maxComplexNameLen = 512
)

// SaveProductInput holds the upstream representation of a product.
// ExtID is the upsert key.
type SaveProductInput struct {
	ExtID        string
	Name         string
	ComplexName  string
	Description  string
	BrandName    string
	SubgroupName string
	GroupName    string
	TechParams   map[string]string

	ProductManager  *string
	BrandManager    *string
	SubgroupManager *string
}

// Validate checks all fields and collects all errors.
func (i SaveProductInput) Validate() error {
	verr := &domain.ValidationError{}

	checkLen := func(field, value string, limit int) {
		if utf8.RuneCountInString(strings.TrimSpace(value)) > limit {
			verr.Add(field, "too long")
		}
	}

	if strings.TrimSpace(i.ExtID) == "" {
		verr.Add("ext_id", "required")
	}
	checkLen("ext_id", i.ExtID, maxNameLen)

	if strings.TrimSpace(i.Name) == "" {
		verr.Add("name", "required")
	}
	checkLen("name", i.Name, maxNameLen)
	checkLen("complex_name", i.ComplexName, maxComplexNameLen)
	checkLen("brand_name", i.BrandName, maxNameLen)
	checkLen("subgroup_name", i.SubgroupName, maxNameLen)
	checkLen("group_name", i.GroupName, maxNameLen)

	for k := range i.TechParams {
		if strings.TrimSpace(k) == "" {
			verr.Add("tech_params", "empty parameter name")
			break
		}
	}

	return verr.Err()
}

// toProduct builds a trimmed domain.Product without search text.
func (i SaveProductInput) toProduct() domain.Product {
	params := make(map[string]string, len(i.TechParams))
	for k, v := range i.TechParams {
		params[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return domain.Product{
		ExtID:           strings.TrimSpace(i.ExtID),
		Name:            strings.TrimSpace(i.Name),
		ComplexName:     strings.TrimSpace(i.ComplexName),
		Description:     strings.TrimSpace(i.Description),
		BrandName:       strings.TrimSpace(i.BrandName),
		SubgroupName:    strings.TrimSpace(i.SubgroupName),
		GroupName:       strings.TrimSpace(i.GroupName),
		TechParams:      params,
		ProductManager:  trimOrNil(i.ProductManager),
		BrandManager:    trimOrNil(i.BrandManager),
		SubgroupManager: trimOrNil(i.SubgroupManager),
	}
}
