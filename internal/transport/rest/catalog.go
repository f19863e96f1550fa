package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/goods-search/internal/domain"
	"github.com/heartmarshall/goods-search/internal/service/catalog"
	"github.com/heartmarshall/goods-search/internal/translit"
)

type catalogService interface {
	Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	SaveProduct(ctx context.Context, input catalog.SaveProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	Reindex(ctx context.Context, batchSize int) (catalog.ReindexResult, error)
}

// CatalogHandler serves product endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type productResponse struct {
	ID           uuid.UUID         `json:"id"`
	ExtID        string            `json:"ext_id"`
	Name         string            `json:"name"`
	ComplexName  string            `json:"complex_name,omitempty"`
	Description  string            `json:"description,omitempty"`
	BrandName    string            `json:"brand_name,omitempty"`
	SubgroupName string            `json:"subgroup_name,omitempty"`
	GroupName    string            `json:"group_name,omitempty"`
	TechParams   map[string]string `json:"tech_params"`
	Manager      string            `json:"manager,omitempty"`
	SearchText   string            `json:"search_text"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type searchResponse struct {
	Query     string             `json:"query"`
	Tier      domain.SearchTier  `json:"tier"`
	Variants  []string           `json:"variants"`
	Expansion translit.Expansion `json:"expansion"`
	Count     int                `json:"count"`
	Products  []productResponse  `json:"products"`
}

type saveProductRequest struct {
	ExtID           string            `json:"ext_id"`
	Name            string            `json:"name"`
	ComplexName     string            `json:"complex_name"`
	Description     string            `json:"description"`
	BrandName       string            `json:"brand_name"`
	SubgroupName    string            `json:"subgroup_name"`
	GroupName       string            `json:"group_name"`
	TechParams      map[string]string `json:"tech_params"`
	ProductManager  *string           `json:"product_manager"`
	BrandManager    *string           `json:"brand_manager"`
	SubgroupManager *string           `json:"subgroup_manager"`
}

func toProductResponse(p domain.Product) productResponse {
	params := p.TechParams
	if params == nil {
		params = map[string]string{}
	}
	return productResponse{
		ID:           p.ID,
		ExtID:        p.ExtID,
		Name:         p.Name,
		ComplexName:  p.ComplexName,
		Description:  p.Description,
		BrandName:    p.BrandName,
		SubgroupName: p.SubgroupName,
		GroupName:    p.GroupName,
		TechParams:   params,
		Manager:      p.Manager(),
		SearchText:   p.SearchText,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// Search runs a two-phase product search.
// GET /api/v1/products/search?q=...&brand=...&limit=20
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	params := domain.SearchParams{Query: r.URL.Query().Get("q"), Limit: limit}
	if brand := r.URL.Query().Get("brand"); brand != "" {
		params.Brand = &brand
	}

	res, err := h.svc.Search(r.Context(), params)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	products := make([]productResponse, len(res.Products))
	for i, p := range res.Products {
		products[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Query:     domain.NormalizeQuery(params.Query),
		Tier:      res.Tier,
		Variants:  res.Variants,
		Expansion: res.Expansion,
		Count:     len(products),
		Products:  products,
	})
}

// Get returns a single product.
// GET /api/v1/products/{id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// Save creates or replaces a product keyed by ext_id.
// PUT /api/v1/products
func (h *CatalogHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.SaveProduct(r.Context(), catalog.SaveProductInput{
		ExtID:           req.ExtID,
		Name:            req.Name,
		ComplexName:     req.ComplexName,
		Description:     req.Description,
		BrandName:       req.BrandName,
		SubgroupName:    req.SubgroupName,
		GroupName:       req.GroupName,
		TechParams:      req.TechParams,
		ProductManager:  req.ProductManager,
		BrandManager:    req.BrandManager,
		SubgroupManager: req.SubgroupManager,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// Delete removes a product from search.
// DELETE /api/v1/products/{id}
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reindex rebuilds search_text for all products.
// POST /api/v1/products/reindex?batch_size=500
func (h *CatalogHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	batch, err := queryInt(r, "batch_size")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Reindex(r.Context(), batch)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
