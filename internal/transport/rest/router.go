package rest

import (
	"net/http"

	"github.com/heartmarshall/goods-search/internal/transport/middleware"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Health   *HealthHandler
	Translit *TranslitHandler
	Catalog  *CatalogHandler

	// PublicLimit wraps public search routes (rate limiting). Optional.
	PublicLimit middleware.Middleware
}

// NewRouter registers all routes. Identity must already be resolved by
// middleware.Auth upstream; admin routes are guarded here.
func NewRouter(h Handlers) *http.ServeMux {
	limit := h.PublicLimit
	if limit == nil {
		limit = middleware.Chain()
	}
	admin := middleware.RequireAdmin

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("GET /api/v1/translit/variants", limit(http.HandlerFunc(h.Translit.Variants)))
	mux.Handle("GET /api/v1/translit/expand", limit(http.HandlerFunc(h.Translit.Expand)))
	mux.Handle("POST /api/v1/translit/search-text", limit(http.HandlerFunc(h.Translit.SearchText)))

	mux.Handle("GET /api/v1/products/search", limit(http.HandlerFunc(h.Catalog.Search)))
	mux.HandleFunc("GET /api/v1/products/{id}", h.Catalog.Get)
	mux.Handle("PUT /api/v1/products", admin(http.HandlerFunc(h.Catalog.Save)))
	mux.Handle("DELETE /api/v1/products/{id}", admin(http.HandlerFunc(h.Catalog.Delete)))
	mux.Handle("POST /api/v1/products/reindex", admin(http.HandlerFunc(h.Catalog.Reindex)))

	return mux
}
