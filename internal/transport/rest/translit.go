package rest

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/heartmarshall/goods-search/internal/domain"
	"github.com/heartmarshall/goods-search/internal/translit"
)

const (
	maxTranslitTextLen = 1000
	maxSearchTexts     = 64
)

// TranslitHandler exposes the transliteration engine over HTTP.
// It has no state besides the logger.
type TranslitHandler struct {
	log *slog.Logger
}

// NewTranslitHandler creates a TranslitHandler.
func NewTranslitHandler(logger *slog.Logger) *TranslitHandler {
	return &TranslitHandler{log: logger.With("handler", "translit")}
}

type variantsResponse struct {
	Text     string   `json:"text"`
	Smart    bool     `json:"smart"`
	Variants []string `json:"variants"`
}

type expandResponse struct {
	Query string `json:"query"`
	translit.Expansion
}

type searchTextRequest struct {
	Texts []string `json:"texts"`
}

type searchTextResponse struct {
	SearchText string `json:"search_text"`
}

// Variants returns the spelling variants of a single text.
// GET /api/v1/translit/variants?text=...&smart=false (smart defaults to true)
func (h *TranslitHandler) Variants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("text") {
		handleError(w, r, h.log, domain.NewValidationError("text", "required"))
		return
	}
	text := q.Get("text")
	if utf8.RuneCountInString(text) > maxTranslitTextLen {
		handleError(w, r, h.log, domain.NewValidationError("text", "too long"))
		return
	}
	smart, err := queryBool(r, "smart", true)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, variantsResponse{
		Text:     text,
		Smart:    smart,
		Variants: translit.Variants(text, smart),
	})
}

// Expand returns the priority and fallback rewrites of a search query.
// GET /api/v1/translit/expand?q=...
func (h *TranslitHandler) Expand(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("q") {
		handleError(w, r, h.log, domain.NewValidationError("q", "required"))
		return
	}
	query := domain.NormalizeQuery(q.Get("q"))
	if utf8.RuneCountInString(query) > maxTranslitTextLen {
		handleError(w, r, h.log, domain.NewValidationError("q", "too long"))
		return
	}

	writeJSON(w, http.StatusOK, expandResponse{
		Query:     query,
		Expansion: translit.ExpandQuery(query),
	})
}

// SearchText builds the indexed search field for a list of texts.
// POST /api/v1/translit/search-text {"texts": ["Реле", "Finder"]}
func (h *TranslitHandler) SearchText(w http.ResponseWriter, r *http.Request) {
	var req searchTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if len(req.Texts) > maxSearchTexts {
		handleError(w, r, h.log, domain.NewValidationError("texts", "too many items"))
		return
	}
	for _, t := range req.Texts {
		if utf8.RuneCountInString(t) > maxTranslitTextLen {
			handleError(w, r, h.log, domain.NewValidationError("texts", "item too long"))
			return
		}
	}

	writeJSON(w, http.StatusOK, searchTextResponse{SearchText: translit.SearchText(req.Texts...)})
}
