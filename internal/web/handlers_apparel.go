package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"productsearch/internal/catalog"
	"productsearch/internal/search"
)

// handleApparelSemanticSearch runs a full structured semantic search. The
// JSON body is decoded over wire defaults so absent fields keep semantic
// query type, the standard configuration and top 10.
func (s *Server) handleApparelSemanticSearch(w http.ResponseWriter, r *http.Request) {
	req := search.DefaultRequest()
	req.SemanticConfiguration = s.cfg.ApparelSearch.SemanticConfiguration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := s.service.ApparelSemanticSearch(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

// handleApparelSemanticSearchSimple is the query-parameter form: query plus
// optional top and skip, with the default facet set and projection.
func (s *Server) handleApparelSemanticSearchSimple(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, r, http.StatusBadRequest, "missing query parameter query")
		return
	}

	req := search.NewRequest(query)
	req.SemanticConfiguration = s.cfg.ApparelSearch.SemanticConfiguration
	req.Top = parseTop(r.URL.Query().Get("top"))
	if skip, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && skip > 0 {
		req.Skip = skip
	}

	resp := s.service.ApparelSemanticSearch(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

// handleApparelByBrand returns apparel of a brand.
func (s *Server) handleApparelByBrand(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "brand")
	top := parseTop(r.URL.Query().Get("top"))

	writeApparelResults(w, brand, s.service.SearchApparelByBrand(r.Context(), brand, top))
}

// handleApparelByColor returns apparel of a color.
func (s *Server) handleApparelByColor(w http.ResponseWriter, r *http.Request) {
	color := chi.URLParam(r, "color")
	top := parseTop(r.URL.Query().Get("top"))

	writeApparelResults(w, color, s.service.SearchApparelByColor(r.Context(), color, top))
}

// handleApparelByMaterial returns apparel made of a material.
func (s *Server) handleApparelByMaterial(w http.ResponseWriter, r *http.Request) {
	material := chi.URLParam(r, "material")
	top := parseTop(r.URL.Query().Get("top"))

	writeApparelResults(w, material, s.service.SearchApparelByMaterial(r.Context(), material, top))
}

func writeApparelResults(w http.ResponseWriter, query string, products []catalog.ApparelProduct) {
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"count":   len(products),
		"results": products,
	})
}
