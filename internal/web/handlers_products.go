package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"productsearch/internal/catalog"
	"productsearch/internal/logging"
)

const defaultTop = 10

// handleProductByID returns a single product by its identifier.
func (s *Server) handleProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		respondError(w, r, http.StatusBadRequest, "missing product ID")
		return
	}

	logging.FromContext(r.Context()).Info("product lookup", "product_id", productID)

	product := s.service.ProductByID(r.Context(), productID)
	if product == nil {
		respondError(w, r, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// handleSearchGet runs a free-text product search from query parameters:
// q (query text), filter (raw filter expression) and top.
func (s *Server) handleSearchGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, r, http.StatusBadRequest, "missing query parameter q")
		return
	}
	filter := r.URL.Query().Get("filter")
	top := parseTop(r.URL.Query().Get("top"))

	products := s.service.SearchProducts(r.Context(), query, filter, top)
	writeSearchResults(w, query, products)
}

// searchRequestBody is the JSON body for POST product searches.
type searchRequestBody struct {
	Query  string `json:"query"`
	Filter string `json:"filter,omitempty"`
	Top    int    `json:"top,omitempty"`
}

// handleSearchPost runs a free-text product search from a JSON body.
func (s *Server) handleSearchPost(w http.ResponseWriter, r *http.Request) {
	var body searchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Query == "" {
		respondError(w, r, http.StatusBadRequest, "missing query")
		return
	}
	if body.Top <= 0 {
		body.Top = defaultTop
	}

	products := s.service.SearchProducts(r.Context(), body.Query, body.Filter, body.Top)
	writeSearchResults(w, body.Query, products)
}

// handleSearchByCategory returns products in a category.
func (s *Server) handleSearchByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	top := parseTop(r.URL.Query().Get("top"))

	products := s.service.SearchByCategory(r.Context(), category, top)
	writeSearchResults(w, category, products)
}

// handleSearchByBrand returns products of a brand.
func (s *Server) handleSearchByBrand(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "brand")
	top := parseTop(r.URL.Query().Get("top"))

	products := s.service.SearchByBrand(r.Context(), brand, top)
	writeSearchResults(w, brand, products)
}

// handleSearchByPriceRange returns products priced within the inclusive
// [minPrice, maxPrice] range.
func (s *Server) handleSearchByPriceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, err := strconv.ParseFloat(r.URL.Query().Get("minPrice"), 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid or missing minPrice")
		return
	}
	maxPrice, err := strconv.ParseFloat(r.URL.Query().Get("maxPrice"), 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid or missing maxPrice")
		return
	}
	if minPrice > maxPrice {
		respondError(w, r, http.StatusBadRequest, "minPrice must not exceed maxPrice")
		return
	}
	top := parseTop(r.URL.Query().Get("top"))

	products := s.service.SearchByPriceRange(r.Context(), minPrice, maxPrice, top)
	writeSearchResults(w, "", products)
}

// writeSearchResults writes the standard product list envelope.
func writeSearchResults(w http.ResponseWriter, query string, products []catalog.Product) {
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"count":   len(products),
		"results": products,
	})
}

// parseTop parses a top parameter, falling back to the default for absent
// or invalid values.
func parseTop(raw string) int {
	if raw == "" {
		return defaultTop
	}
	top, err := strconv.Atoi(raw)
	if err != nil || top <= 0 {
		return defaultTop
	}
	return top
}
