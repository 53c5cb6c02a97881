// Package web provides the HTTP server and handlers for the product
// catalog API: product lookup and search, CSV feed ingestion, and the
// apparel semantic search endpoints.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"productsearch/internal/config"
	"productsearch/internal/mapping"
	"productsearch/internal/search"
	"productsearch/internal/web/middleware"
)

// Server is the HTTP server for the catalog API.
type Server struct {
	cfg      *config.Config
	service  *search.Service
	mappings *mapping.Registry
	router   *chi.Mux
	server   *http.Server
}

// NewServer wires the handlers over the search service and the field
// mapping registry.
func NewServer(cfg *config.Config, service *search.Service, mappings *mapping.Registry) *Server {
	s := &Server{
		cfg:      cfg,
		service:  service,
		mappings: mappings,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Server.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))

	if s.cfg.Rate.Enabled {
		limiter := middleware.NewRateLimiter(s.cfg.Rate.RequestsPerMinute)
		s.router.Use(limiter.Handler)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/products", func(r chi.Router) {
		// Feed ingestion. Upload endpoints get their own tighter limit.
		r.Group(func(r chi.Router) {
			if s.cfg.Rate.Enabled {
				limiter := middleware.NewRateLimiter(s.cfg.Rate.UploadLimit)
				r.Use(limiter.Handler)
			}
			r.Post("/upload-csv", s.handleUploadCSV)
			r.Post("/upload-csv-to-search", s.handleUploadCSVToSearch)
		})

		// Catalog search
		r.Get("/search", s.handleSearchGet)
		r.Post("/search", s.handleSearchPost)
		r.Get("/search/category/{category}", s.handleSearchByCategory)
		r.Get("/search/brand/{brand}", s.handleSearchByBrand)
		r.Get("/search/price", s.handleSearchByPriceRange)

		// Apparel search
		r.Post("/apparel/semantic-search", s.handleApparelSemanticSearch)
		r.Get("/apparel/semantic-search", s.handleApparelSemanticSearchSimple)
		r.Get("/apparel/search/brand/{brand}", s.handleApparelByBrand)
		r.Get("/apparel/search/color/{color}", s.handleApparelByColor)
		r.Get("/apparel/search/material/{material}", s.handleApparelByMaterial)

		r.Get("/health", s.handleHealth)

		// Lookup goes last so the literal routes above win
		r.Get("/{productID}", s.handleProductByID)
	})
}

// handleHealth reports liveness and whether a search backend is configured.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"searchEnabled": s.cfg.Search.Enabled(),
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
