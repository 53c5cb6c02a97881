package search

// service.go orchestrates catalog queries against the generic and apparel
// indexes. Backend failures degrade to empty results or a failure status;
// they are logged and never escape as panics or 5xx-forcing errors. No
// retries: one search operation is one round trip.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"productsearch/internal/catalog"
)

// Service exposes the catalog search operations. Either backend may be nil
// when the corresponding index is not configured; every operation degrades
// gracefully in that case.
type Service struct {
	products Backend
	apparel  Backend
}

// NewService builds a Service over the generic product index and the
// apparel index. Pass nil for an unconfigured backend.
func NewService(products, apparel Backend) *Service {
	return &Service{products: products, apparel: apparel}
}

// query runs one search round trip, standing in the sentinel when the
// backend is not configured so callers degrade on a single error path.
func query(ctx context.Context, b Backend, text string, opts Options) (*Response, error) {
	if b == nil {
		return nil, ErrBackendUnavailable
	}
	return b.Search(ctx, text, opts)
}

// logSearchFailure records a failed round trip. An unconfigured backend is
// an expected deployment state and logs at Warn; everything else is an Error.
func logSearchFailure(op, text string, err error) {
	if errors.Is(err, ErrBackendUnavailable) {
		slog.Warn(op+" skipped", "query", text, "error", err)
		return
	}
	slog.Error(op+" failed", "query", text, "error", err)
}

// ProductByID looks a product up by its identifier, filtering on the
// indexed product_id field. Without a configured backend it serves the
// demonstration product so the read path stays exercisable.
func (s *Service) ProductByID(ctx context.Context, productID string) *catalog.Product {
	if s.products == nil {
		return mockProduct(productID)
	}

	opts := Options{
		Filter: fmt.Sprintf("product_id eq '%s'", productID),
		Top:    1,
	}
	resp, err := s.products.Search(ctx, productID, opts)
	if err != nil {
		slog.Error("product lookup failed", "product_id", productID, "error", err)
		return nil
	}
	for _, result := range resp.Results {
		if p := ToProduct(result.Document); p != nil {
			return p
		}
	}
	return nil
}

// SearchProducts runs a free-text query with an optional raw OData filter
// against the generic index. Backend errors degrade to an empty list.
func (s *Service) SearchProducts(ctx context.Context, text, filter string, top int) []catalog.Product {
	resp, err := query(ctx, s.products, text, Options{Filter: filter, Top: top})
	if err != nil {
		logSearchFailure("product search", text, err)
		return []catalog.Product{}
	}
	return ResultsToProducts(resp.Results)
}

// SearchByCategory returns products in a category via a wildcard query and
// a single equality filter.
func (s *Service) SearchByCategory(ctx context.Context, category string, top int) []catalog.Product {
	filter := fmt.Sprintf("category eq '%s'", category)
	return s.SearchProducts(ctx, WildcardQuery, filter, top)
}

// SearchByBrand returns products of a brand.
func (s *Service) SearchByBrand(ctx context.Context, brand string, top int) []catalog.Product {
	filter := fmt.Sprintf("brand eq '%s'", brand)
	return s.SearchProducts(ctx, WildcardQuery, filter, top)
}

// SearchByPriceRange returns products priced within [minPrice, maxPrice].
func (s *Service) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64, top int) []catalog.Product {
	filter := fmt.Sprintf("price ge %s and price le %s", FormatNumber(minPrice), FormatNumber(maxPrice))
	return s.SearchProducts(ctx, WildcardQuery, filter, top)
}

// SearchApparel runs a free-text query against the apparel index.
func (s *Service) SearchApparel(ctx context.Context, text, filter string, top int) []catalog.ApparelProduct {
	resp, err := query(ctx, s.apparel, text, Options{Filter: filter, Top: top})
	if err != nil {
		logSearchFailure("apparel search", text, err)
		return []catalog.ApparelProduct{}
	}
	return ResultsToApparelProducts(resp.Results)
}

// SearchApparelByBrand returns apparel of a brand.
func (s *Service) SearchApparelByBrand(ctx context.Context, brand string, top int) []catalog.ApparelProduct {
	filter := fmt.Sprintf("brand eq '%s'", brand)
	return s.SearchApparel(ctx, WildcardQuery, filter, top)
}

// SearchApparelByColor returns apparel of a color.
func (s *Service) SearchApparelByColor(ctx context.Context, color string, top int) []catalog.ApparelProduct {
	filter := fmt.Sprintf("color eq '%s'", color)
	return s.SearchApparel(ctx, WildcardQuery, filter, top)
}

// SearchApparelByMaterial returns apparel made of a material.
func (s *Service) SearchApparelByMaterial(ctx context.Context, material string, top int) []catalog.ApparelProduct {
	filter := fmt.Sprintf("material eq '%s'", material)
	return s.SearchApparel(ctx, WildcardQuery, filter, top)
}

// ApparelSemanticSearch runs a semantic query against the apparel index and
// shapes the scored, highlighted results for the API. Failures return an
// empty response carrying the original query.
func (s *Service) ApparelSemanticSearch(ctx context.Context, req Request) SemanticResponse {
	spec := Build(req)
	slog.Info("apparel semantic search",
		"query", spec.QueryText,
		"filter", spec.Filter,
		"facets", spec.Facets,
		"top", spec.Top,
		"skip", spec.Skip,
		"semantic_configuration", spec.SemanticConfiguration,
	)

	start := time.Now()
	resp, err := query(ctx, s.apparel, spec.QueryText, spec.Options())
	if err != nil {
		logSearchFailure("apparel semantic search", spec.QueryText, err)
		return emptySemanticResponse(req.Search)
	}

	out := SemanticResponse{
		Query:        req.Search,
		Results:      make([]ApparelResult, 0, len(resp.Results)),
		Facets:       resp.Facets,
		SearchTimeMS: time.Since(start).Milliseconds(),
	}
	for _, result := range resp.Results {
		out.Results = append(out.Results, toApparelResult(result))
	}
	if resp.TotalCount != nil {
		out.TotalResults = *resp.TotalCount
	} else {
		out.TotalResults = int64(len(out.Results))
	}
	return out
}

// UploadProducts hands a materialized batch to the backend for indexing.
// Returns false when no backend is configured or the upload fails.
func (s *Service) UploadProducts(ctx context.Context, products []catalog.Product) bool {
	if s.products == nil {
		slog.Warn("product upload skipped", "error", ErrBackendUnavailable)
		return false
	}

	docs := make([]Document, 0, len(products))
	for _, p := range products {
		if doc := ProductToDocument(p); doc != nil {
			docs = append(docs, doc)
		}
	}

	if err := s.products.Upload(ctx, docs); err != nil {
		slog.Error("product upload failed", "count", len(docs), "error", err)
		return false
	}
	return true
}

// mockProduct is the demonstration product served when no backend exists.
func mockProduct(productID string) *catalog.Product {
	p := catalog.NewProduct()
	p.ID = productID
	p.Name = "Sample Product " + productID
	p.Description = "This is a sample product description for product " + productID
	p.Brand = "Sample Brand"
	p.Category = "Electronics"
	price := decimal.RequireFromString("99.99")
	p.Price = &price
	p.Currency = catalog.DefaultCurrency
	p.SKU = "SKU-" + productID
	p.Image = "https://example.com/images/product-" + productID + ".jpg"
	p.Tags = []string{"electronics", "sample", "demo"}
	p.InStock = true
	p.StockQuantity = 100
	p.Manufacturer = "Sample Manufacturer"
	p.Model = "Model-" + productID
	p.Specifications = []string{"Color: Black", "Weight: 1.5 lbs", "Dimensions: 10x8x2 inches"}
	p.CreatedAt = time.Now().AddDate(0, 0, -30)
	p.UpdatedAt = time.Now()

	p.SetAttribute("warranty", catalog.StringValue("2 years"))
	p.SetAttribute("color", catalog.StringValue("Black"))
	p.SetAttribute("weight", catalog.StringValue("1.5 lbs"))
	p.SetAttribute("dimensions", catalog.StringValue("10x8x2 inches"))
	p.SetAttribute("batteryLife", catalog.StringValue("24 hours"))
	p.SetAttribute("isWaterproof", catalog.BoolValue(true))
	p.SetAttribute("rating", catalog.NumberValue(4.5))
	p.SetAttribute("reviewCount", catalog.NumberValue(150))

	return &p
}
