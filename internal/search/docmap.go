package search

// docmap.go converts between schema-less index documents and typed catalog
// entities through a generic JSON re-encode: the document is an intermediate
// representation convertible both ways through the entity's declared field
// names. Unknown document fields are dropped; a type mismatch makes the
// single record absent, logged, never a fault for the caller.

import (
	"encoding/json"
	"log/slog"

	"productsearch/internal/catalog"
)

// ToProduct converts a document into a Product. Returns nil for a nil
// document or a conversion failure.
func ToProduct(doc Document) *catalog.Product {
	if doc == nil {
		return nil
	}
	var p catalog.Product
	if err := reencode(doc, &p); err != nil {
		slog.Error("mapping document to product", "error", err)
		return nil
	}
	return &p
}

// ToApparelProduct converts a document into an ApparelProduct. Returns nil
// for a nil document or a conversion failure.
func ToApparelProduct(doc Document) *catalog.ApparelProduct {
	if doc == nil {
		return nil
	}
	var p catalog.ApparelProduct
	if err := reencode(doc, &p); err != nil {
		slog.Error("mapping document to apparel product", "error", err)
		return nil
	}
	return &p
}

// ProductToDocument converts a Product into a document keyed by its JSON
// field names. Returns nil on failure.
func ProductToDocument(p catalog.Product) Document {
	var doc Document
	if err := reencode(p, &doc); err != nil {
		slog.Error("mapping product to document", "error", err)
		return nil
	}
	return doc
}

// ApparelToDocument converts an ApparelProduct into a document. Returns nil
// on failure.
func ApparelToDocument(p catalog.ApparelProduct) Document {
	var doc Document
	if err := reencode(p, &doc); err != nil {
		slog.Error("mapping apparel product to document", "error", err)
		return nil
	}
	return doc
}

// ResultsToProducts maps a batch of search results, dropping records whose
// conversion failed.
func ResultsToProducts(results []Result) []catalog.Product {
	products := make([]catalog.Product, 0, len(results))
	for _, r := range results {
		if p := ToProduct(r.Document); p != nil {
			products = append(products, *p)
		}
	}
	return products
}

// ResultsToApparelProducts maps a batch of search results to apparel
// entities, dropping failed conversions.
func ResultsToApparelProducts(results []Result) []catalog.ApparelProduct {
	products := make([]catalog.ApparelProduct, 0, len(results))
	for _, r := range results {
		if p := ToApparelProduct(r.Document); p != nil {
			products = append(products, *p)
		}
	}
	return products
}

// reencode round-trips src through JSON into dst.
func reencode(src, dst any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
