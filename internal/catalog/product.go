// Package catalog defines the product entities exchanged between the feed
// ingestion pipeline, the search backend, and the HTTP layer. Entities are
// created fresh per request or per result row and never cached locally; the
// remote search index is the system of record.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is stamped on products whose feed omitted a currency code.
const DefaultCurrency = "USD"

// JSON-LD envelope constants emitted on every product.
const (
	SchemaContext      = "https://schema.org/"
	TypeProduct        = "Product"
	TypeApparelProduct = "ApparelProduct"
)

func init() {
	// Prices serialize as JSON numbers, matching the search index schema.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a generic catalog entity. A nil Price means the feed either had
// no price column mapped or the value failed to parse; both are non-fatal.
type Product struct {
	Context     string `json:"@context,omitempty"`
	Type        string `json:"@type,omitempty"`
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`

	Price    *decimal.Decimal `json:"price,omitempty"`
	Currency string           `json:"currency,omitempty"`

	SKU   string   `json:"sku,omitempty"`
	Image string   `json:"image,omitempty"`
	Tags  []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`

	InStock       bool `json:"inStock"`
	StockQuantity int  `json:"stockQuantity"`

	Manufacturer   string   `json:"manufacturer,omitempty"`
	Model          string   `json:"model,omitempty"`
	Specifications []string `json:"specifications,omitempty"`

	// CustomAttributes holds feed fields with no fixed slot, keyed by the
	// mapped field identifier.
	CustomAttributes Attributes `json:"customAttributes,omitzero"`
}

// NewProduct returns a Product with the JSON-LD envelope populated.
func NewProduct() Product {
	return Product{Context: SchemaContext, Type: TypeProduct}
}

// SetAttribute stores a custom attribute on the product.
func (p *Product) SetAttribute(name string, v AttrValue) {
	p.CustomAttributes.Set(name, v)
}

// Attribute returns a custom attribute by name.
func (p *Product) Attribute(name string) (AttrValue, bool) {
	return p.CustomAttributes.Get(name)
}
