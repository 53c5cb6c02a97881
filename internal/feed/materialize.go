package feed

// materialize.go applies a field mapping to one tokenized feed row and
// populates a Product. Coercion failures never fail the row: the field is
// left unset and a FieldError records what happened, so callers can return
// a structured manifest instead of silently under-counting.

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"productsearch/internal/catalog"
	"productsearch/internal/mapping"
)

// TimestampLayout is the accepted format for createdAt/updatedAt feed values.
const TimestampLayout = "2006-01-02 15:04:05"

// FieldError records a single field whose coercion failed. The row it
// belongs to still materializes; only this field is left unset.
type FieldError struct {
	Line   int    `json:"line"`
	Column string `json:"column"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("line %d: field %s (column %s): %s", e.Line, e.Field, e.Column, e.Reason)
}

// Materialize builds a Product from one tokenized row under the given
// mapping. The header-to-value lookup is restricted to the shorter of the
// two slices; a length mismatch is the pipeline's concern, not this layer's.
// After all mapped fields are applied, missing id / timestamps / currency
// are defaulted.
func Materialize(headers, values []string, m *mapping.FieldMapping) (catalog.Product, []FieldError) {
	product := catalog.NewProduct()

	row := make(map[string]string, len(headers))
	n := len(headers)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		row[strings.TrimSpace(headers[i])] = strings.TrimSpace(values[i])
	}

	var fieldErrs []FieldError
	for _, entry := range m.Entries() {
		value, ok := row[entry.Column]
		if !ok || value == "" {
			continue
		}
		if err := setField(&product, entry.Field, value); err != nil {
			fieldErrs = append(fieldErrs, FieldError{
				Column: entry.Column,
				Field:  entry.Field,
				Value:  value,
				Reason: err.Error(),
			})
		}
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = now
	}
	if product.Currency == "" {
		product.Currency = catalog.DefaultCurrency
	}

	return product, fieldErrs
}

// cleanPrice drops everything except digits, the decimal point and the
// minus sign, so "$59.99" cleans to "59.99" and "$1,234.56" cleans to
// "1234.56". Currency symbols and thousands separators both disappear
// before the decimal parse.
func cleanPrice(s string) string {
	var b strings.Builder
	for _, c := range s {
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// setField routes a value to a Product slot by target field identifier.
// The vocabulary is case-insensitive. Unrecognized identifiers land in the
// custom-attribute bag verbatim; so do color, rating and category id, which
// have no first-class slot on the generic product.
func setField(p *catalog.Product, field, value string) error {
	switch strings.ToLower(field) {
	case "id":
		p.ID = value
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "brand":
		p.Brand = value
	case "category":
		p.Category = value
	case "currency":
		p.Currency = value
	case "sku":
		p.SKU = value
	case "image":
		p.Image = value
	case "manufacturer":
		p.Manufacturer = value
	case "model":
		p.Model = value

	case "price":
		cleaned := cleanPrice(value)
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return fmt.Errorf("invalid price %q (cleaned %q)", value, cleaned)
		}
		p.Price = &d

	case "instock", "in_stock", "in-stock":
		lower := strings.ToLower(value)
		p.InStock = lower == "true" || lower == "yes" || lower == "y" || value == "1"

	case "stockquantity", "stock_quantity", "stock-quantity":
		qty, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid stock quantity %q", value)
		}
		p.StockQuantity = qty

	case "tags":
		p.Tags = strings.Split(value, ";")

	case "specifications", "specs":
		p.Specifications = strings.Split(value, ";")

	case "createdat", "created_at", "created-at":
		t, err := time.Parse(TimestampLayout, value)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q, want %s", value, TimestampLayout)
		}
		p.CreatedAt = t

	case "updatedat", "updated_at", "updated-at":
		t, err := time.Parse(TimestampLayout, value)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q, want %s", value, TimestampLayout)
		}
		p.UpdatedAt = t

	case "color":
		p.SetAttribute("color", catalog.StringValue(value))

	case "rating":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			p.SetAttribute("rating", catalog.NumberValue(f))
		} else {
			p.SetAttribute("rating", catalog.StringValue(value))
		}

	case "categoryid", "category_id":
		p.SetAttribute("categoryId", catalog.StringValue(value))

	default:
		p.SetAttribute(field, catalog.StringValue(value))
	}
	return nil
}
