package feed

import (
	"testing"
	"time"

	"productsearch/internal/catalog"
	"productsearch/internal/mapping"
)

func TestMaterialize_BasicFields(t *testing.T) {
	m := mapping.Parse("product_id:id,title:name,brand:brand,price:price,stock:stockQuantity")
	headers := []string{"product_id", "title", "brand", "price", "stock"}
	values := []string{"P-1", "Trail Runner", "Nike", "$59.99", "25"}

	product, errs := Materialize(headers, values, m)
	if len(errs) != 0 {
		t.Fatalf("Materialize() field errors = %v, want none", errs)
	}

	if product.ID != "P-1" {
		t.Errorf("ID = %q, want %q", product.ID, "P-1")
	}
	if product.Name != "Trail Runner" {
		t.Errorf("Name = %q, want %q", product.Name, "Trail Runner")
	}
	if product.Brand != "Nike" {
		t.Errorf("Brand = %q, want %q", product.Brand, "Nike")
	}
	if product.Price == nil || product.Price.String() != "59.99" {
		t.Errorf("Price = %v, want 59.99", product.Price)
	}
	if product.StockQuantity != 25 {
		t.Errorf("StockQuantity = %d, want 25", product.StockQuantity)
	}
	if product.Currency != catalog.DefaultCurrency {
		t.Errorf("Currency = %q, want default %q", product.Currency, catalog.DefaultCurrency)
	}
}

func TestMaterialize_PriceCleaning(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"dollar sign stripped", "$59.99", "59.99", false},
		{"plain number", "12.50", "12.5", false},
		{"negative", "-3.00", "-3", false},
		{"thousands separator stripped", "$1,234.56", "1234.56", false},
		{"letters only fails", "free", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mapping.Parse("price:price")
			product, errs := Materialize([]string{"price"}, []string{tt.raw}, m)

			if tt.wantErr {
				if len(errs) != 1 {
					t.Fatalf("field errors = %v, want exactly one", errs)
				}
				if product.Price != nil {
					t.Errorf("Price = %v, want nil after failed parse", product.Price)
				}
				return
			}
			if len(errs) != 0 {
				t.Fatalf("field errors = %v, want none", errs)
			}
			if product.Price == nil || product.Price.String() != tt.want {
				t.Errorf("Price = %v, want %s", product.Price, tt.want)
			}
		})
	}
}

func TestMaterialize_InStock(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"Y", true},
		{"1", true},
		{"false", false},
		{"no", false},
		{"0", false},
		{"01", false},
	}

	for _, tt := range tests {
		m := mapping.Parse("in_stock:inStock")
		product, errs := Materialize([]string{"in_stock"}, []string{tt.value}, m)
		if len(errs) != 0 {
			t.Fatalf("field errors = %v, want none", errs)
		}
		if product.InStock != tt.want {
			t.Errorf("InStock for %q = %v, want %v", tt.value, product.InStock, tt.want)
		}
	}
}

func TestMaterialize_ListsAndTimestamps(t *testing.T) {
	m := mapping.Parse("tags:tags,specs:specifications,created:createdAt")
	headers := []string{"tags", "specs", "created"}
	values := []string{"summer;sale;new", "Cotton;Machine wash", "2024-03-01 10:30:00"}

	product, errs := Materialize(headers, values, m)
	if len(errs) != 0 {
		t.Fatalf("field errors = %v, want none", errs)
	}

	if len(product.Tags) != 3 || product.Tags[0] != "summer" || product.Tags[2] != "new" {
		t.Errorf("Tags = %v, want [summer sale new]", product.Tags)
	}
	if len(product.Specifications) != 2 {
		t.Errorf("Specifications = %v, want two entries", product.Specifications)
	}
	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if !product.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", product.CreatedAt, want)
	}
}

func TestMaterialize_BadTimestampLeavesDefault(t *testing.T) {
	m := mapping.Parse("created:createdAt")
	before := time.Now()
	product, errs := Materialize([]string{"created"}, []string{"03/01/2024"}, m)

	if len(errs) != 1 {
		t.Fatalf("field errors = %v, want exactly one", errs)
	}
	// Failed parse falls back to the ingestion timestamp.
	if product.CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want defaulted to now", product.CreatedAt)
	}
}

func TestMaterialize_CustomAttributeRouting(t *testing.T) {
	m := mapping.Parse("color:color,rating:rating,cat:categoryId,fabric_blend:fabricBlend")
	headers := []string{"color", "rating", "cat", "fabric_blend"}
	values := []string{"Blue", "4.5", "C-9", "60/40"}

	product, errs := Materialize(headers, values, m)
	if len(errs) != 0 {
		t.Fatalf("field errors = %v, want none", errs)
	}

	if v, ok := product.Attribute("color"); !ok || v.Str != "Blue" {
		t.Errorf("color attribute = %v, want Blue", v)
	}
	if v, ok := product.Attribute("rating"); !ok || v.Kind != catalog.AttrNumber || v.Num != 4.5 {
		t.Errorf("rating attribute = %v, want number 4.5", v)
	}
	if v, ok := product.Attribute("categoryId"); !ok || v.Str != "C-9" {
		t.Errorf("categoryId attribute = %v, want C-9", v)
	}
	if v, ok := product.Attribute("fabricBlend"); !ok || v.Str != "60/40" {
		t.Errorf("fabricBlend attribute = %v, want 60/40", v)
	}
}

func TestMaterialize_NonNumericRatingKeptAsString(t *testing.T) {
	m := mapping.Parse("rating:rating")
	product, errs := Materialize([]string{"rating"}, []string{"four stars"}, m)
	if len(errs) != 0 {
		t.Fatalf("field errors = %v, want none", errs)
	}
	if v, ok := product.Attribute("rating"); !ok || v.Kind != catalog.AttrString || v.Str != "four stars" {
		t.Errorf("rating attribute = %v, want string \"four stars\"", v)
	}
}

func TestMaterialize_Defaults(t *testing.T) {
	m := mapping.Parse("title:name")
	product, _ := Materialize([]string{"title"}, []string{"Basic Tee"}, m)

	if product.ID == "" {
		t.Error("ID not defaulted to a generated identifier")
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Error("timestamps not defaulted")
	}
	if product.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", product.Currency)
	}
	if product.Context != catalog.SchemaContext || product.Type != catalog.TypeProduct {
		t.Errorf("envelope = %q/%q, want schema.org Product", product.Context, product.Type)
	}
}

func TestMaterialize_EmptyValuesSkipped(t *testing.T) {
	m := mapping.Parse("brand:brand,price:price")
	product, errs := Materialize([]string{"brand", "price"}, []string{"", ""}, m)
	if len(errs) != 0 {
		t.Fatalf("field errors = %v, want none for empty values", errs)
	}
	if product.Brand != "" || product.Price != nil {
		t.Errorf("empty values should leave fields unset, got brand=%q price=%v", product.Brand, product.Price)
	}
}

func TestMaterialize_ShorterValueRow(t *testing.T) {
	// Value lookup is restricted to the shorter slice; extra headers map to
	// nothing rather than panicking.
	m := mapping.Parse("a:brand,b:category")
	product, errs := Materialize([]string{"a", "b"}, []string{"Nike"}, m)
	if len(errs) != 0 {
		t.Fatalf("field errors = %v, want none", errs)
	}
	if product.Brand != "Nike" || product.Category != "" {
		t.Errorf("got brand=%q category=%q, want Nike and empty", product.Brand, product.Category)
	}
}
