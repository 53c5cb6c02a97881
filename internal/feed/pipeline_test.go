package feed

import (
	"strings"
	"testing"

	"productsearch/internal/mapping"
)

const sampleFeed = `product_id,product_name,brand,category_name,category_description,sku_id,sku_name,sku_image,sku_description,color,aggregateRating,category_id
P-100,Runner Pro,Nike,Shoes,Running footwear,S-1,Runner Pro Mens,https://img.example.com/s1.jpg,Lightweight mens runner,Blue,4.5,C-10
P-101,Court Classic,Adidas,Shoes,Court footwear,S-2,Court Classic Womens,https://img.example.com/s2.jpg,Classic court shoe,White,4.2,C-10
`

func TestParse_ProductFeedPreset(t *testing.T) {
	result, err := Parse(strings.NewReader(sampleFeed), mapping.ProductFeed())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2", len(result.Products))
	}
	if len(result.Skipped) != 0 || len(result.FieldErrors) != 0 {
		t.Fatalf("diagnostics = %v / %v, want none", result.Skipped, result.FieldErrors)
	}

	p := result.Products[0]
	if p.ID != "P-100" {
		t.Errorf("ID = %q, want P-100", p.ID)
	}
	// sku_name re-targets name and is applied after product_name.
	if p.Name != "Runner Pro Mens" {
		t.Errorf("Name = %q, want sku_name to win", p.Name)
	}
	// sku_description likewise overwrites category_description.
	if p.Description != "Lightweight mens runner" {
		t.Errorf("Description = %q, want sku_description to win", p.Description)
	}
	if p.SKU != "S-1" {
		t.Errorf("SKU = %q, want S-1", p.SKU)
	}
	// The preset has no price column, so price stays unset.
	if p.Price != nil {
		t.Errorf("Price = %v, want nil for preset without price column", p.Price)
	}
	if v, ok := p.Attribute("color"); !ok || v.Str != "Blue" {
		t.Errorf("color attribute = %v, want Blue", v)
	}
	if v, ok := p.Attribute("rating"); !ok || v.Num != 4.5 {
		t.Errorf("rating attribute = %v, want 4.5", v)
	}
	if v, ok := p.Attribute("categoryId"); !ok || v.Str != "C-10" {
		t.Errorf("categoryId attribute = %v, want C-10", v)
	}
}

func TestParse_SkipsMismatchedRows(t *testing.T) {
	feed := "id,name\n" +
		"P-1,Alpha\n" +
		"P-2,Beta,extra-column\n" +
		"P-3,Gamma\n"

	result, err := Parse(strings.NewReader(feed), mapping.Parse("id:id,name:name"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2", len(result.Products))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("len(Skipped) = %d, want 1", len(result.Skipped))
	}
	if result.Skipped[0].Line != 3 {
		t.Errorf("Skipped[0].Line = %d, want 3", result.Skipped[0].Line)
	}
	if result.Products[0].ID != "P-1" || result.Products[1].ID != "P-3" {
		t.Errorf("surviving products = %q, %q; want P-1 and P-3",
			result.Products[0].ID, result.Products[1].ID)
	}
}

func TestParse_BlankLinesIgnored(t *testing.T) {
	feed := "\n\nid,name\n\nP-1,Alpha\n\n"
	result, err := Parse(strings.NewReader(feed), mapping.Parse("id:id,name:name"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1", len(result.Products))
	}
	if result.Products[0].ID != "P-1" {
		t.Errorf("ID = %q, want P-1", result.Products[0].ID)
	}
}

func TestParse_FieldErrorsCarryLineNumbers(t *testing.T) {
	feed := "id,price\n" +
		"P-1,$10.00\n" +
		"P-2,$1,234.56\n" + // tokenizes to 3 columns, skipped
		"P-3,not-a-price\n"

	result, err := Parse(strings.NewReader(feed), mapping.Parse("id:id,price:price"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2", len(result.Products))
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Line != 3 {
		t.Fatalf("Skipped = %v, want the 3-column row at line 3", result.Skipped)
	}
	if len(result.FieldErrors) != 1 {
		t.Fatalf("FieldErrors = %v, want one", result.FieldErrors)
	}
	fe := result.FieldErrors[0]
	if fe.Line != 4 || fe.Field != "price" || fe.Value != "not-a-price" {
		t.Errorf("FieldError = %+v, want line 4 price not-a-price", fe)
	}
	// The row with the bad field still materialized.
	if result.Products[1].ID != "P-3" || result.Products[1].Price != nil {
		t.Errorf("P-3 = %+v, want present with nil price", result.Products[1])
	}
}

func TestParse_RepeatedRunsMatchExceptGenerated(t *testing.T) {
	feed := "name,brand,color,price\n" +
		"Trail Runner,Nike,Blue,$59.99\n" +
		"Court Classic,Adidas,White,$74.99\n"
	m := mapping.Parse("name:name,brand:brand,color:color,price:price")

	first, err := Parse(strings.NewReader(feed), m)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := Parse(strings.NewReader(feed), m)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(first.Products) != 2 || len(second.Products) != len(first.Products) {
		t.Fatalf("product counts = %d / %d, want 2 each",
			len(first.Products), len(second.Products))
	}

	for i := range first.Products {
		a, b := first.Products[i], second.Products[i]
		if a.Name != b.Name || a.Brand != b.Brand {
			t.Errorf("row %d: %q/%q vs %q/%q, want identical mapped fields",
				i, a.Name, a.Brand, b.Name, b.Brand)
		}
		if a.Price == nil || b.Price == nil || !a.Price.Equal(*b.Price) {
			t.Errorf("row %d: prices %v vs %v, want equal", i, a.Price, b.Price)
		}
		av, aok := a.Attribute("color")
		bv, bok := b.Attribute("color")
		if !aok || !bok || av.Str != bv.Str {
			t.Errorf("row %d: color %v vs %v, want equal", i, av, bv)
		}
		// No id column in the feed, so each run generates fresh identifiers.
		if a.ID == "" || a.ID == b.ID {
			t.Errorf("row %d: IDs %q vs %q, want distinct generated values", i, a.ID, b.ID)
		}
		if a.CreatedAt.IsZero() || b.CreatedAt.IsZero() {
			t.Errorf("row %d: timestamps not stamped", i)
		}
	}
}

func TestParse_EmptyFeed(t *testing.T) {
	result, err := Parse(strings.NewReader(""), mapping.ProductFeed())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Products) != 0 {
		t.Errorf("len(Products) = %d, want 0", len(result.Products))
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	result, err := Parse(strings.NewReader("id,name\n"), mapping.Parse("id:id,name:name"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Products) != 0 || len(result.Skipped) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}
