package mapping

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Entry
	}{
		{
			name: "two pairs",
			spec: "product_id:id,brand:brand",
			want: []Entry{{"product_id", "id"}, {"brand", "brand"}},
		},
		{
			name: "whitespace tolerated",
			spec: " product_id : id , brand : brand ",
			want: []Entry{{"product_id", "id"}, {"brand", "brand"}},
		},
		{
			name: "malformed entry dropped",
			spec: "product_id:id,bad_entry,brand:brand",
			want: []Entry{{"product_id", "id"}, {"brand", "brand"}},
		},
		{
			name: "too many colons dropped",
			spec: "a:b:c,x:y",
			want: []Entry{{"x", "y"}},
		},
		{
			name: "empty sides dropped",
			spec: ":id,brand:",
			want: nil,
		},
		{
			name: "empty spec",
			spec: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Parse(tt.spec)
			got := m.Entries()
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) entries = %v, want %v", tt.spec, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSet_RemapKeepsPosition(t *testing.T) {
	m := New()
	m.Set("a", "brand")
	m.Set("b", "category")
	m.Set("a", "name")

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	entries := m.Entries()
	if entries[0].Column != "a" || entries[0].Field != "name" {
		t.Errorf("entries[0] = %v, want a:name in original position", entries[0])
	}
	if field, ok := m.Get("a"); !ok || field != "name" {
		t.Errorf("Get(a) = %q, %v; want name, true", field, ok)
	}
}

func TestGet_Missing(t *testing.T) {
	m := New()
	if _, ok := m.Get("absent"); ok {
		t.Error("Get on empty mapping should report absent")
	}

	var zero FieldMapping
	if _, ok := zero.Get("absent"); ok {
		t.Error("Get on zero-value mapping should report absent")
	}
}

func TestProductFeed(t *testing.T) {
	m := ProductFeed()
	if m.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", m.Len())
	}

	checks := map[string]string{
		"product_id":      "id",
		"product_name":    "name",
		"sku_name":        "name",
		"sku_id":          "sku",
		"category_name":   "category",
		"color":           "color",
		"aggregateRating": "rating",
		"category_id":     "categoryId",
	}
	for column, field := range checks {
		got, ok := m.Get(column)
		if !ok || got != field {
			t.Errorf("Get(%q) = %q, %v; want %q", column, got, ok, field)
		}
	}

	// product_name must be applied before sku_name so the SKU name wins.
	entries := m.Entries()
	productNameIdx, skuNameIdx := -1, -1
	for i, e := range entries {
		switch e.Column {
		case "product_name":
			productNameIdx = i
		case "sku_name":
			skuNameIdx = i
		}
	}
	if productNameIdx < 0 || skuNameIdx < 0 || productNameIdx > skuNameIdx {
		t.Errorf("product_name at %d, sku_name at %d; want product_name first", productNameIdx, skuNameIdx)
	}
}
