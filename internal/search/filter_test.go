package search

import "testing"

func TestFilter_Build(t *testing.T) {
	f := NewFilter().
		Eq("brand", "Nike").
		Ge("price", 10).
		Le("price", 99.5)

	want := "brand eq 'Nike' and price ge 10.0 and price le 99.5"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFilter_EscapesQuotes(t *testing.T) {
	f := NewFilter().Eq("brand", "Levi's")
	want := "brand eq 'Levi''s'"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// A value that tries to close the literal stays inside it.
	f = NewFilter().Eq("brand", "x' or brand ne '")
	want = "brand eq 'x'' or brand ne '''"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFilter_Empty(t *testing.T) {
	f := NewFilter()
	if !f.Empty() {
		t.Error("new filter should be empty")
	}
	if f.String() != "" {
		t.Errorf("String() = %q, want empty", f.String())
	}

	f.Eq("color", "Blue")
	if f.Empty() {
		t.Error("filter with a clause should not be empty")
	}
}
