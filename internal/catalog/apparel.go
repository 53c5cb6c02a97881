package catalog

// apparel.go defines the apparel specialization of Product. The upstream data
// model kept duplicate price/description/brand/title fields on the apparel
// view and synchronized them with the base entity by convention; here the
// shared concepts live only on the embedded Product, so the two views cannot
// diverge. The wire format still exposes the apparel vocabulary ("title",
// "review_text") used by the apparel search index.

import "encoding/json"

// ApparelProduct extends Product with apparel-specific fields. Name doubles
// as the apparel title; Price and Description are the embedded base slots.
type ApparelProduct struct {
	Product

	Color      string   `json:"color,omitempty"`
	Size       string   `json:"size,omitempty"`
	Material   string   `json:"material,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	ReviewText string   `json:"review_text,omitempty"`
}

// NewApparelProduct returns an ApparelProduct with the JSON-LD envelope set.
func NewApparelProduct() ApparelProduct {
	return ApparelProduct{Product: Product{Context: SchemaContext, Type: TypeApparelProduct}}
}

// Title returns the apparel display title, which is the base entity's name.
func (p *ApparelProduct) Title() string { return p.Name }

// SetTitle sets the apparel title and, by construction, the base name.
func (p *ApparelProduct) SetTitle(title string) { p.Name = title }

// MarshalJSON emits the flattened entity plus the apparel "title" alias.
func (p ApparelProduct) MarshalJSON() ([]byte, error) {
	type alias ApparelProduct
	return json.Marshal(struct {
		alias
		Title string `json:"title,omitempty"`
	}{alias(p), p.Name})
}

// UnmarshalJSON accepts either "name" or the apparel "title" key; when both
// are present, title wins since apparel documents are authored with it.
func (p *ApparelProduct) UnmarshalJSON(data []byte) error {
	type alias ApparelProduct
	aux := struct {
		*alias
		Title string `json:"title"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Title != "" {
		p.Name = aux.Title
	}
	return nil
}

// FromProduct promotes a generic product to the apparel view, lifting
// color/size/material/rating/review_text out of the custom-attribute bag
// where the generic feed materializer routes them.
func FromProduct(p Product) ApparelProduct {
	ap := ApparelProduct{Product: p}
	ap.Type = TypeApparelProduct

	if v, ok := p.Attribute("color"); ok && v.Kind == AttrString {
		ap.Color = v.Str
	}
	if v, ok := p.Attribute("size"); ok && v.Kind == AttrString {
		ap.Size = v.Str
	}
	if v, ok := p.Attribute("material"); ok && v.Kind == AttrString {
		ap.Material = v.Str
	}
	if v, ok := p.Attribute("rating"); ok && v.Kind == AttrNumber {
		rating := v.Num
		ap.Rating = &rating
	}
	if v, ok := p.Attribute("review_text"); ok && v.Kind == AttrString {
		ap.ReviewText = v.Str
	}
	return ap
}
