package search

// request.go defines the structured semantic-search request for the apparel
// index, including the default facet and projection sets the simplified
// endpoint installs.

// Defaults applied to semantic search requests.
const (
	DefaultQueryType      = "semantic"
	DefaultSemanticConfig = "apparel-sem-config"
	DefaultTop            = 10
)

// DefaultFacets is the facet set for the simplified apparel request: count
// facets over the discrete fields, histograms for rating and price, and the
// three-bucket review sentiment facet.
func DefaultFacets() []string {
	return []string{
		"brand,count:10,sort:count",
		"color,count:10,sort:count",
		"size,count:10,sort:count",
		"material,count:10,sort:count",
		"rating,interval:0.5",
		"price,interval:25",
		"reviewSentimentLabel,count:3",
	}
}

// DefaultSelect is the fixed 13-field projection for apparel results.
const DefaultSelect = "product_id,title,brand,color,size,material,price,rating,description,review_text,keyPhrases,reviewSentimentLabel,reviewPositiveScore"

// Request is a structured apparel semantic-search request. The filter
// shortcut fields are AND-combined in the fixed order brand, color, size,
// material, minPrice, maxPrice, minRating.
type Request struct {
	QueryType             string   `json:"queryType"`
	SemanticConfiguration string   `json:"semanticConfiguration"`
	Search                string   `json:"search"`
	Facets                []string `json:"facets,omitempty"`
	Select                string   `json:"select,omitempty"`
	Top                   int      `json:"top"`
	Skip                  int      `json:"skip"`
	Count                 bool     `json:"count"`

	BrandFilter    string   `json:"brandFilter,omitempty"`
	ColorFilter    string   `json:"colorFilter,omitempty"`
	SizeFilter     string   `json:"sizeFilter,omitempty"`
	MaterialFilter string   `json:"materialFilter,omitempty"`
	MinPrice       *float64 `json:"minPrice,omitempty"`
	MaxPrice       *float64 `json:"maxPrice,omitempty"`
	MinRating      *float64 `json:"minRating,omitempty"`
}

// DefaultRequest returns a Request with the wire defaults set. Decode JSON
// request bodies into this value so absent fields keep their defaults.
func DefaultRequest() Request {
	return Request{
		QueryType:             DefaultQueryType,
		SemanticConfiguration: DefaultSemanticConfig,
		Top:                   DefaultTop,
		Count:                 true,
	}
}

// NewRequest builds the simplified apparel request: defaults plus the
// standard facet set and field projection.
func NewRequest(query string) Request {
	req := DefaultRequest()
	req.Search = query
	req.Facets = DefaultFacets()
	req.Select = DefaultSelect
	return req
}
