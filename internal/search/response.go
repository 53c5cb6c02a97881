package search

// ApparelResult is one scored hit from the apparel index, flattened from
// the stored document plus the enrichment fields the indexer attaches
// (key phrases, review sentiment).
type ApparelResult struct {
	ProductID            string              `json:"productId"`
	Title                string              `json:"title"`
	Brand                string              `json:"brand,omitempty"`
	Color                string              `json:"color,omitempty"`
	Size                 string              `json:"size,omitempty"`
	Material             string              `json:"material,omitempty"`
	Price                *float64            `json:"price,omitempty"`
	Rating               *float64            `json:"rating,omitempty"`
	Description          string              `json:"description,omitempty"`
	ReviewText           string              `json:"reviewText,omitempty"`
	ReviewSentimentLabel string              `json:"reviewSentimentLabel,omitempty"`
	ReviewPositiveScore  *float64            `json:"reviewPositiveScore,omitempty"`
	KeyPhrases           []string            `json:"keyPhrases,omitempty"`
	Score                float64             `json:"score"`
	Highlights           map[string][]string `json:"highlights,omitempty"`
}

// SemanticResponse is the API shape of an apparel semantic search: the
// original query echoed back, the total hit count reported by the index,
// the scored results, facet buckets, and the observed round-trip time.
type SemanticResponse struct {
	Query        string                  `json:"query"`
	TotalResults int64                   `json:"totalResults"`
	Results      []ApparelResult         `json:"results"`
	Facets       map[string][]FacetValue `json:"facets,omitempty"`
	SearchTimeMS int64                   `json:"searchTimeMs"`
}

func emptySemanticResponse(query string) SemanticResponse {
	return SemanticResponse{Query: query, Results: []ApparelResult{}}
}

func toApparelResult(r Result) ApparelResult {
	return ApparelResult{
		ProductID:            docString(r.Document, "product_id"),
		Title:                docString(r.Document, "title"),
		Brand:                docString(r.Document, "brand"),
		Color:                docString(r.Document, "color"),
		Size:                 docString(r.Document, "size"),
		Material:             docString(r.Document, "material"),
		Price:                docFloat(r.Document, "price"),
		Rating:               docFloat(r.Document, "rating"),
		Description:          docString(r.Document, "description"),
		ReviewText:           docString(r.Document, "review_text"),
		ReviewSentimentLabel: docString(r.Document, "reviewSentimentLabel"),
		ReviewPositiveScore:  docFloat(r.Document, "reviewPositiveScore"),
		KeyPhrases:           docStringList(r.Document, "keyPhrases"),
		Score:                r.Score,
		Highlights:           r.Highlights,
	}
}
