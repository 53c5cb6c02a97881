package search

// querybuilder.go assembles backend query parameters from a structured
// request: the query text, the OData filter conjunction, the sanitized facet
// list and the semantic configuration.

import (
	"strconv"
	"strings"
)

// WildcardQuery is the match-everything sentinel used when no query text is
// supplied.
const WildcardQuery = "*"

// ratingFacetFix replaces any rating facet the caller supplied. Rating is a
// continuous field, so a value/interval facet is invalid against the
// backend; a count facet is the only legal form.
const ratingFacetFix = "rating,count:10"

// QuerySpec is the fully assembled set of parameters for one backend call.
type QuerySpec struct {
	QueryText             string
	Filter                string
	Facets                []string
	Select                []string
	Top                   int
	Skip                  int
	IncludeCount          bool
	QueryType             string
	SemanticConfiguration string
}

// Options converts the assembled parameters into backend call options.
func (q QuerySpec) Options() Options {
	return Options{
		Filter:                q.Filter,
		Facets:                q.Facets,
		Select:                q.Select,
		Top:                   q.Top,
		Skip:                  q.Skip,
		IncludeCount:          q.IncludeCount,
		QueryType:             q.QueryType,
		SemanticConfiguration: q.SemanticConfiguration,
	}
}

// Build assembles a QuerySpec from a structured request. Filter values are
// interpolated as-is: escaping them could change OData semantics for
// legitimate special characters, so the sanitized alternative lives in the
// Filter builder instead and callers choose.
func Build(req Request) QuerySpec {
	spec := QuerySpec{
		QueryText:             strings.TrimSpace(req.Search),
		Filter:                buildFilter(req),
		Facets:                sanitizeFacets(req.Facets),
		Top:                   req.Top,
		Skip:                  req.Skip,
		IncludeCount:          req.Count,
		QueryType:             req.QueryType,
		SemanticConfiguration: req.SemanticConfiguration,
	}
	if spec.QueryText == "" {
		spec.QueryText = WildcardQuery
	}
	if req.Select != "" {
		spec.Select = strings.Split(req.Select, ",")
	}
	return spec
}

// buildFilter AND-joins the present filter shortcuts in fixed field order.
func buildFilter(req Request) string {
	var b strings.Builder

	appendClause := func(clause string) {
		if b.Len() > 0 {
			b.WriteString(" and ")
		}
		b.WriteString(clause)
	}

	if v := strings.TrimSpace(req.BrandFilter); v != "" {
		appendClause("brand eq '" + req.BrandFilter + "'")
	}
	if v := strings.TrimSpace(req.ColorFilter); v != "" {
		appendClause("color eq '" + req.ColorFilter + "'")
	}
	if v := strings.TrimSpace(req.SizeFilter); v != "" {
		appendClause("size eq '" + req.SizeFilter + "'")
	}
	if v := strings.TrimSpace(req.MaterialFilter); v != "" {
		appendClause("material eq '" + req.MaterialFilter + "'")
	}
	if req.MinPrice != nil {
		appendClause("price ge " + FormatNumber(*req.MinPrice))
	}
	if req.MaxPrice != nil {
		appendClause("price le " + FormatNumber(*req.MaxPrice))
	}
	if req.MinRating != nil {
		appendClause("rating ge " + FormatNumber(*req.MinRating))
	}

	return b.String()
}

// sanitizeFacets passes facets through verbatim except for rating entries,
// which are rewritten to the fixed count directive.
func sanitizeFacets(facets []string) []string {
	if len(facets) == 0 {
		return nil
	}
	out := make([]string, 0, len(facets))
	for _, facet := range facets {
		if strings.Contains(facet, "rating") {
			out = append(out, ratingFacetFix)
		} else {
			out = append(out, facet)
		}
	}
	return out
}

// FormatNumber renders a float for an OData comparison. Whole numbers keep a
// trailing ".0" so the literal stays a float on the wire ("50" would compare
// as an integer against a double field on some backends).
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
