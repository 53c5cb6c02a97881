// Package search implements query assembly for the managed search index and
// the mapping between schema-less index documents and typed catalog
// entities. The backend itself is an opaque collaborator reached through the
// Backend interface; everything durable lives on its side.
package search

import (
	"context"
	"errors"
)

// ErrBackendUnavailable is returned when no search backend is configured.
// Callers degrade to empty results (queries) or a failure status (uploads);
// the error never crosses the HTTP boundary as a crash.
var ErrBackendUnavailable = errors.New("search backend is not configured")

// Document is a schema-less search index document.
type Document map[string]any

// Result is one hit returned by the backend: the raw document, its relevance
// score and any hit highlights.
type Result struct {
	Document   Document
	Score      float64
	Highlights map[string][]string
}

// FacetValue is one bucket of a facet aggregation.
type FacetValue struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// Response is the backend's answer to one search call. TotalCount is the
// approximate total the index reports when the query asked for it.
type Response struct {
	Results    []Result
	TotalCount *int64
	Facets     map[string][]FacetValue
}

// Options carries the assembled query parameters for one backend call.
type Options struct {
	Filter                string
	Facets                []string
	Select                []string
	Top                   int
	Skip                  int
	IncludeCount          bool
	QueryType             string
	SemanticConfiguration string
}

// Backend is the single capability the core needs from a search index:
// execute a query and return scored documents, plus a bulk upload that the
// current deployment stubs out.
type Backend interface {
	Search(ctx context.Context, text string, opts Options) (*Response, error)
	Upload(ctx context.Context, docs []Document) error
}

// Helpers for picking typed values out of schema-less documents.

func docString(doc Document, field string) string {
	if v, ok := doc[field]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func docFloat(doc Document, field string) *float64 {
	switch v := doc[field].(type) {
	case float64:
		return &v
	case int64:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func docStringList(doc Document, field string) []string {
	raw, ok := doc[field].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
