package search

// azure.go is the REST client for the managed search index (Azure AI Search
// documents API). One search call is one blocking round trip; failures
// surface as errors for the service layer to degrade on. The bulk upload is
// deliberately a stub: the deployment indexes through a separate pipeline,
// so Upload logs what it would write and reports success.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// APIVersion is the search service REST API version this client speaks.
const APIVersion = "2023-11-01"

// AzureClient talks to a single index of an Azure AI Search service.
type AzureClient struct {
	endpoint string
	apiKey   string
	index    string
	client   *http.Client
}

var _ Backend = (*AzureClient)(nil)

// NewAzureClient builds a client for one index. The endpoint is the service
// URL, e.g. https://myservice.search.windows.net.
func NewAzureClient(endpoint, apiKey, index string) *AzureClient {
	return &AzureClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		index:    index,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// searchRequest is the documents-search request body.
type searchRequest struct {
	Search                string   `json:"search"`
	Filter                string   `json:"filter,omitempty"`
	Facets                []string `json:"facets,omitempty"`
	Select                string   `json:"select,omitempty"`
	Top                   int      `json:"top,omitempty"`
	Skip                  int      `json:"skip,omitempty"`
	Count                 bool     `json:"count,omitempty"`
	QueryType             string   `json:"queryType,omitempty"`
	SemanticConfiguration string   `json:"semanticConfiguration,omitempty"`
}

// searchResponse is the subset of the documents-search response we consume.
type searchResponse struct {
	Count  *int64                       `json:"@odata.count"`
	Facets map[string][]json.RawMessage `json:"@search.facets"`
	Value  []map[string]json.RawMessage `json:"value"`
}

type facetBucket struct {
	Value any    `json:"value"`
	From  *int64 `json:"from"`
	To    *int64 `json:"to"`
	Count int64  `json:"count"`
}

// Search executes one query against the index.
func (c *AzureClient) Search(ctx context.Context, text string, opts Options) (*Response, error) {
	body := searchRequest{
		Search:                text,
		Filter:                opts.Filter,
		Facets:                opts.Facets,
		Select:                strings.Join(opts.Select, ","),
		Top:                   opts.Top,
		Skip:                  opts.Skip,
		Count:                 opts.IncludeCount,
		QueryType:             opts.QueryType,
		SemanticConfiguration: opts.SemanticConfiguration,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s", c.endpoint, c.index, APIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("search index %s: unexpected status %s: %s", c.index, resp.Status, detail)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	return c.toResponse(decoded)
}

// toResponse separates per-hit metadata from document fields.
func (c *AzureClient) toResponse(decoded searchResponse) (*Response, error) {
	out := &Response{TotalCount: decoded.Count}

	for _, value := range decoded.Value {
		result := Result{Document: make(Document, len(value))}
		for key, raw := range value {
			switch key {
			case "@search.score":
				if err := json.Unmarshal(raw, &result.Score); err != nil {
					return nil, fmt.Errorf("decoding result score: %w", err)
				}
			case "@search.highlights":
				if err := json.Unmarshal(raw, &result.Highlights); err != nil {
					return nil, fmt.Errorf("decoding result highlights: %w", err)
				}
			default:
				if strings.HasPrefix(key, "@search.") {
					continue
				}
				var field any
				if err := json.Unmarshal(raw, &field); err != nil {
					return nil, fmt.Errorf("decoding field %s: %w", key, err)
				}
				result.Document[key] = field
			}
		}
		out.Results = append(out.Results, result)
	}

	if len(decoded.Facets) > 0 {
		out.Facets = make(map[string][]FacetValue, len(decoded.Facets))
		for field, rawBuckets := range decoded.Facets {
			buckets := make([]FacetValue, 0, len(rawBuckets))
			for _, raw := range rawBuckets {
				var b facetBucket
				if err := json.Unmarshal(raw, &b); err != nil {
					continue
				}
				buckets = append(buckets, FacetValue{Value: facetLabel(b), Count: b.Count})
			}
			out.Facets[field] = buckets
		}
	}

	return out, nil
}

// facetLabel renders a facet bucket label for both value and range facets.
func facetLabel(b facetBucket) string {
	if b.Value != nil {
		return fmt.Sprint(b.Value)
	}
	switch {
	case b.From != nil && b.To != nil:
		return fmt.Sprintf("%d-%d", *b.From, *b.To)
	case b.From != nil:
		return fmt.Sprintf("%d-", *b.From)
	case b.To != nil:
		return fmt.Sprintf("-%d", *b.To)
	}
	return ""
}

// Upload is the bulk indexing stub. It logs the batch it would write and
// reports success; real indexing happens through a separate feed pipeline.
func (c *AzureClient) Upload(ctx context.Context, docs []Document) error {
	slog.Info("would upload documents to search index",
		"index", c.index,
		"count", len(docs),
	)
	for _, doc := range docs {
		slog.Debug("upload candidate", "id", doc["id"], "name", doc["name"])
	}
	return nil
}
