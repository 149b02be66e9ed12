// Package gateway holds the client for the external movie metadata API
// (OMDb).  The client translates the upstream response shape into the
// service's search result shape; callers decide how to persist and expose
// the results.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BrunaRochaL/violet-view/internal/model"
)

// MovieSearcher is the surface the search handler depends on.
type MovieSearcher interface {
	// Search queries the metadata API by title.  A query that matches
	// nothing is a normal outcome and returns an empty slice; errors mean
	// the gateway itself failed (network, decode, upstream rejection).
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// OMDbClient calls the OMDb title-search endpoint.  One-shot requests, no
// retries: a failed call surfaces to the handler as an internal error.
type OMDbClient struct {
	base   string
	apiKey string
	http   *http.Client
}

func NewOMDbClient(base, apiKey string) *OMDbClient {
	return &OMDbClient{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

// omdbSearchResponse mirrors the upstream payload.  Response is the string
// "True" or "False"; Error is only set on "False".
type omdbSearchResponse struct {
	Search   []model.SearchResult `json:"Search"`
	Response string               `json:"Response"`
	Error    string               `json:"Error"`
}

func (c *OMDbClient) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	u := fmt.Sprintf("%s/?apikey=%s&s=%s", c.base, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb: unexpected status %d", resp.StatusCode)
	}

	var body omdbSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("omdb: decode response: %w", err)
	}

	if body.Response != "True" {
		// OMDb reports an empty result set as an error string rather than
		// an empty list.  Anything else is a real upstream failure
		// (bad key, malformed query).
		if strings.Contains(strings.ToLower(body.Error), "not found") {
			return []model.SearchResult{}, nil
		}
		return nil, fmt.Errorf("omdb: %s", body.Error)
	}
	if body.Search == nil {
		return []model.SearchResult{}, nil
	}
	return body.Search, nil
}
