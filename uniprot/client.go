// Package uniprot implements the metadata API client.
//
// The upstream service returns duck-typed JSON with several optional
// and alternate field names; this package confines that variance to a
// single parsing boundary (parse.go) producing typed ProteinMetadata.
package uniprot

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/fetch"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// DefaultBaseURL is the production metadata API endpoint.
const DefaultBaseURL = "https://rest.uniprot.org"

// DefaultSearchLimit bounds free-text search results when the caller
// does not specify a limit.
const DefaultSearchLimit = 10

// Config configures the metadata client.
type Config struct {
	// BaseURL overrides the API endpoint (default DefaultBaseURL).
	BaseURL string
	// Fetcher performs the HTTP requests (required).
	Fetcher *fetch.Client
}

// Client fetches protein metadata records.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// New creates a metadata client from the given config.
func New(cfg Config) (*Client, error) {
	if cfg.Fetcher == nil {
		return nil, errors.New("uniprot client requires a fetcher")
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		fetcher: cfg.Fetcher,
	}, nil
}

// GetByAccession fetches one record by its accession.
func (c *Client) GetByAccession(ctx context.Context, acc types.Accession) (*types.ProteinMetadata, error) {
	endpoint := fmt.Sprintf("%s/uniprotkb/%s.json", c.baseURL, acc)
	body, err := c.fetcher.GetWithRetry(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("uniprot: fetch %s: %w", acc, err)
	}

	meta, err := parseEntry(body)
	if err != nil {
		return nil, fmt.Errorf("uniprot: entry %s: %w", acc, err)
	}
	return meta, nil
}

// Search fetches records matching a free-text query. Returns zero or
// more records; an empty result is not an error.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]types.ProteinMetadata, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("uniprot: empty search query")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	endpoint := fmt.Sprintf("%s/uniprotkb/search?query=%s&size=%d",
		c.baseURL, url.QueryEscape(query), limit)
	body, err := c.fetcher.GetWithRetry(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("uniprot: search %q: %w", query, err)
	}

	results, err := parseSearchResults(body)
	if err != nil {
		return nil, fmt.Errorf("uniprot: search %q: %w", query, err)
	}
	return results, nil
}
