// Package afdb implements the structure repository client.
//
// The repository serves predicted-structure PDB files by accession. A
// 404 from this repository is an expected, common outcome: it means no
// predicted structure exists for the accession, which is distinct from
// a mistyped identifier. That case is surfaced with its own sentinel
// and message while keeping the not_found classification.
package afdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/fetch"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// DefaultBaseURL is the production structure repository endpoint.
const DefaultBaseURL = "https://alphafold.ebi.ac.uk"

// structureFilePattern is the repository's file naming scheme for the
// current model version.
const structureFilePattern = "AF-%s-F1-model_v4.pdb"

// ErrNoStructure indicates the repository has no predicted structure
// for the accession. Non-retryable; distinct from a generic not-found.
var ErrNoStructure = errors.New("no predicted structure is available for this identifier")

// Config configures the structure repository client.
type Config struct {
	// BaseURL overrides the repository endpoint (default DefaultBaseURL).
	BaseURL string
	// Fetcher performs the HTTP requests (required).
	Fetcher *fetch.Client
}

// Client fetches predicted-structure payloads.
type Client struct {
	baseURL string
	fetcher *fetch.Client
}

// New creates a structure repository client from the given config.
func New(cfg Config) (*Client, error) {
	if cfg.Fetcher == nil {
		return nil, errors.New("afdb client requires a fetcher")
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

// GetStructure fetches the predicted-structure payload for an
// accession. A repository 404 returns an error matching both
// ErrNoStructure and fetch.ErrNotFound, and is never retried.
func (c *Client) GetStructure(ctx context.Context, acc types.Accession) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/files/"+structureFilePattern, c.baseURL, acc)

	body, err := c.fetcher.GetWithRetry(ctx, endpoint)
	if err != nil {
		if errors.Is(err, fetch.ErrNotFound) {
			attempts := 1
			var reqErr *fetch.RequestError
			if errors.As(err, &reqErr) {
				attempts = reqErr.Attempts
			}
			return nil, &fetch.RequestError{
				Kind:     fetch.ErrNotFound,
				URL:      endpoint,
				Status:   404,
				Attempts: attempts,
				Err:      ErrNoStructure,
			}
		}
		return nil, fmt.Errorf("afdb: fetch structure %s: %w", acc, err)
	}

	return body, nil
}
