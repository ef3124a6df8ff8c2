// Package loader orchestrates one protein selection end to end:
// concurrent metadata and structure fetches, payload validation,
// confidence extraction, and statistics.
//
// Stale-guard rule: each load session carries a token; the session's
// result is committed as the loader's current result only if the token
// still matches the loader's active session. A late-arriving response
// for an abandoned selection is discarded, never applied over the
// selection now being displayed. In-flight work for an abandoned
// selection is not cancelled.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/afdb"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/cache"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/log"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/structure"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/uniprot"
)

// Result is the outcome of one load session. On success State is
// StateReady and the residue table, statistics, and color function are
// populated; on failure State is StateFailed and Err carries the
// classified error. The residue table is owned by its session and
// replaced wholesale by the next one.
type Result struct {
	Token      string
	Accession  types.Accession
	State      types.LoadState
	Metadata   *types.ProteinMetadata
	Payload    []byte
	Residues   []types.ResidueConfidence
	Statistics types.ConfidenceStatistics
	ColorFunc  structure.ColorFunc
	Err        error
}

// Config configures a Loader.
type Config struct {
	// Metadata is the metadata API client (required).
	Metadata *uniprot.Client
	// Structures is the structure repository client (required).
	Structures *afdb.Client
	// Cache is consulted before and filled after fetches; nil disables
	// caching.
	Cache *cache.Cache
	// Logger defaults to a no-op logger.
	Logger *log.Logger
}

// Loader runs load sessions. Safe for concurrent use; only the most
// recently started session may commit its result.
type Loader struct {
	metadata   *uniprot.Client
	structures *afdb.Client
	cache      *cache.Cache
	logger     *log.Logger

	mu      sync.Mutex
	session string
	latest  *Result
}

// New creates a loader from the given config.
func New(cfg Config) (*Loader, error) {
	if cfg.Metadata == nil {
		return nil, errors.New("loader requires a metadata client")
	}
	if cfg.Structures == nil {
		return nil, errors.New("loader requires a structure client")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	return &Loader{
		metadata:   cfg.Metadata,
		structures: cfg.Structures,
		cache:      cfg.Cache,
		logger:     cfg.Logger,
	}, nil
}

// Load runs one load session for an accession and returns its result.
// The metadata and structure fetches are independent and issued
// concurrently; the session waits for both. The returned result always
// reflects this session even when it was superseded; Current() reflects
// only committed sessions.
func (l *Loader) Load(ctx context.Context, acc types.Accession) *Result {
	token := uuid.NewString()
	l.mu.Lock()
	l.session = token
	l.mu.Unlock()

	logger := l.logger.WithSelection(string(acc), token)
	logger.Info("load session started", nil)

	res := &Result{Token: token, Accession: acc, State: types.StateFetching}

	var (
		wg         sync.WaitGroup
		meta       *types.ProteinMetadata
		metaErr    error
		payload    []byte
		payloadErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		meta, metaErr = l.fetchMetadata(ctx, acc)
	}()
	go func() {
		defer wg.Done()
		payload, payloadErr = l.fetchStructure(ctx, acc)
	}()
	wg.Wait()

	if payloadErr != nil {
		return l.fail(res, logger, payloadErr)
	}
	if metaErr != nil {
		return l.fail(res, logger, metaErr)
	}
	res.Metadata = meta

	res.State = types.StateValidating
	if err := structure.Validate(payload); err != nil {
		// A malformed payload is a data problem, not a transient
		// fault; it is never retried.
		return l.fail(res, logger, err)
	}

	res.State = types.StateParsing
	res.Payload = payload
	res.Residues = structure.ExtractResidueConfidence(payload)
	res.Statistics = structure.ComputeStatistics(res.Residues)
	res.ColorFunc = structure.BuildColorFunc(res.Residues)

	res.State = types.StateReady
	if l.commit(res) {
		logger.Info("load session ready", map[string]any{
			"residues":           res.Statistics.Total,
			"average_confidence": res.Statistics.AverageConfidence,
		})
	} else {
		logger.Debug("load session superseded, result discarded", nil)
	}
	return res
}

// Current returns the committed result of the most recent session, or
// nil if no session has committed.
func (l *Loader) Current() *Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.latest
}

// commit applies a session result if its token is still current.
func (l *Loader) commit(res *Result) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.session != res.Token {
		return false
	}
	l.latest = res
	return true
}

func (l *Loader) fail(res *Result, logger *log.Logger, err error) *Result {
	res.State = types.StateFailed
	res.Err = err
	if l.commit(res) {
		logger.Warn("load session failed", map[string]any{"error": err.Error()})
	} else {
		logger.Debug("load session superseded, failure discarded", nil)
	}
	return res
}

func (l *Loader) fetchMetadata(ctx context.Context, acc types.Accession) (*types.ProteinMetadata, error) {
	if meta, ok := l.cache.GetMetadata(ctx, acc); ok {
		return meta, nil
	}

	meta, err := l.metadata.GetByAccession(ctx, acc)
	if err != nil {
		return nil, err
	}
	if err := l.cache.SetMetadata(ctx, meta); err != nil {
		// Cache fills are best-effort.
		l.logger.Warn("metadata cache fill failed", map[string]any{"error": err.Error()})
	}
	return meta, nil
}

func (l *Loader) fetchStructure(ctx context.Context, acc types.Accession) ([]byte, error) {
	if payload, ok := l.cache.GetPayload(ctx, acc); ok {
		return payload, nil
	}

	payload, err := l.structures.GetStructure(ctx, acc)
	if err != nil {
		return nil, err
	}
	if err := l.cache.SetPayload(ctx, acc, payload); err != nil {
		l.logger.Warn("payload cache fill failed", map[string]any{"error": err.Error()})
	}
	return payload, nil
}

// Describe renders a one-line summary of a result state for logs and
// CLI output.
func Describe(res *Result) string {
	if res == nil {
		return "no load session"
	}
	switch res.State {
	case types.StateReady:
		return fmt.Sprintf("%s: %d residues, mean confidence %.1f",
			res.Accession, res.Statistics.Total, res.Statistics.AverageConfidence)
	case types.StateFailed:
		return fmt.Sprintf("%s: failed: %v", res.Accession, res.Err)
	default:
		return fmt.Sprintf("%s: %s", res.Accession, res.State)
	}
}
