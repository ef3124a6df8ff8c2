package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/afdb"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/cache"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/cli/config"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/cli/render"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/fetch"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/loader"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/log"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/uniprot"
)

// deps holds the wired API clients for one command invocation.
// The CLI is one-shot; clients are built per invocation and closed when
// the command returns.
type deps struct {
	cfg        *config.Config
	logger     *log.Logger
	fetcher    *fetch.Client
	metadata   *uniprot.Client
	structures *afdb.Client
	cache      *cache.Cache
	loader     *loader.Loader
}

// buildDeps merges the config file (if any) with flag overrides and
// constructs the client stack. Flags always win over config values.
func buildDeps(c *cli.Context) (*deps, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger := log.NewNop()
	if c.Bool("verbose") {
		logger = log.NewLogger()
	}

	fetchCfg := fetch.Config{
		Timeout:     cfg.Fetch.Timeout.Duration,
		MaxAttempts: cfg.Fetch.MaxAttempts,
		BaseDelay:   cfg.Fetch.BaseDelay.Duration,
		UserAgent:   cfg.Fetch.UserAgent,
		Logger:      logger,
	}
	if v := c.Duration("timeout"); v > 0 {
		fetchCfg.Timeout = v
	}
	if v := c.Int("max-attempts"); v > 0 {
		fetchCfg.MaxAttempts = v
	}
	if v := c.Duration("base-delay"); v > 0 {
		fetchCfg.BaseDelay = v
	}

	fetcher, err := fetch.New(fetchCfg)
	if err != nil {
		return nil, err
	}

	metadataURL := cfg.Metadata.BaseURL
	if v := c.String("metadata-url"); v != "" {
		metadataURL = v
	}
	metadata, err := uniprot.New(uniprot.Config{BaseURL: metadataURL, Fetcher: fetcher})
	if err != nil {
		fetcher.Close()
		return nil, err
	}

	structureURL := cfg.Structure.BaseURL
	if v := c.String("structure-url"); v != "" {
		structureURL = v
	}
	structures, err := afdb.New(afdb.Config{BaseURL: structureURL, Fetcher: fetcher})
	if err != nil {
		fetcher.Close()
		return nil, err
	}

	cacheURL := cfg.Cache.URL
	if v := c.String("cache-url"); v != "" {
		cacheURL = v
	}
	var responseCache *cache.Cache
	if cacheURL != "" {
		responseCache, err = cache.New(cache.Config{URL: cacheURL, TTL: cfg.Cache.TTL.Duration})
		if err != nil {
			fetcher.Close()
			return nil, err
		}
	}

	sessionLoader, err := loader.New(loader.Config{
		Metadata:   metadata,
		Structures: structures,
		Cache:      responseCache,
		Logger:     logger,
	})
	if err != nil {
		fetcher.Close()
		responseCache.Close()
		return nil, err
	}

	return &deps{
		cfg:        cfg,
		logger:     logger,
		fetcher:    fetcher,
		metadata:   metadata,
		structures: structures,
		cache:      responseCache,
		loader:     sessionLoader,
	}, nil
}

// Close releases the client stack.
func (d *deps) Close() {
	d.fetcher.Close()
	d.cache.Close()
}

// renderer builds the output renderer; the config file's output format
// serves as the default when the --format flag is absent.
func (d *deps) renderer(c *cli.Context) (*render.Renderer, error) {
	return render.NewRenderer(c, render.Format(d.cfg.Output.Format))
}

// searchLimit resolves the result cap: the --limit flag wins, then the
// config file, then the metadata client's own default.
func (d *deps) searchLimit(c *cli.Context) int {
	if v := c.Int("limit"); v > 0 {
		return v
	}
	return d.cfg.Metadata.SearchLimit
}

// failureExit converts a fetch-stack error into a user-facing exit
// error: guidance text plus the failure kind label. A missing predicted
// structure keeps its own message instead of the generic not-found
// guidance.
func failureExit(err error) error {
	if errors.Is(err, afdb.ErrNoStructure) {
		return cli.Exit(fmt.Sprintf("No predicted structure is available for this identifier. (%s)", fetch.Kind(err)), 1)
	}
	var reqErr *fetch.RequestError
	if errors.As(err, &reqErr) {
		return cli.Exit(fmt.Sprintf("%s (%s)", reqErr.Guidance(), fetch.Kind(err)), 1)
	}
	return cli.Exit(err.Error(), 1)
}
