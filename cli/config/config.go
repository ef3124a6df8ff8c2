package config

import (
	"fmt"
	"time"
)

// Config represents a pviz.yaml configuration file.
// All values are optional and act as defaults for pviz command flags.
// CLI flags always override config values.
type Config struct {
	Metadata  MetadataConfig  `yaml:"metadata"`
	Structure StructureConfig `yaml:"structure"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Cache     CacheConfig     `yaml:"cache"`
	Output    OutputConfig    `yaml:"output"`
}

// MetadataConfig holds protein metadata API defaults from the config file.
type MetadataConfig struct {
	BaseURL     string `yaml:"base_url"`
	SearchLimit int    `yaml:"search_limit"`
}

// StructureConfig holds predicted structure API defaults from the config file.
type StructureConfig struct {
	BaseURL string `yaml:"base_url"`
}

// FetchConfig holds HTTP fetch defaults from the config file.
type FetchConfig struct {
	Timeout     Duration `yaml:"timeout,omitempty"`
	MaxAttempts int      `yaml:"max_attempts"`
	BaseDelay   Duration `yaml:"base_delay,omitempty"`
	UserAgent   string   `yaml:"user_agent"`
}

// CacheConfig holds response cache defaults from the config file.
// An empty URL disables caching.
type CacheConfig struct {
	URL string   `yaml:"url"`
	TTL Duration `yaml:"ttl,omitempty"`
}

// OutputConfig holds output rendering defaults from the config file.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Duration wraps time.Duration for YAML string parsing (e.g. "10s", "5m").
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses a duration string like "10s" or "5m30s".
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}
