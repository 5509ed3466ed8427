// Package config loads viper-backed overrides for the ranking engine's
// weights and flags, generalized from agentx-backend's internal/config
// package. The engine itself never imports viper — search.Weights is a
// plain struct with a hardcoded DefaultWeights() — this package is
// strictly an ambient CLI-layer concern.
package config

import (
	"os"
	"path/filepath"

	"github.com/deepsearch-labs/deepsearch/internal/search"
	"github.com/deepsearch-labs/deepsearch/pkg/models"
	"github.com/spf13/viper"
)

// Config is the on-disk/env-var configuration surface for cmd/deepsearch.
type Config struct {
	StoreDir string       `mapstructure:"store_dir"`
	LogLevel string       `mapstructure:"log_level"`
	Flags    FlagsConfig  `mapstructure:"flags"`
	Weights  WeightsDelta `mapstructure:"weights"`
}

// FlagsConfig is the YAML/env-var shape of models.Flags.
type FlagsConfig struct {
	StrictMatching   bool `mapstructure:"strict_matching"`
	DiverseResults   bool `mapstructure:"diverse_results"`
	SemanticEnabled  bool `mapstructure:"semantic_enabled"`
	IncludeBookmarks bool `mapstructure:"include_bookmarks"`
}

// WeightsDelta overrides a subset of DefaultWeights' fields. Zero
// values mean "use the default" — this config layer only widens or
// narrows scorer emphasis, it never needs to express every field.
type WeightsDelta struct {
	MultiTokenMatch   *float64 `mapstructure:"multi_token_match"`
	Title             *float64 `mapstructure:"title"`
	Recency           *float64 `mapstructure:"recency"`
	CrossDimensional  *float64 `mapstructure:"cross_dimensional"`
	VisitCount        *float64 `mapstructure:"visit_count"`
	URL               *float64 `mapstructure:"url"`
	Meta              *float64 `mapstructure:"meta"`
	DomainFamiliarity *float64 `mapstructure:"domain_familiarity"`
	Embedding         *float64 `mapstructure:"embedding"`
}

// Load reads deepsearch.{yaml,json,toml} from the working directory,
// ./config, and $HOME/.deepsearch, falling back to defaults when no
// config file is present — mirroring agentx-backend's Load().
func Load() (*Config, error) {
	viper.SetConfigName("deepsearch")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".deepsearch"))
	}

	viper.SetEnvPrefix("DEEPSEARCH")
	viper.AutomaticEnv()

	viper.SetDefault("store_dir", defaultStoreDir())
	viper.SetDefault("log_level", "info")
	viper.SetDefault("flags.diverse_results", true)
	viper.SetDefault("flags.include_bookmarks", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".deepsearch-store"
	}
	return filepath.Join(home, ".deepsearch", "store")
}

func defaultConfig() *Config {
	return &Config{
		StoreDir: defaultStoreDir(),
		LogLevel: "info",
		Flags: FlagsConfig{
			DiverseResults:   true,
			IncludeBookmarks: true,
		},
	}
}

// BuildWeights builds a search.Weights starting from
// search.DefaultWeights() and applying any non-nil override in
// c.Weights.
func (c *Config) BuildWeights() search.Weights {
	w := search.DefaultWeights()
	d := c.Weights
	if d.MultiTokenMatch != nil {
		w.MultiTokenMatch = *d.MultiTokenMatch
	}
	if d.Title != nil {
		w.Title = *d.Title
	}
	if d.Recency != nil {
		w.Recency = *d.Recency
	}
	if d.CrossDimensional != nil {
		w.CrossDimensional = *d.CrossDimensional
	}
	if d.VisitCount != nil {
		w.VisitCount = *d.VisitCount
	}
	if d.URL != nil {
		w.URL = *d.URL
	}
	if d.Meta != nil {
		w.Meta = *d.Meta
	}
	if d.DomainFamiliarity != nil {
		w.DomainFamiliarity = *d.DomainFamiliarity
	}
	if d.Embedding != nil {
		w.Embedding = *d.Embedding
	}
	return w
}

// BuildFlags converts the config's flag block into models.Flags.
func (c *Config) BuildFlags() models.Flags {
	return models.Flags{
		StrictMatching:   c.Flags.StrictMatching,
		DiverseResults:   c.Flags.DiverseResults,
		SemanticEnabled:  c.Flags.SemanticEnabled,
		IncludeBookmarks: c.Flags.IncludeBookmarks,
	}
}
