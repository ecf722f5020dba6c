package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"adwords-sim/internal/model"
	"adwords-sim/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML) of one simulation run.
type Config struct {
	// Optional: load advertisers, queries and timeline from a separate YAML
	// (e.g. examples/universes/*.yaml). Sections set in this file override
	// the ones loaded from UniverseFile.
	UniverseFile string             `yaml:"universe_file,omitempty"`
	Strategy     StrategyConfig     `yaml:"strategy"`
	Advertisers  []AdvertiserConfig `yaml:"advertisers"`
	Queries      []QueryConfig      `yaml:"queries"`
	Timeline     []string           `yaml:"timeline"`
}

type StrategyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params,omitempty"`
}

type AdvertiserConfig struct {
	ID     string  `yaml:"id"`
	Budget float64 `yaml:"budget"`
}

// QueryConfig lists the bidding advertisers and their bids. Bids must be
// indexed the same as Advertisers.
type QueryConfig struct {
	Label       string    `yaml:"label"`
	Advertisers []string  `yaml:"advertisers"`
	Bids        []float64 `yaml:"bids"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.UniverseFile != "" {
		universePath := c.UniverseFile
		if !filepath.IsAbs(universePath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), universePath)
			if _, err := os.Stat(cand); err == nil {
				universePath = cand
			}
		}
		base, err := LoadUnchecked(universePath)
		if err != nil {
			return nil, fmt.Errorf("universe_file: %w", err)
		}
		c = MergeUniverse(*base, c)
	}
	return &c, nil
}

// Validate checks the strategy selector and builds the universe once so
// that alignment and reference errors surface at setup.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Strategy.Name == "" {
		return errors.New("strategy.name is required")
	}
	if _, err := c.NewStrategy(); err != nil {
		return err
	}
	return c.ValidateUniverse()
}

// ValidateUniverse is Validate without the strategy check, for callers that
// pick strategies themselves.
func (c *Config) ValidateUniverse() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Advertisers) == 0 {
		return errors.New("at least one advertiser is required")
	}
	if len(c.Timeline) == 0 {
		return errors.New("timeline is empty")
	}
	u, err := c.Build()
	if err != nil {
		return err
	}
	return u.ValidateTimeline(c.Timeline)
}

// Build returns a fresh universe. Each call yields independent advertisers
// and queries, so runs built from the same config never share state.
func (c *Config) Build() (*model.Universe, error) {
	advertisers := make([]*model.Advertiser, 0, len(c.Advertisers))
	byID := make(map[string]*model.Advertiser, len(c.Advertisers))
	for _, ac := range c.Advertisers {
		a, err := model.NewAdvertiser(ac.ID, ac.Budget)
		if err != nil {
			return nil, err
		}
		advertisers = append(advertisers, a)
		if _, dup := byID[a.ID]; !dup {
			byID[a.ID] = a
		}
	}

	queries := make([]*model.Query, 0, len(c.Queries))
	for _, qc := range c.Queries {
		cands := make([]*model.Advertiser, 0, len(qc.Advertisers))
		for _, id := range qc.Advertisers {
			a, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("query %s: %w: %s", qc.Label, model.ErrUnknownAdvertiser, id)
			}
			cands = append(cands, a)
		}
		q, err := model.NewQuery(qc.Label, cands, qc.Bids)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	return model.NewUniverse(advertisers, queries)
}

// NewStrategy builds the configured strategy.
func (c *Config) NewStrategy() (strategy.Strategy, error) {
	return strategy.New(c.Strategy.Name, c.Strategy.Params)
}

// MergeUniverse overlays the non-empty sections of override onto base.
// Strategy params are merged key by key.
func MergeUniverse(base, override Config) Config {
	out := base
	out.UniverseFile = ""
	if override.Strategy.Name != "" {
		out.Strategy.Name = override.Strategy.Name
	}
	if len(override.Strategy.Params) > 0 {
		params := make(map[string]any, len(base.Strategy.Params)+len(override.Strategy.Params))
		maps.Copy(params, base.Strategy.Params)
		maps.Copy(params, override.Strategy.Params)
		out.Strategy.Params = params
	}
	if len(override.Advertisers) > 0 {
		out.Advertisers = override.Advertisers
	}
	if len(override.Queries) > 0 {
		out.Queries = override.Queries
	}
	if len(override.Timeline) > 0 {
		out.Timeline = override.Timeline
	}
	return out
}
