package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if ST21_CONFIG is set
//  3. env (prefix ST21_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ST21_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: ST21_SEED, ST21_HISTOGRAM_BINS, ...
	// Map env keys like ST21_HISTOGRAM_BINS -> histogram_bins (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ST21_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "st21_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.HistogramBins <= 0 {
		return nil, fmt.Errorf("%w: histogram_bins must be positive", ErrInvalidConfig)
	}
	if cfg.BootstrapEnabled && len(cfg.BootstrapSample) < 2 {
		return nil, fmt.Errorf("%w: bootstrap_sample needs at least two values", ErrInvalidConfig)
	}
	return &cfg, nil
}
