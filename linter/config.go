package linter

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/tscheck/boundary"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the configuration file name looked up at a project root
const ConfigFile = "tscheck.yaml"

// Config controls a lint run across a project
type Config struct {
	// Rule holds the boundary rule options
	Rule boundary.Options `yaml:"rule"`
	// Include restricts linting to files matching any of these glob
	// patterns; empty means every TypeScript source
	Include []string `yaml:"include"`
	// Exclude drops files matching any of these glob patterns
	Exclude []string `yaml:"exclude"`
	// SkipTests drops .test.ts/.spec.ts files
	SkipTests bool `yaml:"skipTests"`
	// Concurrency bounds the number of files linted in parallel
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns a config with rule defaults and all sources included
func DefaultConfig() *Config {
	return &Config{
		Rule:        boundary.DefaultOptions(),
		SkipTests:   true,
		Concurrency: 4,
	}
}

// LoadConfig reads a YAML configuration file, applying defaults for any
// omitted setting
func LoadConfig(ctx context.Context, location string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", location, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", location, err)
	}
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConfig().Concurrency
	}
	return config, nil
}
