package gstile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of Config (spec §6's configuration
// table), loadable with gopkg.in/yaml.v3 the way fulmenhq/gofulmen and
// pocket-omega load their own YAML config files. A config file is never
// required; LoadConfig is a convenience for callers such as a queue
// worker. The bundled CLI does not read a config file and always uses
// DefaultConfig.
type fileConfig struct {
	MinimumMatchLength  int      `yaml:"minimum_match_length"`
	MinimumSimilarity   *float64 `yaml:"minimum_similarity"`
	SimilarityPrecision *int     `yaml:"similarity_precision"`
}

// LoadConfig reads a Config from a YAML file at path. Missing fields
// fall back to DefaultConfig's values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gstile: reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("gstile: parsing config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if fc.MinimumMatchLength > 0 {
		cfg.MinimumMatchLength = fc.MinimumMatchLength
	}
	if fc.MinimumSimilarity != nil {
		cfg.MinimumSimilarity = *fc.MinimumSimilarity
	}
	if fc.SimilarityPrecision != nil {
		if *fc.SimilarityPrecision < 0 {
			return Config{}, fmt.Errorf("%w: similarity_precision must be >= 0, got %d", ErrInvalidArgument, *fc.SimilarityPrecision)
		}
		cfg.SimilarityPrecision = fc.SimilarityPrecision
	}

	return cfg.normalized(), nil
}
