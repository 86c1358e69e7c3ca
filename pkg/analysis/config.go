package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-bibliometrics/pkg/validation"
)

// Upper bound on the eigenvector power-iteration budget.
const maxEigenvectorIter = 10000

// Config holds the knobs for one analysis run. The zero value is not
// usable; start from DefaultConfig or LoadConfig.
type Config struct {
	// MinCollaborations is the minimum edge weight for the co-authorship
	// graph.
	MinCollaborations int `yaml:"min_collaborations"`
	// MinCooccurrence is the minimum edge weight for the keyword graph.
	MinCooccurrence int `yaml:"min_cooccurrence"`
	// MinCommunitySize filters community listings; smaller communities
	// stay in the partition but are omitted from reports.
	MinCommunitySize int `yaml:"min_community_size"`
	// CentralityScaleCutoff is the largest-component size above which
	// path-based centralities are skipped.
	CentralityScaleCutoff int `yaml:"centrality_scale_cutoff"`
	// EigenvectorMaxIter bounds the eigenvector power iteration.
	EigenvectorMaxIter int `yaml:"eigenvector_max_iter"`
	// TopN is the length of ranking lists in reports.
	TopN int `yaml:"top_n"`
	// DisableLouvain forces the connected-components fallback strategy.
	DisableLouvain bool `yaml:"disable_louvain"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MinCollaborations:     1,
		MinCooccurrence:       2,
		MinCommunitySize:      3,
		CentralityScaleCutoff: 1000,
		EigenvectorMaxIter:    100,
		TopN:                  10,
	}
}

// LoadConfig reads a YAML config file. Unset fields take their defaults;
// the result is validated before being returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	c.MinCollaborations = validation.DefaultOrInt(c.MinCollaborations, defaults.MinCollaborations)
	c.MinCooccurrence = validation.DefaultOrInt(c.MinCooccurrence, defaults.MinCooccurrence)
	c.MinCommunitySize = validation.DefaultOrInt(c.MinCommunitySize, defaults.MinCommunitySize)
	c.CentralityScaleCutoff = validation.DefaultOrInt(c.CentralityScaleCutoff, defaults.CentralityScaleCutoff)
	c.EigenvectorMaxIter = validation.DefaultOrInt(c.EigenvectorMaxIter, defaults.EigenvectorMaxIter)
	c.TopN = validation.DefaultOrInt(c.TopN, defaults.TopN)
}

// Validate rejects out-of-range configuration before any analysis runs.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("AnalysisConfig").
		MinInt("min_collaborations", c.MinCollaborations, 1).
		MinInt("min_cooccurrence", c.MinCooccurrence, 1).
		Positive("min_community_size", c.MinCommunitySize).
		Positive("centrality_scale_cutoff", c.CentralityScaleCutoff).
		RangeInt("eigenvector_max_iter", c.EigenvectorMaxIter, 1, maxEigenvectorIter).
		Custom("top_n", func() error {
			return validation.ValidateTopN(c.TopN)
		}).
		Validate()
}
