// Package config loads the YAML run configuration of the recom command.
//
// Loading is three steps: unmarshal, applyDefaults, validate. Defaults
// reproduce the 10×10 "Henry" minority-representation experiment: ten
// districts, ReCom with ε=0.05 and one tree per proposal, a 10% population
// validator, always-accept, 10000 steps.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Chain      ChainConfig      `yaml:"chain"`
	Acceptance AcceptanceConfig `yaml:"acceptance"`
	Ensemble   EnsembleConfig   `yaml:"ensemble"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Log        LogConfig        `yaml:"log"`
}

// GridConfig describes the lattice and its voters.
type GridConfig struct {
	Width  int  `yaml:"width"`  // e.g., 10
	Height int  `yaml:"height"` // e.g., 10
	Queen  bool `yaml:"queen"`  // add diagonal adjacency
	// Layout is "henry", "columns" or "custom".
	Layout string `yaml:"layout"`
	// MinorityColumns is the number of minority columns of the "columns" layout.
	MinorityColumns int `yaml:"minority_columns"`
	// Rows holds a custom layout, top row first, 0 = minority, 1 = majority.
	Rows [][]int `yaml:"rows"`
	// Minority and Majority name the two parties.
	Minority string `yaml:"minority"` // "Pink"
	Majority string `yaml:"majority"` // "Purple"
	// InitialPlan is "columns" or "rows" (stripes).
	InitialPlan string `yaml:"initial_plan"`
}

// ChainConfig configures the chain and its proposal.
type ChainConfig struct {
	Districts        int     `yaml:"districts"`
	Epsilon          float64 `yaml:"epsilon"`           // proposal balance tolerance
	ValidatorEpsilon float64 `yaml:"validator_epsilon"` // 0 means Epsilon
	NodeRepeats      int     `yaml:"node_repeats"`
	TotalSteps       int     `yaml:"total_steps"`
	Proposal         string  `yaml:"proposal"`    // "recom", "random_flip"
	TreeMethod       string  `yaml:"tree_method"` // "kruskal", "prim"
	CutEdges         string  `yaml:"cut_edges"`   // "cut_edges", "rook_cut_edges"
	Retention        int     `yaml:"retention"`   // accepted partitions kept per chain
	CheckInvariants  bool    `yaml:"check_invariants"`
}

// AcceptanceConfig selects the acceptance rule.
type AcceptanceConfig struct {
	Rule        string  `yaml:"rule"` // "always", "metropolis"
	Temperature float64 `yaml:"temperature"`
}

// EnsembleConfig configures independent chains.
type EnsembleConfig struct {
	Chains      int   `yaml:"chains"`
	Seed        int64 `yaml:"seed"`
	Parallelism int   `yaml:"parallelism"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"` // ":9090"
}

// LogConfig configures logging.
type LogConfig struct {
	Format  string `yaml:"format"` // "console", "json"
	Verbose bool   `yaml:"verbose"`
}

// base holds the defaults whose zero value is meaningful. YAML decodes on
// top of it, so an explicit total_steps: 0 survives.
func base() Config {
	return Config{
		Chain: ChainConfig{
			Epsilon:          DefaultEpsilon,
			ValidatorEpsilon: DefaultValidatorEpsilon,
			TotalSteps:       DefaultTotalSteps,
		},
	}
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := base()
	applyDefaults(&cfg)

	return &cfg
}

// LoadConfig loads configuration from a YAML file.
//
// Returns:
//   - *Config: loaded configuration with defaults applied
//   - error: the file cannot be read or parsed, or the result is invalid
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
