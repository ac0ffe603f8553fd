package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Henry(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, LayoutHenry, cfg.Grid.Layout)
	assert.Equal(t, 10, cfg.Grid.Width)
	assert.Equal(t, 10, cfg.Chain.Districts)
	assert.InDelta(t, 0.05, cfg.Chain.Epsilon, 0)
	assert.InDelta(t, 0.1, cfg.Chain.ValidatorEpsilon, 0)
	assert.Equal(t, 1, cfg.Chain.NodeRepeats)
	assert.Equal(t, 10000, cfg.Chain.TotalSteps)
	assert.Equal(t, "kruskal", cfg.Chain.TreeMethod)
	assert.Equal(t, "cut_edges", cfg.Chain.CutEdges)
	assert.Equal(t, RuleAlways, cfg.Acceptance.Rule)
	assert.Equal(t, "Pink", cfg.Grid.Minority)
	assert.Equal(t, "Purple", cfg.Grid.Majority)
	assert.Equal(t, 1, cfg.Ensemble.Chains)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(`
grid:
  layout: columns
  width: 8
  height: 6
  queen: true
chain:
  districts: 4
  epsilon: 0.2
  validator_epsilon: 0
  total_steps: 0
  tree_method: prim
  cut_edges: rook_cut_edges
acceptance:
  rule: metropolis
  temperature: 2.5
ensemble:
  chains: 3
  seed: 9
`))
	require.NoError(t, err)
	assert.True(t, cfg.Grid.Queen)
	assert.Equal(t, 3, cfg.Grid.MinorityColumns)
	assert.InDelta(t, 0.2, cfg.Chain.ValidatorEpsilon, 0, "zero validator epsilon follows epsilon")
	assert.Equal(t, 0, cfg.Chain.TotalSteps, "an explicit zero is kept")
	assert.Equal(t, "prim", cfg.Chain.TreeMethod)
	assert.InDelta(t, 2.5, cfg.Acceptance.Temperature, 0)
	assert.Equal(t, int64(9), cfg.Ensemble.Seed)
}

func TestParse_CustomRows(t *testing.T) {
	cfg, err := Parse([]byte(`
grid:
  rows:
    - [0, 1, 1]
    - [0, 0, 1]
chain:
  districts: 3
`))
	require.NoError(t, err)
	assert.Equal(t, LayoutCustom, cfg.Grid.Layout)
	assert.Equal(t, 3, cfg.Grid.Width)
	assert.Equal(t, 2, cfg.Grid.Height)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]string{
		"henry size":      "grid: {width: 8}",
		"bad layout":      "grid: {layout: spiral}",
		"ragged rows":     "grid: {rows: [[0, 1], [1]]}",
		"bad cell":        "grid: {rows: [[0, 2]]}\nchain: {districts: 1}",
		"same parties":    "grid: {minority: A, majority: A}",
		"too many":        "chain: {districts: 11}",
		"epsilon":         "chain: {epsilon: 1.5}",
		"node repeats":    "chain: {node_repeats: -1}",
		"negative steps":  "chain: {total_steps: -5}",
		"proposal":        "chain: {proposal: swap}",
		"tree method":     "chain: {tree_method: boruvka}",
		"cut edges":       "chain: {cut_edges: queen_cut_edges}",
		"rule":            "acceptance: {rule: sometimes}",
		"temperature":     "acceptance: {rule: metropolis, temperature: -1}",
		"log format":      "log: {format: xml}",
		"initial plan":    "grid: {initial_plan: spiral}",
		"minority column": "grid: {layout: columns, minority_columns: 11}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("grid: ["))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain: {total_steps: 50}\n"), 0o600))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Chain.TotalSteps)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
