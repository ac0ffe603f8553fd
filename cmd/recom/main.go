// Command recom runs ReCom districting ensembles on grid graphs and reports
// the distribution of partisan outcomes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/recom/config"
	"github.com/katalvlaran/recom/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Run flags
	flagSteps   int
	flagSeed    int64
	flagChains  int
	flagMetrics string
	flagQueen   bool

	logger *logging.ZapLogger
)

var rootCmd = &cobra.Command{
	Use:   "recom",
	Short: "ReCom Markov chain ensembles on grid graphs",
	Long: `recom samples districting plans of a grid with the recombination (ReCom)
Markov chain and reports seats, mean-median, efficiency gap and cut edges.

Without a config file it runs the 10x10 "Henry" minority-representation
experiment: ten column districts, epsilon 0.05, 10000 steps.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an ensemble and print its summary",
	Long: `Builds the configured grid, seeds one chain per --chains with a seed derived
from --seed, runs them in parallel and prints:
  1. Expected seats per party (ties split evenly among tied leaders)
  2. Seat histogram of the minority party
  3. Mean mean-median, efficiency gap and cut-edge count
  4. The final plan of chain 0`,
	RunE: runEnsemble,
}

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)

		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML run configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	for _, cmd := range []*cobra.Command{runCmd, showConfigCmd} {
		cmd.Flags().IntVar(&flagSteps, "steps", 0, "chain length after the initial plan (overrides config)")
		cmd.Flags().Int64Var(&flagSeed, "seed", 0, "base seed (overrides config)")
		cmd.Flags().IntVar(&flagChains, "chains", 0, "independent chains (overrides config)")
		cmd.Flags().StringVar(&flagMetrics, "metrics-addr", "", "serve Prometheus metrics on this address")
		cmd.Flags().BoolVar(&flagQueen, "queen", false, "add diagonal adjacency")
	}

	rootCmd.AddCommand(runCmd, showConfigCmd)
}

// loadConfig reads --config (or the defaults) and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Chain.TotalSteps = flagSteps
	}
	if flags.Changed("seed") {
		cfg.Ensemble.Seed = flagSeed
	}
	if flags.Changed("chains") {
		cfg.Ensemble.Chains = flagChains
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Address = flagMetrics
	}
	if flags.Changed("queen") {
		cfg.Grid.Queen = flagQueen
	}
	if verbose {
		cfg.Log.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) (*logging.ZapLogger, error) {
	if cfg.Log.Format == config.FormatJSON {
		return logging.NewProduction(cfg.Log.Verbose)
	}

	return logging.NewDevelopment(cfg.Log.Verbose)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
