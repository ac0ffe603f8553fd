package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/recom/ensemble"
	"github.com/katalvlaran/recom/internal/telemetry"
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/types"
)

func runEnsemble(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if logger, err = newLogger(cfg); err != nil {
		return err
	}

	exp, err := buildExperiment(cfg)
	if err != nil {
		return err
	}
	logger.Info("experiment ready",
		"vertices", exp.graph.VertexCount(),
		"edges", exp.graph.EdgeCount(),
		"districts", exp.initial.K(),
		"chains", cfg.Ensemble.Chains,
		"total_steps", cfg.Chain.TotalSteps,
		"proposal", cfg.Chain.Proposal,
	)

	var collector types.MetricsCollector
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		collector = telemetry.NewPrometheus(reg, "recom")
		stop := serveMetrics(cmd.Context(), reg, cfg.Metrics.Address)
		defer stop()
	}

	start := time.Now()
	summary, err := ensemble.RunIndependent(cmd.Context(), exp.ensembleConfig(logger), exp.factory(logger, collector), nil)
	if err != nil {
		return err
	}
	logger.Info("ensemble complete", "elapsed", time.Since(start).String())

	return writeReport(cmd.OutOrStdout(), exp, summary)
}

// serveMetrics exposes reg on addr until the returned func is called.
func serveMetrics(ctx context.Context, reg *prometheus.Registry, addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

// writeReport prints the ensemble summary and chain 0's final plan.
func writeReport(w io.Writer, exp *experiment, s *ensemble.Summary) error {
	var sb strings.Builder
	minority := exp.cfg.Grid.Minority

	fmt.Fprintf(&sb, "Chains: %d  Observations: %d  Distinct plans: %d\n",
		s.Chains, s.Observations, s.DistinctPlans)

	outcomes := make([]string, 0, len(s.Outcomes))
	for name := range s.Outcomes {
		outcomes = append(outcomes, name)
	}
	sort.Strings(outcomes)
	sb.WriteString("Outcomes:")
	for _, name := range outcomes {
		fmt.Fprintf(&sb, " %s=%d", name, s.Outcomes[name])
	}
	sb.WriteByte('\n')

	parties := make([]string, 0, len(s.ExpectedSeats))
	for party := range s.ExpectedSeats {
		parties = append(parties, party)
	}
	sort.Strings(parties)
	sb.WriteString("\nExpected seats:\n")
	for _, party := range parties {
		fmt.Fprintf(&sb, "  %-10s %.4f\n", party, s.ExpectedSeats[party])
	}

	fmt.Fprintf(&sb, "\n%s seat histogram:\n", minority)
	for _, b := range s.SeatHistogram[minority] {
		share := 0.0
		if s.Observations > 0 {
			share = float64(b.Count) / float64(s.Observations)
		}
		fmt.Fprintf(&sb, "  %5.1f  %8d  %6.2f%%  %s\n",
			b.Seats, b.Count, 100*share, strings.Repeat("#", int(share*50+0.5)))
	}

	fmt.Fprintf(&sb, "\nMean mean-median (%s):     %+.6f\n", minority, s.MeanMeanMedian)
	fmt.Fprintf(&sb, "Mean efficiency gap (%s):  %+.6f\n", minority, s.MeanEfficiencyGap)
	fmt.Fprintf(&sb, "Mean %s:            %.2f\n", exp.cfg.Chain.CutEdges, s.MeanCutEdges)

	if len(s.Final) > 0 && s.Final[0] != nil {
		plan, err := exp.grid.Render(districtInts(s.Final[0]))
		if err != nil {
			return err
		}
		sb.WriteString("\nFinal plan (chain 0):\n")
		sb.WriteString(plan)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func districtInts(a []partition.DistrictID) []int {
	out := make([]int, len(a))
	for i, d := range a {
		out[i] = int(d)
	}

	return out
}
