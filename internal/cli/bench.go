/*
PURPOSE:
  Defines the 'bench' command group: the regression gate and result recording.

REQUIREMENTS:
  User-specified:
  - --baseline and --threshold override the defaults.
  - Exit non-zero when regressions are detected, after the full report.

  Implementation-discovered:
  - Go benchmarks are recorded from `go test -bench` output so the gate works
    without a JavaScript toolchain.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.CompareBenchmarks, internal/engine.RecordBenchmarks
  - Uses: cfg loaded by root.go

USAGE:
  libkit bench compare --threshold 5
  go test -bench . ./... | libkit bench record
*/

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/libkit/internal/engine"
)

var (
	baselineOverride  string
	currentOverride   string
	thresholdOverride float64
	compareOpts       engine.CompareOptions
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark regression tooling",
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the current benchmark run against the baseline",
	Long: `Compares benchmarks/results.json with the baseline and reports regressions,
improvements and stable benchmarks.

A benchmark regresses when its throughput (ops/sec) drops by more than the threshold
percentage. When no baseline exists yet, the current results become the baseline and
the command succeeds.

The baseline may be a path relative to the project root or an s3://bucket/key URL.`,
	Example: `  # Compare with defaults (benchmarks/baseline.json, ±10%)
  libkit bench compare

  # Tighter threshold and a different baseline
  libkit bench compare --baseline benchmarks/main.json --threshold 5

  # Shared baseline in a bucket, with CI artifacts
  libkit bench compare --baseline s3://perf-baselines/libkit.json --csv out/bench.csv --metrics-file out/bench.prom`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("baseline") {
			cfg.Bench.Baseline = baselineOverride
		}
		if cmd.Flags().Changed("current") {
			cfg.Bench.Current = currentOverride
		}
		if cmd.Flags().Changed("threshold") {
			cfg.Bench.Threshold = thresholdOverride
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return engine.CompareBenchmarks(cmd.Context(), cfg, cmd.OutOrStdout(), compareOpts)
	},
}

var recordCmd = &cobra.Command{
	Use:   "record [file|-]",
	Short: "Record `go test -bench` output as the current benchmark results",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("current") {
			cfg.Bench.Current = currentOverride
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open benchmark output: %w", err)
			}
			defer f.Close()
			in = f
		}

		n, err := engine.RecordBenchmarks(cfg, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded %d benchmarks to %s\n", n, cfg.Bench.Current)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.AddCommand(compareCmd, recordCmd)

	benchCmd.PersistentFlags().StringVar(&currentOverride, "current", "", "current results file (default benchmarks/results.json)")

	compareCmd.Flags().StringVar(&baselineOverride, "baseline", "", "baseline file or s3:// URL (default benchmarks/baseline.json)")
	compareCmd.Flags().Float64Var(&thresholdOverride, "threshold", 10, "regression threshold in percent")
	compareCmd.Flags().StringVar(&compareOpts.CSVPath, "csv", "", "also write comparisons to this CSV file")
	compareCmd.Flags().StringVar(&compareOpts.JSONPath, "json", "", "also write the report to this JSON file")
	compareCmd.Flags().StringVar(&compareOpts.MetricsPath, "metrics-file", "", "also write a Prometheus textfile")
}
