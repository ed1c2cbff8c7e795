/*
PURPOSE:
  Orchestrates the benchmark regression gate.
  Loads the current run and the baseline, compares them and renders the report.

REQUIREMENTS:
  User-specified:
  - A missing current results file is fatal with a hint to run benchmarks first.
  - A missing baseline is bootstrapped from the current results (byte-identical) and passes.
  - Regressions fail the run only after the complete report has been written.

  Implementation-discovered:
  - The baseline may live in S3 so CI runners without a shared disk agree on it.
  - Exports (CSV, JSON, Prometheus textfile) are written before the verdict is returned.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (bench compare, bench record)
  - Uses: internal/bench, internal/storage, internal/output, internal/metrics

ERROR HANDLING:
  - Export failures are returned; a run that cannot persist what was asked for is not green.
  - bench.ErrRegressionsDetected is the policy failure, returned last.

USAGE:
  err := engine.CompareBenchmarks(ctx, cfg, os.Stdout, engine.CompareOptions{})
*/

package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/daryltucker/libkit/internal/bench"
	"github.com/daryltucker/libkit/internal/config"
	"github.com/daryltucker/libkit/internal/metrics"
	"github.com/daryltucker/libkit/internal/output"
	"github.com/daryltucker/libkit/internal/storage"
)

// CompareOptions selects optional exports of a comparison run.
type CompareOptions struct {
	CSVPath     string
	JSONPath    string
	MetricsPath string

	// S3Options are passed to the baseline store when it is an s3:// location.
	S3Options []storage.S3Option
}

// CompareBenchmarks runs the regression gate. A nil error means the gate passed,
// including the bootstrap case.
func CompareBenchmarks(ctx context.Context, cfg *config.Config, w io.Writer, opts CompareOptions) error {
	currentPath := cfg.Path(cfg.Bench.Current)
	currentData, err := os.ReadFile(currentPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w at %s (run benchmarks first: libkit bench record)", bench.ErrCurrentMissing, currentPath)
		}
		return fmt.Errorf("failed to read %s: %w", currentPath, err)
	}

	store, err := storage.Open(ctx, cfg.Bench.Baseline, cfg.Root, cfg.Bench.S3, opts.S3Options...)
	if err != nil {
		return err
	}

	baselineData, err := store.Get(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		output.Logger.Warn("Baseline not found, creating baseline from current results", "baseline", store.Location())
		if err := store.Put(ctx, currentData); err != nil {
			return fmt.Errorf("failed to create baseline: %w", err)
		}
		output.Logger.Info("Baseline created", "baseline", store.Location())
		return nil
	}
	if err != nil {
		return err
	}

	current, err := bench.DecodeBytes(currentData)
	if err != nil {
		return fmt.Errorf("current results %s: %w", currentPath, err)
	}
	baseline, err := bench.DecodeBytes(baselineData)
	if err != nil {
		return fmt.Errorf("baseline %s: %w", store.Location(), err)
	}

	output.Logger.Debug("Comparing benchmarks",
		"current", currentPath,
		"baseline", store.Location(),
		"threshold", cfg.Bench.Threshold,
	)
	result := bench.Compare(current, baseline, cfg.Bench.Threshold)

	for _, b := range result.New {
		output.RenderNewBenchmark(w, b.Name)
	}

	report := output.ComparisonReport{
		Threshold:    result.Threshold,
		Regressions:  result.Regressions(),
		Improvements: result.Improvements(),
		Stable:       result.Stable(),
		Total:        len(result.Comparisons),
	}
	output.RenderComparison(w, report)

	if err := writeExports(cfg, result, report, opts); err != nil {
		return err
	}

	if result.HasRegressions() {
		return bench.ErrRegressionsDetected
	}
	return nil
}

func writeExports(cfg *config.Config, result *bench.Result, report output.ComparisonReport, opts CompareOptions) error {
	if opts.CSVPath != "" {
		path := cfg.Path(opts.CSVPath)
		cw, err := output.NewCSVWriter(path)
		if err != nil {
			return fmt.Errorf("failed to init CSV writer at %s: %w", path, err)
		}
		for _, c := range result.Comparisons {
			if err := cw.Write(c); err != nil {
				cw.Close()
				return fmt.Errorf("failed to write CSV %s: %w", path, err)
			}
		}
		if err := cw.Close(); err != nil {
			return err
		}
		output.Logger.Info("Wrote CSV report", "path", path, "rows", len(result.Comparisons))
	}

	if opts.JSONPath != "" {
		path := cfg.Path(opts.JSONPath)
		newIDs := make([]string, 0, len(result.New))
		for _, b := range result.New {
			newIDs = append(newIDs, b.ID)
		}
		if err := output.WriteJSONFile(path, output.NewJSONReport(report, result.Comparisons, newIDs)); err != nil {
			return err
		}
		output.Logger.Info("Wrote JSON report", "path", path)
	}

	if opts.MetricsPath != "" {
		path := cfg.Path(opts.MetricsPath)
		if err := metrics.WriteTextfile(path, result); err != nil {
			return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
		}
		output.Logger.Info("Wrote metrics textfile", "path", path)
	}
	return nil
}

// RecordBenchmarks converts `go test -bench` output from r into a dataset and
// stores it as the current results file.
func RecordBenchmarks(cfg *config.Config, r io.Reader) (int, error) {
	ds, err := bench.ParseGoTest(r)
	if err != nil {
		return 0, err
	}

	data, err := output.MarshalPretty(ds)
	if err != nil {
		return 0, err
	}
	path := cfg.Path(cfg.Bench.Current)
	if err := output.WriteFileAtomic(path, data); err != nil {
		return 0, err
	}

	count := bench.NewIndex(ds).Len()
	output.Logger.Info("Recorded benchmark results", "path", path, "benchmarks", count, "bytes", len(data))
	return count, nil
}
