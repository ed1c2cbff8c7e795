/*
PURPOSE:
  Renders the benchmark comparison report for humans.

REQUIREMENTS:
  User-specified:
  - Regressions, improvements and stable count, with baseline/current ops/sec
    and percentage change, followed by a summary and a verdict.
  - All output is written before the process signals failure.

  Implementation-discovered:
  - Colours only when the destination is a terminal; CI logs and tests get plain text.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Comparison

IMPLEMENTATION RULES:
  - Build styles from a renderer bound to the destination writer, never the global one.
*/

package output

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/daryltucker/libkit/internal/model"
)

// ComparisonReport is everything the comparison report prints.
type ComparisonReport struct {
	Threshold    float64
	Regressions  []model.Comparison
	Improvements []model.Comparison
	Stable       []model.Comparison
	Total        int
}

type reportStyles struct {
	title   lipgloss.Style
	bad     lipgloss.Style
	good    lipgloss.Style
	neutral lipgloss.Style
	name    lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		title:   r.NewStyle().Bold(true),
		bad:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		good:    r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		neutral: r.NewStyle().Foreground(lipgloss.Color("245")),
		name:    r.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// FormatThreshold prints a threshold the shortest way (10, 7.5).
func FormatThreshold(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

// FormatPercent renders a change with two decimals; improvements carry an explicit plus.
func FormatPercent(c model.Comparison) string {
	if c.IsImprovement {
		return fmt.Sprintf("+%.2f%%", c.ChangePercent)
	}
	return fmt.Sprintf("%.2f%%", c.ChangePercent)
}

// RenderNewBenchmark prints the informational line for a benchmark with no baseline.
func RenderNewBenchmark(w io.Writer, name string) {
	fmt.Fprintf(w, "ℹ️  New benchmark: %s\n", name)
}

// RenderComparison writes the full report, ending with the verdict line.
func RenderComparison(w io.Writer, r ComparisonReport) {
	st := newReportStyles(w)
	threshold := FormatThreshold(r.Threshold)

	fmt.Fprintf(w, "\n%s\n\n", st.title.Render("📊 Benchmark Comparison"))
	fmt.Fprintf(w, "Threshold: ±%s%%\n\n", threshold)

	if len(r.Regressions) > 0 {
		fmt.Fprintf(w, "%s\n\n", st.bad.Render("🔴 Performance Regressions:"))
		for _, c := range r.Regressions {
			renderItem(w, st, c)
		}
	}

	if len(r.Improvements) > 0 {
		fmt.Fprintf(w, "%s\n\n", st.good.Render("🟢 Performance Improvements:"))
		for _, c := range r.Improvements {
			renderItem(w, st, c)
		}
	}

	if len(r.Stable) > 0 {
		line := fmt.Sprintf("⚪ Stable (%d benchmarks within ±%s%%)", len(r.Stable), threshold)
		fmt.Fprintf(w, "%s\n\n", st.neutral.Render(line))
	}

	fmt.Fprintln(w, st.title.Render("Summary:"))
	fmt.Fprintf(w, "  ✓ %d improvements\n", len(r.Improvements))
	fmt.Fprintf(w, "  ✗ %d regressions\n", len(r.Regressions))
	fmt.Fprintf(w, "  = %d stable\n", len(r.Stable))
	fmt.Fprintf(w, "  Total: %d benchmarks\n\n", r.Total)

	if len(r.Regressions) > 0 {
		fmt.Fprintln(w, st.bad.Render("❌ Performance regressions detected!"))
		return
	}
	fmt.Fprintln(w, st.good.Render("✓ No performance regressions detected"))
}

func renderItem(w io.Writer, st reportStyles, c model.Comparison) {
	fmt.Fprintf(w, "  %s\n", st.name.Render(c.Name))
	fmt.Fprintf(w, "    Baseline:  %.2f ops/sec\n", c.BaselineHz)
	fmt.Fprintf(w, "    Current:   %.2f ops/sec\n", c.CurrentHz)
	fmt.Fprintf(w, "    Change:    %s\n\n", FormatPercent(c))
}

// JSONComparison is one exported comparison. Non-finite values (zero baseline)
// become null because JSON has no Inf or NaN.
type JSONComparison struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BaselineHz    *float64 `json:"baselineHz"`
	CurrentHz     *float64 `json:"currentHz"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"changePercent"`
	Status        string   `json:"status"`
}

// JSONReport is the machine-readable form of a comparison run.
type JSONReport struct {
	Threshold    float64          `json:"threshold"`
	Passed       bool             `json:"passed"`
	Total        int              `json:"total"`
	Regressions  int              `json:"regressions"`
	Improvements int              `json:"improvements"`
	Stable       int              `json:"stable"`
	Comparisons  []JSONComparison `json:"comparisons"`
	New          []string         `json:"new"`
}

// NewJSONReport converts comparisons (in report order) and the ids of new benchmarks.
func NewJSONReport(r ComparisonReport, ordered []model.Comparison, newIDs []string) JSONReport {
	out := JSONReport{
		Threshold:    r.Threshold,
		Passed:       len(r.Regressions) == 0,
		Total:        r.Total,
		Regressions:  len(r.Regressions),
		Improvements: len(r.Improvements),
		Stable:       len(r.Stable),
		Comparisons:  make([]JSONComparison, 0, len(ordered)),
		New:          newIDs,
	}
	if out.New == nil {
		out.New = []string{}
	}
	for _, c := range ordered {
		out.Comparisons = append(out.Comparisons, JSONComparison{
			ID:            c.ID,
			Name:          c.Name,
			BaselineHz:    finite(c.BaselineHz),
			CurrentHz:     finite(c.CurrentHz),
			Change:        finite(c.Change),
			ChangePercent: finite(c.ChangePercent),
			Status:        Status(c),
		})
	}
	return out
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
