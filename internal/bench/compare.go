/*
PURPOSE:
  Matches a current benchmark run against a baseline and classifies every
  matched benchmark as regression, improvement or stable.

REQUIREMENTS:
  User-specified:
  - Match by id; last write wins inside one dataset.
  - changePercent = (current.hz - baseline.hz) / baseline.hz * 100.
  - regression iff changePercent < -threshold, improvement iff > threshold.
  - Largest absolute swing first.
  - Ids only in the current run are "new"; ids only in the baseline are ignored.

  Implementation-discovered:
  - Go maps are unordered, so the index keeps first-appearance order to make
    ties and "new benchmark" lines deterministic.
  - A zero baseline hz yields ±Inf or NaN. That is passed through unchanged;
    NaN lands in the stable partition and sorts last.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes/produces: internal/model
*/

package bench

import (
	"cmp"
	"math"
	"slices"

	"github.com/daryltucker/libkit/internal/model"
)

// DefaultThreshold is the regression band in percent.
const DefaultThreshold = 10.0

// Index is an id -> result lookup that remembers first-appearance order.
type Index struct {
	order []string
	byID  map[string]model.BenchmarkResult
}

// NewIndex flattens every suite of ds into one lookup.
func NewIndex(ds *model.BenchmarkDataset) *Index {
	idx := &Index{byID: make(map[string]model.BenchmarkResult)}
	if ds == nil {
		return idx
	}
	for _, suite := range ds.Suites {
		for _, b := range suite.Benchmarks {
			if _, seen := idx.byID[b.ID]; !seen {
				idx.order = append(idx.order, b.ID)
			}
			idx.byID[b.ID] = b
		}
	}
	return idx
}

// Len is the number of distinct ids.
func (i *Index) Len() int { return len(i.order) }

// Get returns the last result recorded for id.
func (i *Index) Get(id string) (model.BenchmarkResult, bool) {
	b, ok := i.byID[id]
	return b, ok
}

// IDs returns ids in first-appearance order.
func (i *Index) IDs() []string {
	return slices.Clone(i.order)
}

// Result is the outcome of one comparison run.
type Result struct {
	Threshold float64
	// Comparisons is sorted by descending |ChangePercent|.
	Comparisons []model.Comparison
	// New holds current benchmarks without a baseline entry.
	New []model.BenchmarkResult
}

// Regressions returns regressed comparisons in report order.
func (r *Result) Regressions() []model.Comparison {
	return r.filter(func(c model.Comparison) bool { return c.IsRegression })
}

// Improvements returns improved comparisons in report order.
func (r *Result) Improvements() []model.Comparison {
	return r.filter(func(c model.Comparison) bool { return c.IsImprovement })
}

// Stable returns comparisons inside the threshold band in report order.
func (r *Result) Stable() []model.Comparison {
	return r.filter(model.Comparison.Stable)
}

// HasRegressions reports whether the run should fail the gate.
func (r *Result) HasRegressions() bool {
	return slices.ContainsFunc(r.Comparisons, func(c model.Comparison) bool { return c.IsRegression })
}

func (r *Result) filter(keep func(model.Comparison) bool) []model.Comparison {
	var out []model.Comparison
	for _, c := range r.Comparisons {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Classify builds the comparison record for one matched pair.
func Classify(id string, current, baseline model.BenchmarkResult, threshold float64) model.Comparison {
	change := current.Hz - baseline.Hz
	changePercent := change / baseline.Hz * 100

	return model.Comparison{
		ID:            id,
		Name:          current.Name,
		BaselineHz:    baseline.Hz,
		CurrentHz:     current.Hz,
		Change:        change,
		ChangePercent: changePercent,
		IsRegression:  changePercent < -threshold,
		IsImprovement: changePercent > threshold,
	}
}

// Compare matches current against baseline and classifies every match.
func Compare(current, baseline *model.BenchmarkDataset, threshold float64) *Result {
	cur := NewIndex(current)
	base := NewIndex(baseline)

	res := &Result{Threshold: threshold}
	for _, id := range cur.order {
		c := cur.byID[id]
		b, ok := base.byID[id]
		if !ok {
			res.New = append(res.New, c)
			continue
		}
		res.Comparisons = append(res.Comparisons, Classify(id, c, b, threshold))
	}

	SortBySwing(res.Comparisons)
	return res
}

// SortBySwing orders comparisons by descending |ChangePercent|, stably.
// cmp.Compare treats NaN as the smallest value, so undefined changes go last.
func SortBySwing(cs []model.Comparison) {
	slices.SortStableFunc(cs, func(a, b model.Comparison) int {
		return cmp.Compare(math.Abs(b.ChangePercent), math.Abs(a.ChangePercent))
	})
}
