package metrics

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/libkit/internal/bench"
	"github.com/daryltucker/libkit/internal/model"
)

func sampleResult() *bench.Result {
	return &bench.Result{
		Threshold: 10,
		Comparisons: []model.Comparison{
			{ID: "a", Name: "parse", BaselineHz: 1000, CurrentHz: 700, ChangePercent: -30, IsRegression: true},
			{ID: "b", Name: "format", BaselineHz: 500, CurrentHz: 510, ChangePercent: 2},
			{ID: "c", Name: "fresh", BaselineHz: 0, CurrentHz: 5, ChangePercent: math.Inf(1), IsImprovement: true},
		},
	}
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.prom")
	require.NoError(t, WriteTextfile(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "# TYPE libkit_benchmark_change_percent gauge")
	assert.Contains(t, text, `libkit_benchmark_change_percent{id="a",name="parse"} -30`)
	assert.Contains(t, text, `libkit_benchmark_change_percent{id="c",name="fresh"} +Inf`)
	assert.Contains(t, text, `libkit_benchmark_ops_per_second{id="a",name="parse",run="baseline"} 1000`)
	assert.Contains(t, text, `libkit_benchmark_ops_per_second{id="a",name="parse",run="current"} 700`)
	assert.Contains(t, text, `libkit_benchmark_comparisons{status="regression"} 1`)
	assert.Contains(t, text, `libkit_benchmark_comparisons{status="improvement"} 1`)
	assert.Contains(t, text, `libkit_benchmark_comparisons{status="stable"} 1`)
	assert.Contains(t, text, "libkit_benchmark_threshold_percent 10")
}

func TestWriteTextfile_EmptyResultReportsZeroCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.prom")
	require.NoError(t, WriteTextfile(path, &bench.Result{Threshold: 5}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `libkit_benchmark_comparisons{status="regression"} 0`)
	assert.NotContains(t, string(data), "libkit_benchmark_change_percent{")
}
