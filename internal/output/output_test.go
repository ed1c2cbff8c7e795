package output

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/libkit/internal/model"
)

func TestRenderComparison(t *testing.T) {
	reg := model.Comparison{ID: "a", Name: "parse", BaselineHz: 100, CurrentHz: 45, ChangePercent: -55, IsRegression: true}
	imp := model.Comparison{ID: "b", Name: "format", BaselineHz: 50, CurrentHz: 100, ChangePercent: 100, IsImprovement: true}
	st := model.Comparison{ID: "c", Name: "noop", BaselineHz: 10, CurrentHz: 10.5, ChangePercent: 5}

	var buf bytes.Buffer
	RenderComparison(&buf, ComparisonReport{
		Threshold:    7.5,
		Regressions:  []model.Comparison{reg},
		Improvements: []model.Comparison{imp},
		Stable:       []model.Comparison{st},
		Total:        3,
	})
	out := buf.String()

	assert.Contains(t, out, "Threshold: ±7.5%")
	assert.Contains(t, out, "🔴 Performance Regressions:\n\n  parse\n    Baseline:  100.00 ops/sec\n    Current:   45.00 ops/sec\n    Change:    -55.00%\n")
	assert.Contains(t, out, "    Change:    +100.00%")
	assert.Contains(t, out, "⚪ Stable (1 benchmarks within ±7.5%)")
	assert.Contains(t, out, "  ✓ 1 improvements\n  ✗ 1 regressions\n  = 1 stable\n  Total: 3 benchmarks\n")
	assert.Less(t, strings.Index(out, "Regressions:"), strings.Index(out, "Improvements:"))
	assert.True(t, strings.HasSuffix(out, "❌ Performance regressions detected!\n"))
}

func TestRenderComparison_EmptySectionsOmitted(t *testing.T) {
	var buf bytes.Buffer
	RenderComparison(&buf, ComparisonReport{Threshold: 10})
	out := buf.String()

	assert.NotContains(t, out, "Regressions:")
	assert.NotContains(t, out, "Improvements:")
	assert.NotContains(t, out, "Stable (")
	assert.Contains(t, out, "  Total: 0 benchmarks")
	assert.True(t, strings.HasSuffix(out, "✓ No performance regressions detected\n"))
}

func TestNewJSONReport_NonFinite(t *testing.T) {
	comps := []model.Comparison{
		{ID: "z", BaselineHz: 0, CurrentHz: 0, Change: 0, ChangePercent: math.NaN()},
		{ID: "i", BaselineHz: 0, CurrentHz: 3, Change: 3, ChangePercent: math.Inf(1), IsImprovement: true},
	}
	r := NewJSONReport(ComparisonReport{Threshold: 10, Improvements: comps[1:], Stable: comps[:1], Total: 2}, comps, nil)

	assert.True(t, r.Passed)
	assert.Equal(t, []string{}, r.New)
	assert.Nil(t, r.Comparisons[0].ChangePercent)
	assert.Nil(t, r.Comparisons[1].ChangePercent)
	require.NotNil(t, r.Comparisons[1].CurrentHz)
	assert.Equal(t, 3.0, *r.Comparisons[1].CurrentHz)

	data, err := MarshalPretty(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"changePercent": null`)
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(model.Comparison{ID: "a", Name: "x, y", BaselineHz: 2, CurrentHz: 1, Change: -1, ChangePercent: -50, IsRegression: true}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,name,baseline_hz,current_hz,change,change_pct,status\n"+
		"a,\"x, y\",2.0000,1.0000,-1.0000,-50.00,regression\n", string(data))
}

func TestMarshalPretty(t *testing.T) {
	data, err := MarshalPretty(map[string]string{"url": "https://example.com/?a=1&b=<2>"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"url\": \"https://example.com/?a=1&b=<2>\"\n}\n", string(data))
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "file.json")
	require.NoError(t, WriteFileAtomic(path, []byte("one")))
	require.NoError(t, WriteFileAtomic(path, []byte("two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLevel("debug").String())
	assert.Equal(t, "WARN", ParseLevel("WARNING").String())
	assert.Equal(t, "INFO", ParseLevel("nonsense").String())
}

func TestConfigure(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	Configure(&buf, "warn", "json")
	Logger.Info("hidden")
	Logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, "# Title\n\nSome text.\n"))
	assert.Contains(t, buf.String(), "Title")
}
