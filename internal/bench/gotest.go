package bench

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/daryltucker/libkit/internal/model"
)

var (
	// BenchmarkName-8   1000000   1000 ns/op   12.5 MB/s   100 B/op   10 allocs/op
	benchLine = regexp.MustCompile(`^(Benchmark\S*?)(?:-\d+)?\s+(\d+)\s+(\d+(?:\.\d+)?)\s+ns/op`)
	pkgLine   = regexp.MustCompile(`^pkg:\s+(\S+)`)
)

// ParseGoTest converts `go test -bench` output into a dataset.
// Every "pkg:" header opens a suite; benchmarks before any header land in a
// suite with an empty name. Throughput is derived from ns/op, mean is in ms.
func ParseGoTest(r io.Reader) (*model.BenchmarkDataset, error) {
	ds := &model.BenchmarkDataset{Suites: []model.BenchmarkSuite{}}
	var suite *model.BenchmarkSuite

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := pkgLine.FindStringSubmatch(line); m != nil {
			ds.Suites = append(ds.Suites, model.BenchmarkSuite{FullName: m[1], Benchmarks: []model.BenchmarkResult{}})
			suite = &ds.Suites[len(ds.Suites)-1]
			continue
		}

		m := benchLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		nsPerOp, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parse ns/op in %q: %w", line, err)
		}
		if nsPerOp <= 0 {
			continue
		}

		if suite == nil {
			ds.Suites = append(ds.Suites, model.BenchmarkSuite{Benchmarks: []model.BenchmarkResult{}})
			suite = &ds.Suites[len(ds.Suites)-1]
		}

		name := m[1]
		id := name
		if suite.FullName != "" {
			id = suite.FullName + "/" + name
		}

		suite.Benchmarks = append(suite.Benchmarks, model.BenchmarkResult{
			ID:   id,
			Name: name,
			Hz:   1e9 / nsPerOp,
			Mean: nsPerOp / 1e6,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, s := range ds.Suites {
		total += len(s.Benchmarks)
	}
	if total == 0 {
		return nil, ErrNoBenchmarks
	}
	return ds, nil
}
