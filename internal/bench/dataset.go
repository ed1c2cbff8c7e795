/*
PURPOSE:
  Loads benchmark snapshot files (current run, baseline) into typed datasets.

REQUIREMENTS:
  User-specified:
  - Snapshot shape: {"suites": [{"fullName", "benchmarks": [{id, name, hz, mean, rme}]}]}.

  Implementation-discovered:
  - Runners emit many extra per-benchmark fields (min, max, p75, samples...).
    Those are tolerated; missing required fields are not.
  - A zero hz is legal input (it is what makes the percentage undefined later).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Produces: internal/model.BenchmarkDataset

ERROR HANDLING:
  - Every shape problem wraps ErrMalformedDataset and names the offending entry.
*/

package bench

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/daryltucker/libkit/internal/model"
)

// wire mirrors the snapshot layout with pointers so absent keys are detectable.
type wireDataset struct {
	Suites *[]wireSuite `json:"suites"`
}

type wireSuite struct {
	FullName   string          `json:"fullName"`
	Benchmarks []wireBenchmark `json:"benchmarks"`
}

type wireBenchmark struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Hz   *float64 `json:"hz"`
	Mean float64  `json:"mean"`
	RME  float64  `json:"rme"`
}

// Decode parses and validates a dataset.
func Decode(r io.Reader) (*model.BenchmarkDataset, error) {
	var wire wireDataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after top-level object", ErrMalformedDataset)
	}
	if wire.Suites == nil {
		return nil, fmt.Errorf("%w: missing \"suites\"", ErrMalformedDataset)
	}

	ds := &model.BenchmarkDataset{Suites: make([]model.BenchmarkSuite, 0, len(*wire.Suites))}
	for si, s := range *wire.Suites {
		suite := model.BenchmarkSuite{
			FullName:   s.FullName,
			Benchmarks: make([]model.BenchmarkResult, 0, len(s.Benchmarks)),
		}
		for bi, b := range s.Benchmarks {
			if b.ID == "" {
				return nil, fmt.Errorf("%w: suite %d benchmark %d has no id", ErrMalformedDataset, si, bi)
			}
			if b.Hz == nil {
				return nil, fmt.Errorf("%w: benchmark %q has no hz", ErrMalformedDataset, b.ID)
			}
			if math.IsNaN(*b.Hz) || *b.Hz < 0 {
				return nil, fmt.Errorf("%w: benchmark %q has invalid hz %v", ErrMalformedDataset, b.ID, *b.Hz)
			}
			suite.Benchmarks = append(suite.Benchmarks, model.BenchmarkResult{
				ID:   b.ID,
				Name: b.Name,
				Hz:   *b.Hz,
				Mean: b.Mean,
				RME:  b.RME,
			})
		}
		ds.Suites = append(ds.Suites, suite)
	}
	return ds, nil
}

// DecodeBytes is Decode over an in-memory snapshot.
func DecodeBytes(data []byte) (*model.BenchmarkDataset, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile reads a dataset from path.
func LoadFile(path string) (*model.BenchmarkDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
