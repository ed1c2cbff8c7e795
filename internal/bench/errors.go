package bench

import "errors"

var (
	// ErrCurrentMissing is returned when the current results file does not exist.
	ErrCurrentMissing = errors.New("current benchmark results not found")

	// ErrMalformedDataset is returned when a snapshot does not have the expected shape.
	ErrMalformedDataset = errors.New("malformed benchmark dataset")

	// ErrRegressionsDetected is the policy failure raised after a full report.
	ErrRegressionsDetected = errors.New("performance regressions detected")

	// ErrNoBenchmarks is returned when go test output contains no benchmark lines.
	ErrNoBenchmarks = errors.New("no benchmarks found in input")
)
