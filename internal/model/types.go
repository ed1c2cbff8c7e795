/*
PURPOSE:
  Defines the core data structures shared by the libkit tooling.
  Benchmark snapshots, derived comparisons and the documentation version registry.

REQUIREMENTS:
  User-specified:
  - Benchmark results carry id, name, hz (ops/sec), mean and rme.
  - Version entries carry version, label, path, date and status.

  Implementation-discovered:
  - JSON tags must match the snapshot files produced by the benchmark runner
    (vitest-style `suites[].benchmarks[]`) so datasets round-trip byte-compatible.
  - Status is a closed set; keep the string values stable, they are persisted.
  - Registry entries may carry keys this tool does not know about (added by hand or by
    the docs site); they are kept verbatim in VersionEntry.Extra across rewrites.

ARCHITECTURE INTEGRATION:
  - Used by: internal/bench, internal/docs, internal/engine, internal/output, internal/metrics
  - Shared across boundaries.

ERROR HANDLING:
  - Only VersionEntry decoding can fail (malformed JSON).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Derived types (Comparison) are never persisted by the comparator itself.

RELATED FILES:
  - internal/bench/dataset.go
  - internal/docs/registry.go

MAINTENANCE:
  - Update decoders and writers when adding fields.
*/

package model

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// BenchmarkResult is a single benchmark measurement from one run.
type BenchmarkResult struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Hz   float64 `json:"hz"`   // operations per second
	Mean float64 `json:"mean"` // mean duration per operation (ms)
	RME  float64 `json:"rme"`  // relative margin of error (%)
}

// BenchmarkSuite groups results under a display name.
type BenchmarkSuite struct {
	FullName   string            `json:"fullName"`
	Benchmarks []BenchmarkResult `json:"benchmarks"`
}

// BenchmarkDataset is the content of one snapshot file (current run or baseline).
type BenchmarkDataset struct {
	Suites []BenchmarkSuite `json:"suites"`
}

// Comparison is the derived record for one identifier present in both datasets.
type Comparison struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BaselineHz    float64 `json:"baselineHz"`
	CurrentHz     float64 `json:"currentHz"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	IsRegression  bool    `json:"isRegression"`
	IsImprovement bool    `json:"isImprovement"`
}

// Stable reports whether the comparison fell inside the threshold band.
func (c Comparison) Stable() bool {
	return !c.IsRegression && !c.IsImprovement
}

// VersionStatus is the support state of an archived documentation version.
type VersionStatus string

const (
	StatusCurrent     VersionStatus = "current"
	StatusMaintenance VersionStatus = "maintenance"
	StatusEOL         VersionStatus = "eol"
)

// Valid reports whether s is one of the known statuses.
func (s VersionStatus) Valid() bool {
	switch s {
	case StatusCurrent, StatusMaintenance, StatusEOL:
		return true
	}
	return false
}

// Annotation is the label shown next to an entry on the versions page.
func (s VersionStatus) Annotation() string {
	switch s {
	case StatusCurrent:
		return "(Current)"
	case StatusMaintenance:
		return "(Maintenance)"
	default:
		return "(EOL)"
	}
}

// VersionEntry is one row of the documentation version registry (versions.json).
type VersionEntry struct {
	Version string        `json:"version"`
	Label   string        `json:"label"`
	Path    string        `json:"path"`
	Date    string        `json:"date"`
	Status  VersionStatus `json:"status"`

	// Extra holds unrecognised keys, written back after the known ones in key order.
	Extra map[string]json.RawMessage `json:"-"`
}

// versionEntryKeys are the keys VersionEntry decodes into named fields.
var versionEntryKeys = []string{"version", "label", "path", "date", "status"}

// versionEntryFields has VersionEntry's layout without its JSON methods.
type versionEntryFields VersionEntry

// UnmarshalJSON decodes the known keys and keeps every other key in Extra.
func (e *VersionEntry) UnmarshalJSON(data []byte) error {
	var known versionEntryFields
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range versionEntryKeys {
		delete(all, k)
	}

	*e = VersionEntry(known)
	e.Extra = nil
	if len(all) > 0 {
		e.Extra = all
	}
	return nil
}

// MarshalJSON writes the known keys in their fixed order followed by Extra.
func (e VersionEntry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(versionEntryFields(e)); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	if len(e.Extra) == 0 {
		return out, nil
	}

	out = out[:len(out)-1]
	for _, k := range slices.Sorted(maps.Keys(e.Extra)) {
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		out = append(out, ',')
		out = append(out, key...)
		out = append(out, ':')
		out = append(out, e.Extra[k]...)
	}
	return append(out, '}'), nil
}
