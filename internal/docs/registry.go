/*
PURPOSE:
  Reads, validates and rewrites the documentation version registry (versions.json).

REQUIREMENTS:
  User-specified:
  - Ordered list of entries, newest first.
  - Rewritten as a whole file, pretty-printed and newline-terminated.
  - Every release demotes all prior entries to maintenance (eol included).

  Implementation-discovered:
  - A missing registry is an empty registry (first release).
  - Entries without version, label, path or date, or with an unknown status, are
    rejected at load time rather than carried forward silently.
  - Keys the tool does not know are preserved (model.VersionEntry.Extra).

ARCHITECTURE INTEGRATION:
  - Called by: docs.Versioner, internal/engine (docs list)
  - Uses: internal/output.WriteJSONFile (atomic)
*/

package docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/daryltucker/libkit/internal/model"
	"github.com/daryltucker/libkit/internal/output"
)

// LoadRegistry reads versions.json. A missing file yields an empty registry.
func LoadRegistry(path string) ([]model.VersionEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.VersionEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}

	var entries []model.VersionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRegistry, path, err)
	}
	if entries == nil {
		entries = []model.VersionEntry{}
	}

	for i, e := range entries {
		if e.Version == "" {
			return nil, fmt.Errorf("%w: entry %d has no version", ErrMalformedRegistry, i)
		}
		if e.Label == "" || e.Path == "" || e.Date == "" {
			return nil, fmt.Errorf("%w: entry %s needs label, path and date", ErrMalformedRegistry, e.Version)
		}
		if !e.Status.Valid() {
			return nil, fmt.Errorf("%w: entry %s has unknown status %q", ErrMalformedRegistry, e.Version, e.Status)
		}
	}
	return entries, nil
}

// SaveRegistry atomically rewrites versions.json.
func SaveRegistry(path string, entries []model.VersionEntry) error {
	if entries == nil {
		entries = []model.VersionEntry{}
	}
	return output.WriteJSONFile(path, entries)
}

// Contains reports whether version is already registered.
func Contains(entries []model.VersionEntry, version string) bool {
	return slices.ContainsFunc(entries, func(e model.VersionEntry) bool { return e.Version == version })
}

// Release returns a new registry with every existing entry forced to maintenance
// and entry prepended. eol entries are demoted too.
// TODO: keep eol entries as eol once the support policy for old majors is written down.
func Release(entries []model.VersionEntry, entry model.VersionEntry) []model.VersionEntry {
	out := make([]model.VersionEntry, 0, len(entries)+1)
	out = append(out, entry)
	for _, e := range entries {
		e.Status = model.StatusMaintenance
		out = append(out, e)
	}
	return out
}

// NewEntry builds the registry entry for a freshly archived version.
func NewEntry(version, date string) model.VersionEntry {
	return model.VersionEntry{
		Version: version,
		Label:   version,
		Path:    "/" + version + "/",
		Date:    date,
		Status:  model.StatusCurrent,
	}
}
