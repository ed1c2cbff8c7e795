/*
PURPOSE:
  Writes JSON documents (registry, manifests, datasets, reports) to disk.

REQUIREMENTS:
  User-specified:
  - Registry is rewritten as a whole file on every versioning operation.

  Implementation-discovered:
  - Files are read back by other tools: 2-space indent, trailing newline.
  - A crash mid-write must not leave a truncated registry: write atomically.

ARCHITECTURE INTEGRATION:
  - Called by: internal/docs, internal/engine, internal/storage
*/

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
)

// MarshalPretty encodes v with two-space indentation and a trailing newline.
// HTML escaping is off so paths and URLs stay readable.
func MarshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSONFile atomically replaces path with the pretty encoding of v.
func WriteJSONFile(path string, v any) error {
	data, err := MarshalPretty(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	return WriteFileAtomic(path, data)
}

// WriteFileAtomic creates parent directories and swaps data into place.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := atomicwriter.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
