package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/libkit/internal/model"
)

func TestLoadRegistry_Missing(t *testing.T) {
	entries, err := LoadRegistry(filepath.Join(t.TempDir(), "versions.json"))
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestLoadRegistry_Malformed(t *testing.T) {
	tests := map[string]string{
		"not json":       `{`,
		"not an array":   `{"version": "v1.0.0"}`,
		"no version":     `[{"label": "x", "status": "current"}]`,
		"unknown status": `[{"version": "v1.0.0", "label": "v1.0.0", "path": "/v1.0.0/", "date": "2025-01-01", "status": "retired"}]`,
		"no label":       `[{"version": "v1.0.0", "path": "/v1.0.0/", "date": "2025-01-01", "status": "current"}]`,
		"no path":        `[{"version": "v1.0.0", "label": "v1.0.0", "date": "2025-01-01", "status": "current"}]`,
		"no date":        `[{"version": "v1.0.0", "label": "v1.0.0", "path": "/v1.0.0/", "status": "current"}]`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "versions.json")
			writeFile(t, path, content)
			_, err := LoadRegistry(path)
			assert.ErrorIs(t, err, ErrMalformedRegistry)
		})
	}
}

func TestLoadRegistry_EmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	writeFile(t, path, "[]\n")
	entries, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRelease(t *testing.T) {
	existing := []model.VersionEntry{
		{Version: "v1.1.0", Status: model.StatusCurrent},
		{Version: "v1.0.0", Status: model.StatusMaintenance},
		{Version: "v0.9.0", Status: model.StatusEOL},
	}

	out := Release(existing, NewEntry("v2.0.0", "2026-01-01"))

	require.Len(t, out, 4)
	assert.Equal(t, "v2.0.0", out[0].Version)
	assert.Equal(t, "/v2.0.0/", out[0].Path)
	assert.Equal(t, "v2.0.0", out[0].Label)
	assert.Equal(t, model.StatusCurrent, out[0].Status)
	for _, e := range out[1:] {
		assert.Equal(t, model.StatusMaintenance, e.Status, e.Version)
	}
	assert.Equal(t, model.StatusCurrent, existing[0].Status, "input must not be mutated")
}

func TestSaveRegistry_EmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "versions.json")
	require.NoError(t, SaveRegistry(path, nil))

	entries, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestContains(t *testing.T) {
	entries := []model.VersionEntry{{Version: "v1.0.0"}}
	assert.True(t, Contains(entries, "v1.0.0"))
	assert.False(t, Contains(entries, "v1.0.1"))
	assert.False(t, Contains(nil, "v1.0.0"))
}

func TestRegistry_PreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	writeFile(t, path, `[{"version":"v1.0.0","label":"v1.0.0 LTS","path":"/v1.0.0/","date":"2025-01-01","status":"current","notes":"LTS","banner":{"color":"red"}}]`)

	entries, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.JSONEq(t, `"LTS"`, string(entries[0].Extra["notes"]))

	require.NoError(t, SaveRegistry(path, Release(entries, NewEntry("v2.0.0", "2026-01-01"))))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"version":"v2.0.0","label":"v2.0.0","path":"/v2.0.0/","date":"2026-01-01","status":"current"},
		{"version":"v1.0.0","label":"v1.0.0 LTS","path":"/v1.0.0/","date":"2025-01-01","status":"maintenance","notes":"LTS","banner":{"color":"red"}}
	]`, string(data))
	assert.Contains(t, string(data), `"status": "maintenance",
    "banner": {
      "color": "red"
    },
    "notes": "LTS"`)
}
