package publish

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareManifest(t *testing.T) {
	raw := map[string]any{
		"name":            "libkit",
		"version":         "1.2.0",
		"description":     "A small library",
		"license":         "MIT",
		"keywords":        []any{"toolkit"},
		"scripts":         map[string]any{"test": "bun test"},
		"devDependencies": map[string]any{"typescript": "^5.0.0"},
		"dependencies":    map[string]any{},
		"sideEffects":     false,
		"main":            "./src/index.ts",
		"type":            "module",
	}

	raw["peerDependencies"] = nil

	got := PrepareManifest(raw)

	assert.Equal(t, map[string]any{
		"name":        "libkit",
		"version":     "1.2.0",
		"description": "A small library",
		"license":     "MIT",
		"keywords":    []any{"toolkit"},
		"sideEffects": false,
		"type":        "module",
		"main":        "./index.cjs",
		"module":      "./index.mjs",
		"types":       "./index.d.ts",
		"exports": map[string]any{
			".": map[string]any{
				"import":  "./index.mjs",
				"require": "./index.cjs",
				"types":   "./index.d.ts",
			},
		},
	}, got)
	assert.Equal(t, "./src/index.ts", raw["main"], "input must not be modified")
}

func TestPrepareManifest_EmptyKeywordsDropped(t *testing.T) {
	got := PrepareManifest(map[string]any{"name": "x", "keywords": []any{}, "homepage": ""})
	assert.NotContains(t, got, "keywords")
	assert.Equal(t, "", got["homepage"], "empty strings are kept")
}

func TestPrepareManifest_EncodesSorted(t *testing.T) {
	data, err := json.Marshal(PrepareManifest(map[string]any{"version": "1.0.0", "name": "libkit"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"exports": {".": {"import": "./index.mjs", "require": "./index.cjs", "types": "./index.d.ts"}},
		"main": "./index.cjs",
		"module": "./index.mjs",
		"name": "libkit",
		"types": "./index.d.ts",
		"version": "1.0.0"
	}`, string(data))
	assert.Regexp(t, `^\{"exports":.*"main":.*"module":.*"name":.*"types":.*"version":`, string(data))
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"name":"libkit","version":"0.3.1"}`), 0644))
	m, err := ReadManifest(good)
	require.NoError(t, err)
	assert.Equal(t, "libkit@0.3.1", PackageID(m))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1,2]`), 0644))
	_, err = ReadManifest(bad)
	assert.ErrorIs(t, err, ErrMalformedManifest)

	_, err = ReadManifest(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPackageID_Incomplete(t *testing.T) {
	assert.Equal(t, "", PackageID(map[string]any{"name": "libkit"}))
	assert.Equal(t, "", PackageID(map[string]any{"version": 3.0}))
}
