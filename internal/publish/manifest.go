/*
PURPOSE:
  Derives the publishable package.json from the development manifest.

REQUIREMENTS:
  User-specified:
  - Only runtime-relevant fields survive; dev scripts and tooling config are dropped.
  - Entry points are rewritten relative to the build directory.

  Implementation-discovered:
  - Keys absent from the source, null, or empty objects/arrays are omitted.
  - encoding/json sorts map keys, which yields the same alphabetical field
    order the registry tooling expects.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.PreparePackage
*/

package publish

import (
	"encoding/json"
	"fmt"
	"os"
)

// KeptFields are copied verbatim from the development manifest.
var KeptFields = []string{
	"author",
	"bugs",
	"dependencies",
	"description",
	"engines",
	"homepage",
	"keywords",
	"license",
	"name",
	"peerDependencies",
	"repository",
	"sideEffects",
	"type",
	"version",
}

// Entry points inside the build directory.
const (
	MainEntry   = "./index.cjs"
	ModuleEntry = "./index.mjs"
	TypesEntry  = "./index.d.ts"
)

// PrepareManifest returns the cleaned publish manifest for raw.
// raw is not modified.
func PrepareManifest(raw map[string]any) map[string]any {
	out := make(map[string]any, len(KeptFields)+4)
	for _, key := range KeptFields {
		if v, ok := raw[key]; ok {
			out[key] = v
		}
	}

	out["main"] = MainEntry
	out["module"] = ModuleEntry
	out["types"] = TypesEntry
	out["exports"] = map[string]any{
		".": map[string]any{
			"import":  ModuleEntry,
			"require": MainEntry,
			"types":   TypesEntry,
		},
	}

	for key, v := range out {
		if isEmpty(v) {
			delete(out, key)
		}
	}
	return out
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

// ReadManifest decodes a package.json file into a generic object.
func ReadManifest(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedManifest, path, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s: not an object", ErrMalformedManifest, path)
	}
	return raw, nil
}

// PackageID returns "name@version" for a manifest, or "" when either is missing.
func PackageID(manifest map[string]any) string {
	name, _ := manifest["name"].(string)
	version, _ := manifest["version"].(string)
	if name == "" || version == "" {
		return ""
	}
	return name + "@" + version
}
