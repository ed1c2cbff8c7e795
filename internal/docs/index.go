package docs

import (
	"bytes"
	"text/template"

	"github.com/daryltucker/libkit/internal/model"
)

// IndexOptions controls the static parts of the versions page.
type IndexOptions struct {
	// Version is the release being archived; it appears in the
	// "How Versioning Works" section. Empty falls back to the newest entry.
	Version string
	// ReleasesURL adds an Archive section when set.
	ReleasesURL string
}

var indexTemplate = template.Must(template.New("versions.md").Parse(`# Documentation Versions

This page lists all available documentation versions.

## Latest Version

- [Latest (main)](/) - Development version, latest changes

## Released Versions

{{range .Entries}}- [{{.Label}}]({{.Path}}) - Released {{.Date}} {{.Status.Annotation}}
{{end}}
## Version Support

- **Current**: Actively maintained with bug fixes and new features
- **Maintenance**: Bug fixes only
- **End of Life**: No longer supported

## How Versioning Works

When a new version is released:

1. The current documentation is archived under ` + "`/{{.Version}}/`" + `
2. The new version becomes the default documentation at ` + "`/`" + `
3. A version selector appears in the navigation bar
{{if .ReleasesURL}}
## Archive

Looking for older documentation? Check the [GitHub releases]({{.ReleasesURL}}) for documentation snapshots.
{{end}}`))

// RenderIndex regenerates the whole versions page from the registry.
// The page carries no state of its own.
func RenderIndex(entries []model.VersionEntry, opts IndexOptions) (string, error) {
	version := opts.Version
	if version == "" && len(entries) > 0 {
		version = entries[0].Version
	}

	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, struct {
		Entries     []model.VersionEntry
		Version     string
		ReleasesURL string
	}{entries, version, opts.ReleasesURL})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
