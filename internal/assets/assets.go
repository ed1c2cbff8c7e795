// Package assets embeds the project scaffolding written by `libkit init`.
package assets

import "embed"

// Templates holds the starter files under templates/.
//
//go:embed templates
var Templates embed.FS
