package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/daryltucker/libkit/internal/config"
	"github.com/daryltucker/libkit/internal/docs"
	"github.com/daryltucker/libkit/internal/output"
)

// Clock is the time source for release dates. Tests replace it.
var Clock = time.Now

func versionerOptions(cfg *config.Config) docs.Options {
	opts := docs.Options{
		DocsDir:      cfg.Path(cfg.Docs.Dir),
		VersionsFile: cfg.Docs.VersionsFile,
		IndexPage:    cfg.Docs.IndexPage,
		IndexDoc:     cfg.Docs.IndexDoc,
		Subtrees:     cfg.Docs.Subtrees,
		ReleasesURL:  cfg.Docs.ReleasesURL,
		Now:          Clock,
	}
	if cfg.Docs.PackageFile != "" {
		opts.PackageFile = cfg.Path(cfg.Docs.PackageFile)
	}
	return opts
}

// VersionDocs archives the documentation tree under version and prints a summary to w.
func VersionDocs(cfg *config.Config, w io.Writer, version string) (*docs.Outcome, error) {
	v := docs.NewVersioner(versionerOptions(cfg))
	outcome, err := v.Run(version)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "\n✓ Documentation versioned as %s\n", version)
	for _, c := range outcome.Copied {
		fmt.Fprintf(w, "  - Archived %s\n", c)
	}
	fmt.Fprintf(w, "  - Updated %s\n", cfg.Docs.VersionsFile)
	fmt.Fprintf(w, "  - Updated %s\n", cfg.Docs.IndexPage)
	return outcome, nil
}

// ListVersions prints the versions page for the current registry without modifying anything.
// raw skips terminal rendering.
func ListVersions(cfg *config.Config, w io.Writer, raw bool) error {
	v := docs.NewVersioner(versionerOptions(cfg))
	entries, err := docs.LoadRegistry(v.RegistryPath())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		output.Logger.Info("No released documentation versions yet", "registry", v.RegistryPath())
	}

	page, err := docs.RenderIndex(entries, docs.IndexOptions{ReleasesURL: cfg.Docs.ReleasesURL})
	if err != nil {
		return err
	}
	if raw {
		_, err := io.WriteString(w, page)
		return err
	}
	return output.RenderMarkdown(w, page)
}
