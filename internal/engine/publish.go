package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/libkit/internal/config"
	"github.com/daryltucker/libkit/internal/output"
	"github.com/daryltucker/libkit/internal/publish"
)

// PublishAssets are copied next to the prepared manifest.
var PublishAssets = []string{"README.md", "LICENSE"}

// PreparePackage writes the publishable package.json into the build directory and
// copies the publish assets alongside it.
func PreparePackage(cfg *config.Config, w io.Writer) error {
	raw, err := publish.ReadManifest(cfg.Path("package.json"))
	if err != nil {
		return fmt.Errorf("failed to read package manifest: %w", err)
	}

	outDir := cfg.Path(cfg.Publish.OutDir)
	if err := output.WriteJSONFile(filepath.Join(outDir, "package.json"), publish.PrepareManifest(raw)); err != nil {
		return err
	}

	for _, name := range PublishAssets {
		data, err := os.ReadFile(cfg.Path(name))
		if err != nil {
			return fmt.Errorf("failed to copy %s: %w", name, err)
		}
		if err := output.WriteFileAtomic(filepath.Join(outDir, name), data); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "✓ Prepared package for publishing in %s/\n", cfg.Publish.OutDir)
	fmt.Fprintln(w, "  - Generated clean package.json")
	for _, name := range PublishAssets {
		fmt.Fprintf(w, "  - Copied %s\n", name)
	}
	return nil
}

// AnalyzeBundle prints raw and gzipped sizes for every configured bundle in the build directory.
func AnalyzeBundle(cfg *config.Config, w io.Writer) ([]publish.BundleStat, error) {
	buildDir := cfg.Path(cfg.Publish.OutDir)
	info, err := os.Stat(buildDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", publish.ErrBuildMissing, buildDir)
	}

	stats, err := publish.AnalyzeDir(buildDir, cfg.Publish.Bundles)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("%w in %s", publish.ErrNoBundles, cfg.Publish.OutDir)
	}

	rule := strings.Repeat("─", 45)
	fmt.Fprint(w, "\n📦 Bundle Size Analysis\n\n")
	fmt.Fprintf(w, "%-20s %-10s %s\n", "File", "Size", "Gzipped")
	fmt.Fprintln(w, rule)
	for _, s := range stats {
		fmt.Fprintf(w, "%-20s %-10s %s\n", s.File, s.FormatSize(), s.FormatGzip())
	}
	fmt.Fprintln(w, rule)

	total := publish.BundleStat{File: "Total"}
	total.Size, total.GzipSize = publish.Totals(stats)
	fmt.Fprintf(w, "%-20s %-10s %s\n\n", total.File, total.FormatSize(), total.FormatGzip())
	fmt.Fprintf(w, "Compression ratio: %.1f%%\n", publish.CompressionRatio(total.Size, total.GzipSize))

	for _, s := range stats {
		if s.File == cfg.Publish.MainBundle {
			fmt.Fprintf(w, "\nBundle Size Guidelines:\n%s\n", publish.Guideline(s.GzipSize))
			break
		}
	}

	manifest, err := publish.ReadManifest(filepath.Join(buildDir, "package.json"))
	switch {
	case err == nil:
		if id := publish.PackageID(manifest); id != "" {
			fmt.Fprintf(w, "\nPackage: %s\n", id)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		output.Logger.Warn("Could not read built manifest", "error", err)
	}
	fmt.Fprintln(w)
	return stats, nil
}
