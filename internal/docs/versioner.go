/*
PURPOSE:
  Archives the current documentation tree under a release version and
  updates the version registry and the generated versions page.

REQUIREMENTS:
  User-specified:
  - Version must match vX.Y.Z exactly.
  - Mismatch with the package descriptor version is a warning only.
  - Duplicate versions and existing archive directories are fatal.
  - Copy guide/ and api/ (when present) and index.md (when present).
  - New entry is current, everything older becomes maintenance.

  Implementation-discovered:
  - Validation runs completely before any filesystem mutation, so a rejected
    run leaves the tree and the registry untouched.
  - Clock is injectable for deterministic dates in tests.
  - A run that fails after creating the archive directory removes it again,
    so the same version can be retried. The registry save is the commit point.
  - Symlinks inside the copied subtrees are recreated, not followed.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.VersionDocs
  - Uses: registry.go, index.go, archive.go, internal/output

ERROR HANDLING:
  - Validation failures return the sentinel errors in errors.go, first failure wins.
  - Soft mismatches are collected in Outcome.Warnings and logged.

USAGE:
  v := docs.NewVersioner(docs.Options{DocsDir: "docs", PackageFile: "package.json"})
  outcome, err := v.Run("v1.2.0")
*/

package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/daryltucker/libkit/internal/model"
	"github.com/daryltucker/libkit/internal/output"
)

var versionPattern = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

var saveRegistry = SaveRegistry

// ValidateVersion checks presence and format of a release version.
func ValidateVersion(version string) error {
	if version == "" {
		return ErrVersionRequired
	}
	if !versionPattern.MatchString(version) {
		return fmt.Errorf("%w: got %q", ErrInvalidVersion, version)
	}
	return nil
}

// Options locates everything the versioner reads and writes.
type Options struct {
	DocsDir      string
	VersionsFile string   // relative to DocsDir
	IndexPage    string   // relative to DocsDir
	IndexDoc     string   // relative to DocsDir
	Subtrees     []string // relative to DocsDir
	PackageFile  string   // absolute or relative to the working directory
	ReleasesURL  string
	Now          func() time.Time
}

// Versioner performs one documentation release.
type Versioner struct {
	opts Options
}

// Outcome describes a successful release.
type Outcome struct {
	Entry      model.VersionEntry
	Registry   []model.VersionEntry
	ArchiveDir string
	Copied     []string
	Warnings   []string
}

// NewVersioner fills defaults for unset options.
func NewVersioner(opts Options) *Versioner {
	if opts.VersionsFile == "" {
		opts.VersionsFile = "versions.json"
	}
	if opts.IndexPage == "" {
		opts.IndexPage = "versions.md"
	}
	if opts.IndexDoc == "" {
		opts.IndexDoc = "index.md"
	}
	if opts.Subtrees == nil {
		opts.Subtrees = []string{"guide", "api"}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Versioner{opts: opts}
}

// RegistryPath is the location of versions.json.
func (v *Versioner) RegistryPath() string {
	return filepath.Join(v.opts.DocsDir, v.opts.VersionsFile)
}

// IndexPath is the location of the generated versions page.
func (v *Versioner) IndexPath() string {
	return filepath.Join(v.opts.DocsDir, v.opts.IndexPage)
}

// Run validates version and performs the release.
func (v *Versioner) Run(version string) (*Outcome, error) {
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}

	outcome := &Outcome{}
	if warning := v.checkPackageVersion(version); warning != "" {
		output.Logger.Warn(warning)
		outcome.Warnings = append(outcome.Warnings, warning)
	}

	registry, err := LoadRegistry(v.RegistryPath())
	if err != nil {
		return nil, err
	}
	if Contains(registry, version) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateVersion, version)
	}

	target := filepath.Join(v.opts.DocsDir, version)
	if exists(target) {
		return nil, fmt.Errorf("%w: %s", ErrTargetExists, target)
	}
	outcome.ArchiveDir = target

	if err := os.MkdirAll(target, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", target, err)
	}
	// Until the registry lists the version, a failed run must leave no archive behind.
	committed := false
	defer func() {
		if committed {
			return
		}
		if err := os.RemoveAll(target); err != nil {
			output.Logger.Error("Failed to remove partial archive", "dir", target, "error", err)
		}
	}()

	for _, name := range v.opts.Subtrees {
		src := filepath.Join(v.opts.DocsDir, name)
		if !isDir(src) {
			continue
		}
		if err := copyTree(src, filepath.Join(target, name)); err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", src, err)
		}
		output.Logger.Info(fmt.Sprintf("Copied %s/ to %s/%s/", name, version, name))
		outcome.Copied = append(outcome.Copied, name+"/")
	}

	indexSrc := filepath.Join(v.opts.DocsDir, v.opts.IndexDoc)
	if info, err := os.Stat(indexSrc); err == nil && !info.IsDir() {
		if err := copyFile(indexSrc, filepath.Join(target, v.opts.IndexDoc)); err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", indexSrc, err)
		}
		output.Logger.Info(fmt.Sprintf("Copied %s to %s/%s", v.opts.IndexDoc, version, v.opts.IndexDoc))
		outcome.Copied = append(outcome.Copied, v.opts.IndexDoc)
	}

	entry := NewEntry(version, v.opts.Now().UTC().Format(time.DateOnly))
	registry = Release(registry, entry)

	page, err := RenderIndex(registry, IndexOptions{Version: version, ReleasesURL: v.opts.ReleasesURL})
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", v.opts.IndexPage, err)
	}

	if err := saveRegistry(v.RegistryPath(), registry); err != nil {
		return nil, err
	}
	committed = true
	output.Logger.Info("Updated " + v.opts.VersionsFile)

	if err := output.WriteFileAtomic(v.IndexPath(), []byte(page)); err != nil {
		return nil, err
	}
	output.Logger.Info("Updated " + v.opts.IndexPage)

	outcome.Entry = entry
	outcome.Registry = registry
	return outcome, nil
}

// checkPackageVersion compares version with "v" + the descriptor's version field.
// It never fails the run; problems come back as a warning message.
func (v *Versioner) checkPackageVersion(version string) string {
	if v.opts.PackageFile == "" {
		return ""
	}
	data, err := os.ReadFile(v.opts.PackageFile)
	if err != nil {
		return fmt.Sprintf("Warning: could not read %s to verify version: %v", v.opts.PackageFile, err)
	}

	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return fmt.Sprintf("Warning: could not parse %s to verify version: %v", v.opts.PackageFile, err)
	}

	expected := "v" + pkg.Version
	if version != expected {
		return fmt.Sprintf("Warning: Version %s doesn't match %s version %s", version, filepath.Base(v.opts.PackageFile), expected)
	}
	return ""
}
