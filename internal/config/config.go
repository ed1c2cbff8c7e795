/*
PURPOSE:
  Defines the configuration structure and loading logic for libkit.
  One file drives the benchmark gate, the docs versioner and the publish tooling.

REQUIREMENTS:
  User-specified:
  - Baseline path and regression threshold are configurable (default 10%).
  - Docs root, registry file and archived subtrees are configurable.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs Environment variable overrides (LIBKIT_...) so CI can tune the gate
    without editing the repo; a .env file in the project root is honoured too.
  - Default config files and .env are looked up under --root, not the working directory.
  - The threshold must be finite; NaN would silently disable the gate.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3, github.com/caarlos0/env/v11, github.com/joho/godotenv

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file falls back to defaults.

IMPLEMENTATION RULES:
  - Config struct tags support yaml and env.
  - Precedence: defaults < file < .env < environment < CLI flags (flags applied in internal/cli).

USAGE:
  cfg, err := config.Load("", "path/to/project") // finds path/to/project/libkit.yaml

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "LIBKIT_"

// Config represents the full configuration for libkit.
type Config struct {
	// Root is the project root every relative path is resolved against.
	Root    string        `yaml:"root" env:"ROOT"`
	Bench   BenchConfig   `yaml:"bench" envPrefix:"BENCH_"`
	Docs    DocsConfig    `yaml:"docs" envPrefix:"DOCS_"`
	Publish PublishConfig `yaml:"publish" envPrefix:"PUBLISH_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
}

// BenchConfig tunes the benchmark regression gate.
type BenchConfig struct {
	Current   string   `yaml:"current" env:"CURRENT"`
	Baseline  string   `yaml:"baseline" env:"BASELINE"` // file path or s3://bucket/key
	Threshold float64  `yaml:"threshold" env:"THRESHOLD"`
	S3        S3Config `yaml:"s3" envPrefix:"S3_"`
}

// S3Config is used when the baseline lives in a bucket.
type S3Config struct {
	Region         string `yaml:"region" env:"REGION"`
	Endpoint       string `yaml:"endpoint" env:"ENDPOINT"`
	AccessKeyID    string `yaml:"access_key_id" env:"ACCESS_KEY_ID"`
	SecretKey      string `yaml:"secret_key" env:"SECRET_KEY"`
	ForcePathStyle bool   `yaml:"force_path_style" env:"FORCE_PATH_STYLE"`
}

// DocsConfig locates the documentation tree and its version registry.
type DocsConfig struct {
	Dir          string   `yaml:"dir" env:"DIR"`
	VersionsFile string   `yaml:"versions_file" env:"VERSIONS_FILE"`
	IndexPage    string   `yaml:"index_page" env:"INDEX_PAGE"`
	IndexDoc     string   `yaml:"index_doc" env:"INDEX_DOC"`
	Subtrees     []string `yaml:"subtrees" env:"SUBTREES" envSeparator:","`
	PackageFile  string   `yaml:"package_file" env:"PACKAGE_FILE"`
	ReleasesURL  string   `yaml:"releases_url" env:"RELEASES_URL"`
}

// PublishConfig drives manifest preparation and bundle analysis.
type PublishConfig struct {
	OutDir     string   `yaml:"out_dir" env:"OUT_DIR"`
	Bundles    []string `yaml:"bundles" env:"BUNDLES" envSeparator:","`
	MainBundle string   `yaml:"main_bundle" env:"MAIN_BUNDLE"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Root: ".",
		Bench: BenchConfig{
			Current:   "benchmarks/results.json",
			Baseline:  "benchmarks/baseline.json",
			Threshold: 10,
		},
		Docs: DocsConfig{
			Dir:          "docs",
			VersionsFile: "versions.json",
			IndexPage:    "versions.md",
			IndexDoc:     "index.md",
			Subtrees:     []string{"guide", "api"},
			PackageFile:  "package.json",
			ReleasesURL:  "https://github.com/daryltucker/libkit/releases",
		},
		Publish: PublishConfig{
			OutDir:     "out/build",
			Bundles:    []string{"index.cjs", "index.mjs", "index.d.ts"},
			MainBundle: "index.mjs",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultFiles are searched in order under the project root when no config path is given.
var DefaultFiles = []string{"libkit.yaml", ".libkit.yaml"}

// Load reads configuration from a file, then applies .env and LIBKIT_* overrides.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order under root.
// If no file found, defaults are kept. The .env file is read from root as well.
// A relative root key in the file is resolved against the file's directory.
func Load(path, root string) (*Config, error) {
	if root == "" {
		root = "."
	}
	cfg := DefaultConfig()
	cfg.Root = root

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		for _, name := range DefaultFiles {
			candidate := filepath.Join(root, name)
			data, err = os.ReadFile(candidate)
			if err == nil {
				path = candidate
				break
			}
		}
	}

	if data != nil {
		cfg.Root = ""
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		switch {
		case cfg.Root == "":
			cfg.Root = root
		case !filepath.IsAbs(cfg.Root):
			cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
		}
	}

	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would make every command misbehave.
func (c *Config) Validate() error {
	var errs []error
	switch t := c.Bench.Threshold; {
	case math.IsNaN(t) || math.IsInf(t, 0):
		errs = append(errs, fmt.Errorf("bench.threshold must be a finite number, got: %v", t))
	case t < 0:
		errs = append(errs, fmt.Errorf("bench.threshold must not be negative, got: %v", t))
	}
	if c.Bench.Current == "" {
		errs = append(errs, errors.New("bench.current must be set"))
	}
	if c.Docs.Dir == "" {
		errs = append(errs, errors.New("docs.dir must be set"))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got: %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Path resolves p against the project root unless it is already absolute.
func (c *Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// DocsPath resolves a file inside the docs directory.
func (c *Config) DocsPath(elem ...string) string {
	return filepath.Join(append([]string{c.Path(c.Docs.Dir)}, elem...)...)
}
