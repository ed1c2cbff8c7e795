/*
PURPOSE:
  Defines the root Cobra command for the libkit CLI.
  Handles global flags, configuration loading and logger setup.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface for the release tooling.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Config is loaded once in PersistentPreRunE so every subcommand sees the same
    precedence: defaults < file < .env < LIBKIT_* < flags.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/libkit/main.go
  - Calls: Child commands (bench, docs, package, init)
  - Modifies: package-level cfg, output.Logger

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Usage is not printed for domain errors.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Subcommands read the loaded configuration from cfg, never from disk.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/libkit/main.go
  - internal/config/config.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/daryltucker/libkit/internal/config"
	"github.com/daryltucker/libkit/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile   string
	rootDir   string
	verbose   bool
	logFormat string

	// cfg is populated by PersistentPreRunE before any subcommand runs.
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "libkit",
		Short: "Release tooling for the libkit library",
		Long: `Benchmark regression gate, documentation versioning and publish helpers
for the libkit library. Use 'bench compare --help' to get started.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}
)

// Execute executes the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext executes the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile, rootDir)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		loaded.Root = rootDir
	}
	if flags.Changed("log-format") {
		loaded.Log.Format = logFormat
	}
	if verbose {
		loaded.Log.Level = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	output.Configure(cmd.ErrOrStderr(), loaded.Log.Level, loaded.Log.Format)
	output.Logger.Debug("Configuration loaded", "root", loaded.Root, "config", cfgFile)
	cfg = loaded
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is libkit.yaml under --root)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "project root every relative path is resolved against")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}
