package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/libkit/internal/engine"
)

var rawOutput bool

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Documentation versioning",
}

var docsVersionCmd = &cobra.Command{
	Use:   "version <vX.Y.Z>",
	Short: "Archive the current documentation under a release version",
	Long: `Copies docs/guide, docs/api and docs/index.md into docs/<version>/, marks the
new version as current, moves every older version to maintenance and regenerates
docs/versions.md from docs/versions.json.`,
	Example: `  libkit docs version v1.2.0`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var version string
		if len(args) == 1 {
			version = args[0]
		}
		_, err := engine.VersionDocs(cfg, cmd.OutOrStdout(), version)
		return err
	},
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the released documentation versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return engine.ListVersions(cfg, cmd.OutOrStdout(), rawOutput)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.AddCommand(docsVersionCmd, docsListCmd)

	docsListCmd.Flags().BoolVar(&rawOutput, "raw", false, "print markdown without terminal rendering")
}
