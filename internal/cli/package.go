package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/libkit/internal/engine"
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Publish helpers for the build output",
}

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Write a clean package.json, README.md and LICENSE into the build directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return engine.PreparePackage(cfg, cmd.OutOrStdout())
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report raw and gzipped bundle sizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := engine.AnalyzeBundle(cfg, cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(packageCmd)
	packageCmd.AddCommand(prepareCmd, analyzeCmd)
}
