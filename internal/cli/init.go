package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/libkit/internal/assets"
	"github.com/daryltucker/libkit/internal/output"
)

// templateTargets maps embedded template names to their path under the project root.
var templateTargets = map[string]string{
	"libkit.yaml": "libkit.yaml",
	"env.example": ".env.example",
}

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter libkit.yaml and .env.example into the project root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := fs.ReadDir(assets.Templates, "templates")
		if err != nil {
			return fmt.Errorf("failed to read embedded templates: %w", err)
		}

		count := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			target, ok := templateTargets[entry.Name()]
			if !ok {
				continue
			}
			targetPath := cfg.Path(target)

			if _, err := os.Stat(targetPath); err == nil && !forceInit {
				output.Logger.Info("Skipping existing file", "path", targetPath)
				continue
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to inspect %s: %w", targetPath, err)
			}

			content, err := fs.ReadFile(assets.Templates, "templates/"+entry.Name())
			if err != nil {
				return fmt.Errorf("failed to read embedded template %s: %w", entry.Name(), err)
			}
			if err := output.WriteFileAtomic(targetPath, content); err != nil {
				return err
			}

			output.Logger.Info("Installed template", "path", targetPath)
			fmt.Fprintf(cmd.OutOrStdout(), "  - Wrote %s\n", target)
			count++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Initialized %d files\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite existing files")
}
