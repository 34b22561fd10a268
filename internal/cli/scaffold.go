package cli

import (
	"fmt"

	"github.com/sitekit-labs/sitekit/internal/scaffold"
	"github.com/spf13/cobra"
)

var scaffoldDir string

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldDir, "dir", ".", "Directory to scaffold into")
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Create the website folder structure",
	Long: `Create backend/, frontend/, database/ and assets/{css,js,images,fonts}/
and write README.md and package.json.

Existing directories are kept. README.md and package.json are overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		result, err := scaffold.Run(cmd.OutOrStdout(), scaffoldDir)
		if err != nil {
			return fmt.Errorf("scaffolding %s: %w", scaffoldDir, err)
		}
		logger.Debug("scaffold complete", "root", result.Root, "dirs", len(result.Dirs), "files", result.Files)
		return nil
	},
}
