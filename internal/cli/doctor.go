package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sitekit-labs/sitekit/internal/manifest"
	"github.com/sitekit-labs/sitekit/internal/probe"
	"github.com/sitekit-labs/sitekit/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	doctorDir     string
	doctorFix     bool
	checkManifest string
	doctorEnvFile string
)

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", ".", "Scaffolded directory to check")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Re-run scaffold when the tree is incomplete")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Only validate the package.json at the given path")
	doctorCmd.Flags().StringVar(&doctorEnvFile, "env-file", "", "Dotenv file to check (default from config, else ../.env)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check a scaffolded project and its database settings",
	Long: `Report missing or changed scaffold directories and files, validate
package.json, and list which DB_* variables the env file provides.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}

		report, err := scaffold.Check(out, doctorDir)
		if err != nil {
			return err
		}
		if !report.Healthy() && doctorFix {
			fmt.Fprintln(out, "  [FIX ] Re-running scaffold...")
			if _, err := scaffold.Run(out, doctorDir); err != nil {
				return fmt.Errorf("auto-fix scaffold: %w", err)
			}
		}

		pkgPath := filepath.Join(doctorDir, "package.json")
		if _, statErr := os.Stat(pkgPath); statErr == nil {
			if err := runManifestCheck(out, pkgPath); err != nil {
				fmt.Fprintf(out, "[WARN] %v\n", err)
			}
		}

		runEnvCheck(out, resolveEnvFile(doctorEnvFile))
		return nil
	},
}

func runManifestCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		pkg, err := manifest.Parse(path)
		if err != nil {
			fmt.Fprintf(w, "  [ OK ] Valid package.json\n")
			return nil
		}
		fmt.Fprintf(w, "  [ OK ] Valid package.json: %s (v%s)\n", pkg.Name, pkg.Version)
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}

func runEnvCheck(w io.Writer, path string) {
	fmt.Fprintf(w, "Env check: %s\n", path)

	entries, err := probe.ReadEnvFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %v\n", err)
		return
	}

	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Key] = true
	}
	for _, key := range []string{probe.EnvHost, probe.EnvUser, probe.EnvPassword, probe.EnvName, probe.EnvPort} {
		if present[key] {
			fmt.Fprintf(w, "  [ OK ] %s\n", key)
		} else {
			fmt.Fprintf(w, "  [MISS] %s not set; the driver default applies\n", key)
		}
	}
}
