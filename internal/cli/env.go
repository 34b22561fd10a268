package cli

import (
	"fmt"

	"github.com/sitekit-labs/sitekit/internal/probe"
	"github.com/spf13/cobra"
)

var (
	envShowNoRedact bool
	envShowFile     string
)

func init() {
	envShowCmd.Flags().BoolVar(&envShowNoRedact, "no-redact", false, "Show values without redaction")
	envShowCmd.Flags().StringVar(&envShowFile, "env-file", "", "Dotenv file to show (default from config, else ../.env)")

	envCmd.AddCommand(envShowCmd)
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Inspect the dotenv file used by probe",
}

var envShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print env file contents (redacted by default)",
	Long: `Print the dotenv file that "probe" would load, with passwords, tokens,
secrets and keys redacted.

Use --no-redact to show actual values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := resolveEnvFile(envShowFile)

		entries, err := probe.ReadEnvFile(path)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "(empty)")
			return nil
		}

		fmt.Fprintf(out, "# %s\n", path)
		for _, e := range entries {
			value := e.Value
			if !envShowNoRedact {
				value = probe.RedactValue(e.Key, e.Value)
			}
			fmt.Fprintf(out, "%s=%s\n", e.Key, value)
		}
		return nil
	},
}
