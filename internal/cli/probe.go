package cli

import (
	"errors"
	"fmt"

	"github.com/sitekit-labs/sitekit/internal/config"
	"github.com/sitekit-labs/sitekit/internal/probe"
	"github.com/spf13/cobra"
)

var (
	probeDriver  string
	probeEnvFile string
	probeStrict  bool
)

func init() {
	probeCmd.Flags().StringVar(&probeDriver, "driver", "", "Database driver: mysql, postgres, sqlite or sqlserver (default from config, else mysql)")
	probeCmd.Flags().StringVar(&probeEnvFile, "env-file", "", "Dotenv file to load (default from config, else ../.env)")
	probeCmd.Flags().BoolVar(&probeStrict, "strict", false, "Exit non-zero when the probe fails")
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Test the database connection from .env",
	Long: `Load DB_HOST, DB_USER, DB_PASSWORD, DB_NAME and DB_PORT from a dotenv file,
open one connection, report whether it is live, and close it.

Variables already set in the environment take precedence over the file.
Connection errors are printed and the command still exits 0 unless --strict
is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		out := cmd.OutOrStdout()

		envFile := resolveEnvFile(probeEnvFile)
		loaded, err := probe.LoadEnvFile(envFile)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
		logger.Debug("env file", "path", envFile, "loaded", loaded)

		name := probeDriver
		if name == "" {
			name = config.GetOr(config.KeyProbeDriver, probe.DefaultDriver)
		}
		d, err := probe.NewDriver(name, logger)
		if err != nil {
			return err
		}

		outcome := probe.Run(cmd.Context(), out, d, probe.FromProcessEnv())
		logger.Debug("probe finished", "connected", outcome.Connected, "live", outcome.Live, "closed", outcome.Closed)

		if probeStrict && !outcome.OK() {
			if outcome.Err != nil {
				return fmt.Errorf("probe failed: %w", outcome.Err)
			}
			return errors.New("probe failed")
		}
		return nil
	},
}

// resolveEnvFile picks the dotenv path: --env-file, then probe.env_file,
// then ../.env.
func resolveEnvFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.GetOr(config.KeyProbeEnvFile, probe.DefaultEnvFile)
}
