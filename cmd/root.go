package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	dashboardcmd "github.com/Alijeyrad/cardioai/cmd/dashboard"
	httpcmd "github.com/Alijeyrad/cardioai/cmd/http"
	systemcmd "github.com/Alijeyrad/cardioai/cmd/system"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "cardioai",
	Short: "Myocardial infarction outcome prediction service and clinician dashboard.",
	Long: `CardioAI scores patients after a myocardial infarction.

It runs as two processes: a prediction API that serves a fitted classifier,
and a dashboard that collects patient records, exports them and charts
the forecast for the latest patient.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Values already present in the environment win over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file, or a directory containing config.yaml")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(dashboardcmd.NewDashboardCommand())
}
