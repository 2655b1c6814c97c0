// Command api runs the Logistic Intel HTTP API and its offline calculators.
//
// @title Logistic Intel API
// @version 1.0
// @description Shipment search, CRM, tariff and freight estimates, and company insights.
// @BasePath /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Supabase access token
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Logistic Intel backend",
	Long: `Logistic Intel backend.

Available subcommands:
  serve  - Run the HTTP API
  tariff - Print a duty and tax estimate
  quote  - Print a freight and landed-cost quote`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile == "" {
			return nil
		}
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before the configuration (empty to skip)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "shutdown-timeout", 30*time.Second, "Graceful shutdown timeout")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tariffCmd)
	rootCmd.AddCommand(quoteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
