package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/estimate"
)

var (
	tariffInput domain.TariffInput
	quoteInput  domain.QuoteInput
	quoteMode   string
)

var tariffCmd = &cobra.Command{
	Use:     "tariff",
	Short:   "Print a duty and tax estimate",
	Example: `  api tariff --hs-code 850440 --incoterm DDP --customs-value 10000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd, estimate.Tariff(tariffInput))
	},
}

var quoteCmd = &cobra.Command{
	Use:     "quote",
	Short:   "Print a freight and landed-cost quote",
	Example: `  api quote --mode air --weight-kg 120 --origin CN --destination US --hs-code 8504 --customs-value 5000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		quoteInput.Mode = domain.Mode(strings.ToLower(strings.TrimSpace(quoteMode)))
		return printJSON(cmd, estimate.Quote(quoteInput))
	},
}

func init() {
	tariffCmd.Flags().StringVar(&tariffInput.HSCode, "hs-code", "", "HS code")
	tariffCmd.Flags().StringVar(&tariffInput.Incoterm, "incoterm", "", "Incoterm, e.g. FOB or DDP")
	tariffCmd.Flags().Float64Var(&tariffInput.CustomsValue, "customs-value", 0, "Customs value in USD")

	quoteCmd.Flags().StringVar(&quoteMode, "mode", "ocean", "air or ocean")
	quoteCmd.Flags().Float64Var(&quoteInput.WeightKg, "weight-kg", 0, "Gross weight for air freight")
	quoteCmd.Flags().IntVar(&quoteInput.Containers, "containers", 1, "Container count for ocean freight")
	quoteCmd.Flags().StringVar(&quoteInput.OriginCountry, "origin", "", "Origin country")
	quoteCmd.Flags().StringVar(&quoteInput.DestinationCountry, "destination", "", "Destination country")
	quoteCmd.Flags().StringVar(&quoteInput.Incoterm, "incoterm", "", "Incoterm")
	quoteCmd.Flags().StringVar(&quoteInput.HSCode, "hs-code", "", "HS code")
	quoteCmd.Flags().Float64Var(&quoteInput.CustomsValue, "customs-value", 0, "Customs value in USD")
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
