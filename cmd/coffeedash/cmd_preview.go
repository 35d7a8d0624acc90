package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/ingest"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/preview"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

var previewOutput string

// previewCmd regenerates the static dashboard preview asset
var previewCmd = &cobra.Command{
	Use:   "preview [csv]",
	Short: "Render the static SVG preview of the dashboard",
	Long: `Preview renders the checked-in SVG snapshot of the dashboard layout
from a sales export: KPI cards, seasonality line, store leaderboard and
product mix chips.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o",
		"assets/dashboard-preview.svg", "path of the SVG to write")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if err := InitLogger(logLevel); err != nil {
		return err
	}

	path := defaultDataPath
	if len(args) > 0 {
		path = args[0]
	}

	transactions, err := ingest.LoadTransactionsFile(path)
	if err != nil {
		return err
	}
	records := sales.Enrich(transactions)

	if err := preview.WriteFile(records, previewOutput); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", previewOutput)
	return nil
}
