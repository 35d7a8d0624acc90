package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/datacheck"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/ingest"
)

const defaultDataPath = "Data/coffee_sales.csv"

// checkCmd validates an export before it is promoted to the dashboard
var checkCmd = &cobra.Command{
	Use:   "check [csv]",
	Short: "Run data-quality checks on a sales export",
	Long: `Check validates that the required columns of a sales export are fully
populated and prints a summary of its numeric columns, calendar
coverage and catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := InitLogger(logLevel); err != nil {
		return err
	}

	path := defaultDataPath
	if len(args) > 0 {
		path = args[0]
	}

	table, err := ingest.ReadTableFile(path)
	if err != nil {
		return err
	}
	if err := datacheck.ValidateRequired(table); err != nil {
		return err
	}

	fmt.Print(datacheck.Summarize(table).Format())
	return nil
}
