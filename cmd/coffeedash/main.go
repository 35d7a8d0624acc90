package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("log")

var logLevel string

// rootCmd is the base command for the coffeedash CLI
var rootCmd = &cobra.Command{
	Use:   "coffeedash",
	Short: "Coffee shop sales analytics service and tooling",
	Long: `Coffeedash loads a coffee shop sales export, enriches it with
engineered features and serves the dashboard views over HTTP. It also
ships the data-quality gate and the static preview renderer used by the
docs.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO",
		"log level (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL)")
}

// InitLogger Receives the log level to be set in go-logging as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	// Set the backends to be used.
	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
