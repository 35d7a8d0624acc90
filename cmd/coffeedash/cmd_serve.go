package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/server"
)

// serveCmd runs the dashboard API until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API",
	Long: `Serve loads the sales export named in config.json, enriches it and
exposes the dashboard views on the configured address.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := server.InitConfig()
	if err != nil {
		return err
	}
	if err := InitLogger(config.LogLevel); err != nil {
		return err
	}
	log.Debugf("Config: %+v", config)

	srv, err := server.New(config)
	if err != nil {
		return err
	}

	// Create signal channel to handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Run()
	}()

	select {
	case sig := <-sigChan:
		log.Infof("Received signal: %v. Initiating graceful shutdown...", sig)
		srv.Close()
		<-serveErr
		log.Info("Dashboard service shutdown completed.")
		return nil
	case err := <-serveErr:
		return err
	}
}
