package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Run the editor backend HTTP API: archive import, document normalization, envelope validation, and stored document CRUD.",
	RunE:  runServe,
}

var (
	servePort        int
	serveDatabaseURL string
	serveConfig      string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to a JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port := servePort
	databaseURL := serveDatabaseURL

	if serveConfig != "" {
		cfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.Port != 0 && !cmd.Flags().Changed("port") {
			port = cfg.Port
		}
		if databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
	}

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required; set --database-url, DATABASE_URL, or database_url in the config file")
	}

	srv, err := server.New(server.Config{Port: port, DatabaseURL: databaseURL})
	if err != nil {
		return err
	}
	return srv.Start()
}
