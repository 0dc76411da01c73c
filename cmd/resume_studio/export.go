package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/pipeline"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a document as a versioned backup envelope",
	Long:  "Normalize a bare or enveloped document and wrap it with the extended backup envelope, stamping fresh backup metadata when none exists.",
	RunE:  runExport,
}

var (
	exportIn     string
	exportOut    string
	exportPretty bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportIn, "in", "i", "", "Path to the document JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file for the envelope (default stdout)")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "Pretty-print JSON output")

	exportCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(exportIn)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	env, err := pipeline.LoadEnvelope(data)
	if err != nil {
		return fmt.Errorf("failed to build envelope: %w", err)
	}

	return writeJSON(exportOut, env, exportPretty)
}
