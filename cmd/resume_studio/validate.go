package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an enveloped document",
	Long:  "Validate a versioned document envelope: structural shape, declared schema version, and section field types.",
	RunE:  runValidate,
}

var (
	validateIn      string
	validateVerbose bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateIn, "in", "i", "", "Path to the envelope JSON file (required)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a formatted validation summary to stderr")

	validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(validateIn)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	result := schemas.ValidateEnvelopeBytes(data)

	if validateVerbose {
		observability.NewPrinter(os.Stderr).PrintValidationResult(result)
	}

	for _, msg := range result.Errors {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	for _, msg := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
	}
	if result.IsValid {
		for _, msg := range schemas.CheckDocumentSchema(data) {
			fmt.Fprintf(os.Stderr, "Schema warning: %s\n", msg)
		}
	}

	if !result.IsValid {
		return fmt.Errorf("envelope is not valid")
	}

	version := ""
	if result.SchemaVersion != nil {
		version = *result.SchemaVersion
	}
	fmt.Fprintf(os.Stdout, "Valid envelope (schemaVersion %s)\n", version)
	return nil
}
