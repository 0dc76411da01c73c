package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/importer"
	"github.com/jonathan/resume-studio/internal/observability"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a foreign profile-export archive",
	Long:  "Import a ZIP profile export (profile, positions, education, skills, languages, certifications tables) and write the resulting document JSON.",
	RunE:  runImport,
}

var (
	importArchive string
	importOut     string
	importPretty  bool
	importVerbose bool
)

func init() {
	importCmd.Flags().StringVarP(&importArchive, "archive", "a", "", "Path to the export archive (required)")
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "Output file for the document JSON (default stdout)")
	importCmd.Flags().BoolVar(&importPretty, "pretty", false, "Pretty-print JSON output")
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print an import summary to stderr")

	importCmd.MarkFlagRequired("archive")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(importArchive)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	result := importer.ImportArchive(data, nil)

	if importVerbose {
		observability.NewPrinter(os.Stderr).PrintImportResult(result)
	} else {
		for _, msg := range result.ValidationErrors {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
		}
	}

	if result.HasErrors && len(result.ProcessedFiles) == 0 {
		return fmt.Errorf("import failed: no files could be processed")
	}

	return writeJSON(importOut, result.Document, importPretty)
}
