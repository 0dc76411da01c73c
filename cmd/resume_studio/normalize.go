package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/types"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize document JSON into the canonical shape",
	Long:  "Normalize arbitrary document-shaped JSON: defaults every required field, makes item visibility explicit, and migrates legacy substructures.",
	RunE:  runNormalize,
}

var (
	normalizeIn     string
	normalizeOut    string
	normalizeConfig  string
	normalizePretty  bool
	normalizeVerbose bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeIn, "in", "i", "", "Path to the input JSON file (required)")
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "Output file (default stdout)")
	normalizeCmd.Flags().StringVarP(&normalizeConfig, "config", "c", "", "Path to a JSON config file")
	normalizeCmd.Flags().BoolVar(&normalizePretty, "pretty", false, "Pretty-print JSON output")
	normalizeCmd.Flags().BoolVarP(&normalizeVerbose, "verbose", "v", false, "Print a document summary to stderr")

	normalizeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(normalizeIn)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts := normalize.Options{}
	verbose := normalizeVerbose
	pretty := normalizePretty
	if normalizeConfig != "" {
		cfg, err := config.LoadConfig(normalizeConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		opts.SectionVisibilityDefaults = visibilityDefaults(cfg.HiddenSections)
		verbose = verbose || cfg.Verbose
		pretty = pretty || cfg.Pretty
	}

	doc, err := normalize.New(opts).NormalizeBytes(data)
	if err != nil {
		return fmt.Errorf("failed to normalize document: %w", err)
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintDocument(doc)
	}

	return writeJSON(normalizeOut, doc, pretty)
}

// visibilityDefaults builds the injected section visibility table with the
// configured sections hidden.
func visibilityDefaults(hidden []string) types.SectionVisibility {
	sv := types.DefaultSectionVisibility()
	for _, section := range hidden {
		sv[section] = false
	}
	return sv
}
