// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/importer"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintImportResult outputs a human-readable summary of an archive import.
func (p *Printer) PrintImportResult(result *importer.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if len(result.ProcessedFiles) > 0 {
		sb.WriteString("Processed files:\n")
		for _, name := range result.ProcessedFiles {
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
		sb.WriteString("\n")
	}

	if len(result.ValidationErrors) > 0 {
		sb.WriteString("Problems:\n")
		count := min(len(result.ValidationErrors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.ValidationErrors[i]))
		}
		if len(result.ValidationErrors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ValidationErrors)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if result.Document != nil {
		doc := result.Document
		sb.WriteString(fmt.Sprintf("Work: %d  Education: %d  Skills: %d\n",
			len(doc.Work), len(doc.Education), len(doc.Skills)))
		sb.WriteString(fmt.Sprintf("Languages: %d  Certifications: %d\n",
			len(doc.Languages), len(doc.Certifications)))
	}

	p.printBox("IMPORT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs a human-readable summary of a normalized document.
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", doc.Basics.Name))
	sb.WriteString(fmt.Sprintf("Label:  %s\n", doc.Basics.Label))
	sb.WriteString("\n")

	hidden := []string{}
	for _, name := range types.SectionNames {
		if visible, ok := doc.SectionVisibility[name]; ok && !visible {
			hidden = append(hidden, name)
		}
	}
	if len(hidden) > 0 {
		sb.WriteString(fmt.Sprintf("Hidden sections: %s\n", strings.Join(hidden, ", ")))
	}

	if len(doc.Work) > 0 {
		sb.WriteString("Work:\n")
		count := min(len(doc.Work), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := doc.Work[i]
			sb.WriteString(fmt.Sprintf("  • %s", item.Company))
			if item.Position != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", item.Position))
			}
			sb.WriteString("\n")
		}
		if len(doc.Work) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Work)-maxItemsToShow))
		}
	}

	if doc.NonConforming != nil {
		sb.WriteString(fmt.Sprintf("\nNon-conforming: %d parsing errors, %d invalid fields\n",
			len(doc.NonConforming.ParsingErrors), len(doc.NonConforming.InvalidFields)))
	}

	p.printBox("DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationResult outputs validation errors and warnings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationResult(result schemas.Result) {
	if result.IsValid && len(result.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ENVELOPE IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder

	version := "(none)"
	if result.SchemaVersion != nil {
		version = *result.SchemaVersion
	}
	sb.WriteString(fmt.Sprintf("Schema version: %s\n", version))
	sb.WriteString("\n")

	for _, msg := range result.Errors {
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", msg))
	}
	for _, msg := range result.Warnings {
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", msg))
	}

	p.printBox("VALIDATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
