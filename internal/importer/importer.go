// Package importer converts a foreign profile-export archive into the
// canonical document, isolating per-file failures and preserving unmappable
// data in the non-conforming side channel.
package importer

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jonathan/resume-studio/internal/tabular"
	"github.com/jonathan/resume-studio/internal/types"
)

// Result is the outcome of an archive import. HasErrors is true when
// extraction failed, the archive was not recognized, no files were
// processed, or any per-file processing error occurred. The document is
// always usable, even when errors are present.
type Result struct {
	Document         *types.Document `json:"document"`
	HasErrors        bool            `json:"hasErrors"`
	ValidationErrors []string        `json:"validationErrors"`
	ProcessedFiles   []string        `json:"processedFiles"`
}

// sectionProcessor maps the records of one archive member into the document.
type sectionProcessor func(doc *types.Document, records []tabular.Record) error

// sectionRoute binds a filename keyword to its processor. Routing is
// first-match over this fixed order.
type sectionRoute struct {
	keyword string
	process sectionProcessor
}

var sectionRoutes = []sectionRoute{
	{"profile", processProfile},
	{"positions", processPositions},
	{"education", processEducation},
	{"skills", processSkills},
	{"languages", processLanguages},
	{"certifications", processCertifications},
}

// ImportArchive imports a compressed profile-export archive. The archive is
// accepted only if at least one expected member filename is present
// (case-insensitive substring match); otherwise the result carries a
// validation message and an empty import. Each recognized member is
// processed independently: a failure in one member is recorded by filename
// and never blocks the rest of the archive. Extraction failure
// short-circuits the whole import.
//
// A nil extract function uses the standard ZIP extractor.
func ImportArchive(data []byte, extract ExtractFunc) *Result {
	if extract == nil {
		extract = ExtractZip
	}

	result := &Result{
		Document:         types.NewDocument(),
		ValidationErrors: []string{},
		ProcessedFiles:   []string{},
	}

	files, err := extract(data)
	if err != nil {
		log.WithError(err).Warn("archive extraction failed")
		result.HasErrors = true
		result.ValidationErrors = append(result.ValidationErrors,
			fmt.Sprintf("failed to extract archive: %v", err))
		return result
	}

	recognized, recognizedNames := routeFiles(files)
	if len(recognized) == 0 {
		result.HasErrors = true
		result.ValidationErrors = append(result.ValidationErrors,
			"the archive does not appear to contain a recognized profile export")
		return result
	}

	// Unrecognized members are preserved in the non-conforming bucket so
	// no user data disappears without a trace.
	for _, name := range sortedNames(files) {
		if _, ok := recognizedNames[name]; !ok {
			recordParsingError(result.Document,
				fmt.Sprintf("unrecognized file in archive: %s", name))
		}
	}

	// Process members in section order, then by name, so imports are
	// deterministic regardless of archive layout.
	for _, member := range recognized {
		if err := member.process(result.Document, tabular.ParseRecords(string(files[member.name]))); err != nil {
			log.WithField("file", member.name).WithError(err).Warn("failed to process archive member")
			result.HasErrors = true
			result.ValidationErrors = append(result.ValidationErrors,
				fmt.Sprintf("%s: %v", member.name, err))
			continue
		}
		result.ProcessedFiles = append(result.ProcessedFiles, member.name)
	}

	if len(result.ProcessedFiles) == 0 {
		result.HasErrors = true
	}

	return result
}

// recognizedMember is one archive member bound to its section processor.
type recognizedMember struct {
	name    string
	process sectionProcessor
}

// routeFiles selects the archive members that match a known section
// keyword. Each member binds to the first matching route; the returned
// slice is ordered by route priority, then filename.
func routeFiles(files map[string][]byte) ([]recognizedMember, map[string]struct{}) {
	recognized := []recognizedMember{}
	names := make(map[string]struct{})

	// Earlier routes win when a filename matches several keywords.
	for _, route := range sectionRoutes {
		for _, name := range sortedNames(files) {
			if _, taken := names[name]; taken {
				continue
			}
			if matchesKeyword(name, route.keyword) {
				recognized = append(recognized, recognizedMember{name: name, process: route.process})
				names[name] = struct{}{}
			}
		}
	}

	return recognized, names
}

func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func matchesKeyword(filename, keyword string) bool {
	return strings.Contains(strings.ToLower(filename), keyword)
}

// recordParsingError appends a message to the document's non-conforming
// bucket, creating the bucket on first use.
func recordParsingError(doc *types.Document, message string) {
	if doc.NonConforming == nil {
		doc.NonConforming = &types.NonConformingData{
			ParsingErrors: []string{},
			InvalidFields: []types.InvalidField{},
		}
	}
	doc.NonConforming.ParsingErrors = append(doc.NonConforming.ParsingErrors, message)
}

// recordInvalidField appends an unmappable field to the document's
// non-conforming bucket.
func recordInvalidField(doc *types.Document, field types.InvalidField) {
	if doc.NonConforming == nil {
		doc.NonConforming = &types.NonConformingData{
			ParsingErrors: []string{},
			InvalidFields: []types.InvalidField{},
		}
	}
	doc.NonConforming.InvalidFields = append(doc.NonConforming.InvalidFields, field)
}
